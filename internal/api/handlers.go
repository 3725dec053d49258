package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipekit/internal/logger"
	"github.com/pageza/recipekit/internal/samples"
	"github.com/pageza/recipekit/internal/template"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	CSVContentType  = "text/csv; charset=utf-8"

	WorkbookFilename = "recipe_import_template.xlsx"
	CSVFilename      = "recipe_import_template.csv"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "recipekit API is running",
	})
}

// DownloadWorkbookTemplate serves a freshly generated .xlsx import template.
func DownloadWorkbookTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := template.WriteWorkbook(&buf, samples.Workbook()); err != nil {
		logger.Error("failed to build workbook template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate template"})
		return
	}
	attachment(c, WorkbookFilename, XLSXContentType, buf.Bytes())
}

// DownloadCSVTemplate serves a freshly generated CSV import template.
func DownloadCSVTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := template.WriteCSV(&buf, samples.CSV()); err != nil {
		logger.Error("failed to build csv template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate template"})
		return
	}
	attachment(c, CSVFilename, CSVContentType, buf.Bytes())
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
