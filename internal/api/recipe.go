package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/recipekit/internal/importer"
	"github.com/pageza/recipekit/internal/logger"
	"github.com/pageza/recipekit/internal/middleware"
	"github.com/pageza/recipekit/internal/service"
)

// maxUploadSize bounds the multipart body accepted by the import endpoint.
const maxUploadSize = 10 << 20

type RecipeHandler struct {
	recipes     service.IRecipeService
	authService service.IAuthService
	limiter     *middleware.RateLimiter
}

// NewRecipeHandler builds the recipe routes. limiter may be nil, in which
// case imports are not rate limited.
func NewRecipeHandler(recipes service.IRecipeService, authService service.IAuthService, limiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:     recipes,
		authService: authService,
		limiter:     limiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	importChain := []gin.HandlerFunc{auth}
	if h.limiter != nil {
		importChain = append(importChain, h.limiter.RateLimitMiddleware())
	}
	importChain = append(importChain, h.ImportRecipes)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/import", importChain...)
		recipes.DELETE("/:id", auth, h.DeleteRecipe)
	}
}

// ImportRecipes accepts a filled-in template as the multipart field "file".
// Any invalid row rejects the whole upload.
func (h *RecipeHandler) ImportRecipes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	res, err := importer.Parse(header.Filename, file)
	switch {
	case errors.Is(err, importer.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Please upload an Excel (.xlsx) or CSV file"})
		return
	case errors.Is(err, importer.ErrNoSheet):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No worksheet found in the Excel file"})
		return
	case err != nil:
		logger.Warn("unreadable import file", zap.String("filename", header.Filename), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}

	var importErr *importer.ImportError
	if errors.As(res.Err(), &importErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation errors found",
			Details: importErr.Details(),
		})
		return
	}

	imported, failures := h.recipes.ImportRecipes(c.Request.Context(), userID, res.Recipes)
	logger.Info("imported recipes",
		zap.String("user_id", userID.String()),
		zap.Int("imported", len(imported)),
		zap.Int("failed", len(failures)),
	)

	c.JSON(http.StatusOK, ImportResponse{
		Success:       true,
		Message:       fmt.Sprintf("Successfully imported %d recipes", len(imported)),
		ImportedCount: len(imported),
		Errors:        failures,
	})
}

// ListRecipes returns all recipes, optionally filtered by ?category= and
// searched with ?q=.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := service.ListFilter{Category: c.Query("category")}
	if mine := c.Query("user_id"); mine != "" {
		id, err := uuid.Parse(mine)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		filter.UserID = &id
	}

	recipes, err := h.recipes.SearchRecipes(c.Request.Context(), c.Query("q"), filter)
	if err != nil {
		logger.Error("failed to fetch recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": newRecipeResponses(recipes),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		logger.Error("failed to fetch recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": newRecipeResponse(recipe)})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	err = h.recipes.DeleteRecipe(c.Request.Context(), id, userID)
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own recipes"})
	case err != nil:
		logger.Error("failed to delete recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
	default:
		c.Status(http.StatusNoContent)
	}
}
