package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/recipekit/internal/middleware"
	"github.com/pageza/recipekit/internal/service"
)

// SetupAPI registers every route on router. importLimiter may be nil.
func SetupAPI(router *gin.Engine, recipes service.IRecipeService, authService service.IAuthService, importLimiter *middleware.RateLimiter) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		templates := v1.Group("/templates")
		templates.GET("/recipes.xlsx", DownloadWorkbookTemplate)
		templates.GET("/recipes.csv", DownloadCSVTemplate)

		NewRecipeHandler(recipes, authService, importLimiter).RegisterRoutes(v1)
	}
}
