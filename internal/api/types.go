package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/recipekit/internal/ingredients"
	"github.com/pageza/recipekit/internal/model"
)

// RecipeResponse represents the response structure for recipe-related API endpoints
type RecipeResponse struct {
	ID           uuid.UUID                `json:"id"`
	Name         string                   `json:"name"`
	Category     string                   `json:"category"`
	Subcategory  string                   `json:"subcategory"`
	Description  string                   `json:"description"`
	Instructions string                   `json:"instructions"`
	Servings     *int                     `json:"servings"`
	Ingredients  []ingredients.Ingredient `json:"ingredients"`
	TotalCost    float64                  `json:"totalCost"`
	UserID       uuid.UUID                `json:"userId"`
	CreatedAt    time.Time                `json:"createdAt"`
}

// ImportResponse is returned by a successful template import.
type ImportResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	ImportedCount int      `json:"importedCount"`
	Errors        []string `json:"errors,omitempty"`
}

// ValidationErrorResponse lists the template rows that were rejected.
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

func newRecipeResponse(r *model.Recipe) RecipeResponse {
	ingr := []ingredients.Ingredient(r.Ingredients)
	if ingr == nil {
		ingr = []ingredients.Ingredient{}
	}
	return RecipeResponse{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		Subcategory:  r.Subcategory,
		Description:  r.Description,
		Instructions: r.Instructions,
		Servings:     r.Servings,
		Ingredients:  ingr,
		TotalCost:    r.Cost(),
		UserID:       r.UserID,
		CreatedAt:    r.CreatedAt,
	}
}

func newRecipeResponses(recipes []*model.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = newRecipeResponse(r)
	}
	return out
}
