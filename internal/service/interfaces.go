package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/recipekit/internal/model"
	"github.com/pageza/recipekit/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ImportRecipes(ctx context.Context, userID uuid.UUID, records []types.RecipeRecord) ([]*model.Recipe, []string)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error
	ListRecipes(ctx context.Context, filter ListFilter) ([]*model.Recipe, error)
	SearchRecipes(ctx context.Context, query string, filter ListFilter) ([]*model.Recipe, error)
}

var (
	_ IAuthService   = (*AuthService)(nil)
	_ IRecipeService = (*RecipeService)(nil)
)
