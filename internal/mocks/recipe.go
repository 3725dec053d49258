// Package mocks provides testify mocks of the service interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipekit/internal/model"
	"github.com/pageza/recipekit/internal/service"
	"github.com/pageza/recipekit/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

var (
	_ service.IRecipeService = (*MockRecipeService)(nil)
	_ service.IAuthService   = (*MockAuthService)(nil)
)

// ImportRecipes mocks the ImportRecipes method
func (m *MockRecipeService) ImportRecipes(ctx context.Context, userID uuid.UUID, records []types.RecipeRecord) ([]*model.Recipe, []string) {
	args := m.Called(ctx, userID, records)
	var imported []*model.Recipe
	if v := args.Get(0); v != nil {
		imported = v.([]*model.Recipe)
	}
	var failures []string
	if v := args.Get(1); v != nil {
		failures = v.([]string)
	}
	return imported, failures
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context, filter service.ListFilter) ([]*model.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockRecipeService) SearchRecipes(ctx context.Context, query string, filter service.ListFilter) ([]*model.Recipe, error) {
	args := m.Called(ctx, query, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}
