package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipekit/internal/logger"
	"github.com/pageza/recipekit/internal/model"
	"github.com/pageza/recipekit/internal/types"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotOwner       = errors.New("recipe belongs to another user")
)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListFilter narrows ListRecipes and SearchRecipes. Zero values match
// everything.
type ListFilter struct {
	UserID   *uuid.UUID
	Category string
}

// ImportRecipes stores records for userID, each in its own transaction.
// A record that cannot be saved is reported as "Failed to import recipe:
// <name>" and does not stop the rest.
func (s *RecipeService) ImportRecipes(ctx context.Context, userID uuid.UUID, records []types.RecipeRecord) ([]*model.Recipe, []string) {
	var (
		imported []*model.Recipe
		failures []string
	)
	for _, rec := range records {
		recipe := model.NewRecipe(userID, rec)
		err := rec.Validate()
		if err == nil {
			err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return tx.Create(recipe).Error
			})
		}
		if err != nil {
			logger.Warn("failed to import recipe", zap.String("name", rec.Name), zap.Error(err))
			failures = append(failures, fmt.Sprintf("Failed to import recipe: %s", rec.Name))
			continue
		}
		imported = append(imported, recipe)
	}
	return imported, failures
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe soft-deletes a recipe owned by userID.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != userID {
		return ErrNotOwner
	}
	return s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}

// ListRecipes lists recipes matching filter, oldest first.
func (s *RecipeService) ListRecipes(ctx context.Context, filter ListFilter) ([]*model.Recipe, error) {
	return s.find(s.scoped(ctx, filter))
}

// likeEscaper makes %, _ and the escape character match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchRecipes matches query case-insensitively against the name,
// description and ingredient text of recipes passing filter.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string, filter ListFilter) ([]*model.Recipe, error) {
	q := s.scoped(ctx, filter)
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(ingredients) LIKE ? ESCAPE '\'`,
			like, like, like)
	}
	return s.find(q)
}

func (s *RecipeService) scoped(ctx context.Context, filter ListFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&model.Recipe{})
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}
	return q
}

func (s *RecipeService) find(q *gorm.DB) ([]*model.Recipe, error) {
	var recipes []*model.Recipe
	if err := q.Order("created_at ASC").Order("name ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
