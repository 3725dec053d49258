package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/recipekit/internal/ingredients"
	"github.com/pageza/recipekit/internal/types"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Recipe{}))
	return db
}

func TestRecipePersistsIngredientsAsText(t *testing.T) {
	db := openTestDB(t)

	rec := types.RecipeRecord{
		Name:        "Paneer Tikka",
		Category:    "Appetizer",
		Subcategory: "Indian",
		Servings:    types.Servings(6),
		Ingredients: ingredients.MustDecode("Paneer,400,g,0.035;Yogurt,100,ml"),
	}
	recipe := NewRecipe(uuid.New(), rec)
	require.NoError(t, db.Create(recipe).Error)
	assert.NotEqual(t, uuid.Nil, recipe.ID)

	var raw string
	require.NoError(t, db.Raw("SELECT ingredients FROM recipes WHERE id = ?", recipe.ID).Scan(&raw).Error)
	assert.Equal(t, "Paneer,400,g,0.035;Yogurt,100,ml", raw)

	var loaded Recipe
	require.NoError(t, db.First(&loaded, "id = ?", recipe.ID).Error)
	assert.Equal(t, rec, loaded.Record())
	assert.InDelta(t, 14.0, loaded.Cost(), 1e-9)
}

func TestRecipeKeepsExplicitID(t *testing.T) {
	db := openTestDB(t)

	id := uuid.New()
	recipe := &Recipe{ID: id, Name: "Kheer", Category: "Dessert", Subcategory: "Indian", UserID: uuid.New()}
	require.NoError(t, db.Create(recipe).Error)
	assert.Equal(t, id, recipe.ID)

	var loaded Recipe
	require.NoError(t, db.First(&loaded, "id = ?", id).Error)
	assert.Empty(t, loaded.Ingredients)
	assert.Nil(t, loaded.Servings)
}
