package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipekit/internal/ingredients"
	"github.com/pageza/recipekit/internal/types"
)

type Recipe struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Category     string           `gorm:"size:100;not null;index" json:"category"`
	Subcategory  string           `gorm:"size:100;not null" json:"subcategory"`
	Description  string           `gorm:"type:text" json:"description"`
	Instructions string           `gorm:"type:text" json:"instructions"`
	Servings     *int             `json:"servings"`
	Ingredients  ingredients.List `gorm:"type:text;not null;default:''" json:"ingredients"`
	UserID       uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
}

// BeforeCreate assigns an ID when none is set.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Cost is the total ingredient cost of the recipe.
func (r *Recipe) Cost() float64 {
	return r.Ingredients.Cost()
}

// NewRecipe builds a Recipe owned by userID from an imported record.
func NewRecipe(userID uuid.UUID, rec types.RecipeRecord) *Recipe {
	return &Recipe{
		Name:         rec.Name,
		Category:     rec.Category,
		Subcategory:  rec.Subcategory,
		Description:  rec.Description,
		Instructions: rec.Instructions,
		Servings:     rec.Servings,
		Ingredients:  ingredients.List(rec.Ingredients),
		UserID:       userID,
	}
}

// Record converts the recipe back to its template form.
func (r *Recipe) Record() types.RecipeRecord {
	return types.RecipeRecord{
		Name:         r.Name,
		Category:     r.Category,
		Subcategory:  r.Subcategory,
		Description:  r.Description,
		Instructions: r.Instructions,
		Servings:     r.Servings,
		Ingredients:  []ingredients.Ingredient(r.Ingredients),
	}
}
