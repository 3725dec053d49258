package types

import (
	"errors"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pageza/recipekit/internal/ingredients"
)

// RecipeRecord is one recipe as it appears in an import template row.
type RecipeRecord struct {
	Name         string                   `json:"name"`
	Category     string                   `json:"category"`
	Subcategory  string                   `json:"subcategory"`
	Description  string                   `json:"description,omitempty"`
	Instructions string                   `json:"instructions,omitempty"`
	Servings     *int                     `json:"servings,omitempty"`
	Ingredients  []ingredients.Ingredient `json:"ingredients"`
}

// Validate checks required fields and that the ingredient list can be
// written to a template cell.
func (r RecipeRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&r.Category, validation.Required, validation.By(notBlank)),
		validation.Field(&r.Subcategory, validation.Required, validation.By(notBlank)),
		validation.Field(&r.Servings, validation.By(positive)),
		validation.Field(&r.Ingredients, validation.By(func(interface{}) error {
			return ingredients.Validate(r.Ingredients)
		})),
	)
}

// IngredientsText returns the ingredient list in template cell form.
func (r RecipeRecord) IngredientsText() string {
	return ingredients.Encode(r.Ingredients)
}

// ServingsText returns servings as a cell value, empty when unset.
func (r RecipeRecord) ServingsText() string {
	if r.Servings == nil {
		return ""
	}
	return strconv.Itoa(*r.Servings)
}

// SeedRecipe is the seed-data shape written by the spreadsheet extractor.
type SeedRecipe struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Servings     int    `json:"servings"`
}

// Servings returns a pointer for RecipeRecord.Servings.
func Servings(n int) *int {
	return &n
}

func positive(value interface{}) error {
	if n, ok := value.(*int); ok && n != nil && *n < 1 {
		return errors.New("must be a positive whole number")
	}
	return nil
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}
