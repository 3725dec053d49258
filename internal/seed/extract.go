// Package seed turns a spreadsheet of recipe names into seed records.
package seed

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pageza/recipekit/internal/types"
)

// Defaults is the metadata assigned to every extracted recipe. The
// description and instructions formats receive the lower-cased recipe name
// as their single %s argument.
type Defaults struct {
	Category           string
	Subcategory        string
	DescriptionFormat  string
	InstructionsFormat string
	Servings           int
}

// DefaultDefaults returns the metadata used for the Gujarati liquid dessert
// catalogue.
func DefaultDefaults() Defaults {
	return Defaults{
		Category:           "Liquid Dessert",
		Subcategory:        "Gujarati",
		DescriptionFormat:  "Traditional Gujarati %s",
		InstructionsFormat: "Prepare %s according to traditional Gujarati recipe",
		Servings:           10,
	}
}

// ExtractName returns the recipe name held in the second column of row.
// ok is false when the row should be skipped: either of the first two
// columns is blank, or the name is actually a number.
func ExtractName(row []string) (name string, ok bool) {
	if len(row) < 2 || strings.TrimSpace(row[0]) == "" || strings.TrimSpace(row[1]) == "" {
		return "", false
	}
	name = strings.TrimSpace(row[1])
	if name == "" || isNumeric(name) {
		return "", false
	}
	return name, true
}

// Extract builds seed recipes from rows. IDs are numbered by accepted row,
// starting at recipe-1.
func Extract(rows [][]string, d Defaults) []types.SeedRecipe {
	var recipes []types.SeedRecipe
	for _, row := range rows {
		name, ok := ExtractName(row)
		if !ok {
			continue
		}
		lower := strings.ToLower(name)
		recipes = append(recipes, types.SeedRecipe{
			ID:           fmt.Sprintf("recipe-%d", len(recipes)+1),
			Name:         name,
			Category:     d.Category,
			Subcategory:  d.Subcategory,
			Description:  fmt.Sprintf(d.DescriptionFormat, lower),
			Instructions: fmt.Sprintf(d.InstructionsFormat, lower),
			Servings:     d.Servings,
		})
	}
	return recipes
}

// isNumeric reports whether s is all digits once a single decimal point is
// removed.
func isNumeric(s string) bool {
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
