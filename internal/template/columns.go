// Package template writes the recipe import template as a spreadsheet or
// CSV file.
package template

import (
	"github.com/pageza/recipekit/internal/types"
)

// Headers are the template columns, in order.
var Headers = []string{
	"Recipe Name",
	"Category",
	"Subcategory",
	"Description",
	"Instructions",
	"Servings",
	"Ingredients",
}

// row returns the cell values for one recipe. Servings stays numeric so
// spreadsheets store it as a number.
func row(r types.RecipeRecord) []interface{} {
	var servings interface{} = ""
	if r.Servings != nil {
		servings = *r.Servings
	}
	return []interface{}{
		r.Name,
		r.Category,
		r.Subcategory,
		r.Description,
		r.Instructions,
		servings,
		r.IngredientsText(),
	}
}

func textRow(r types.RecipeRecord) []string {
	return []string{
		r.Name,
		r.Category,
		r.Subcategory,
		r.Description,
		r.Instructions,
		r.ServingsText(),
		r.IngredientsText(),
	}
}

type emphasis int

const (
	plain emphasis = iota
	heading
	title
)

type helpLine struct {
	cells    []string
	emphasis emphasis
}

var helpLines = []helpLine{
	{[]string{"Recipe Import Template - Instructions"}, title},
	{nil, plain},
	{[]string{"Column Descriptions:"}, heading},
	{[]string{"Recipe Name", "Required. The name of the recipe"}, plain},
	{[]string{"Category", "Required. Main category (e.g., Main Course, Dessert, etc.)"}, plain},
	{[]string{"Subcategory", "Required. Subcategory (e.g., Indian, Italian, etc.)"}, plain},
	{[]string{"Description", "Optional. Brief description of the recipe"}, plain},
	{[]string{"Instructions", "Optional. Step-by-step cooking instructions"}, plain},
	{[]string{"Servings", "Optional. Number of servings (whole number)"}, plain},
	{[]string{"Ingredients", "Optional. Ingredients in format: Name,Quantity,Unit,CostPerUnit;Name2,Quantity2,Unit2,CostPerUnit2"}, plain},
	{nil, plain},
	{[]string{"Important Notes:"}, heading},
	{[]string{"- First row contains headers. Do not modify these."}, plain},
	{[]string{"- Recipe Name, Category, and Subcategory are required fields."}, plain},
	{[]string{"- Ingredients format: 'Chicken,500,g,0.02;Onion,100,g,0.01'"}, plain},
	{[]string{"- Each ingredient should have: Name, Quantity, Unit, CostPerUnit (optional)"}, plain},
	{[]string{"- Separate multiple ingredients with semicolon (;)"}, plain},
	{[]string{"- CostPerUnit is optional for each ingredient"}, plain},
	{[]string{"- Ingredient names cannot contain commas or semicolons"}, plain},
	{[]string{"- Servings should be a whole number"}, plain},
	{[]string{"- Instructions can include line breaks using \\n"}, plain},
}
