package importer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pageza/recipekit/internal/samples"
	"github.com/pageza/recipekit/internal/template"
)

func TestParseGeneratedWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, template.WriteWorkbook(&buf, samples.Workbook()))

	res, err := Parse("recipe_import_template.xlsx", &buf)
	require.NoError(t, err)
	require.NoError(t, res.Err())
	assert.Equal(t, samples.Workbook(), res.Recipes)
}

func TestParseGeneratedCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, template.WriteCSV(&buf, samples.CSV()))

	res, err := Parse("RECIPES.CSV", &buf)
	require.NoError(t, err)
	require.NoError(t, res.Err())
	assert.Equal(t, samples.CSV(), res.Recipes)
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse("recipes.xls", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseRowsCollectsRowErrors(t *testing.T) {
	rows := [][]string{
		template.Headers,
		{"", "Main Course", "Indian"},
		{"Dal", "", "Indian"},
		{"Dal", "Main Course", ""},
		{"Dal", "Main Course", "Indian", "", "", "four"},
		{"Dal", "Main Course", "Indian", "", "", "0"},
		{"Dal", "Main Course", "Indian", "", "", "4", "Lentils,onlytwo"},
		{"", "  ", ""},
		{"Dal", "Main Course", "Indian", "", "", "4.0", "Lentils,200,g"},
	}

	res := ParseRows(rows)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, 4, *res.Recipes[0].Servings)
	assert.Nil(t, res.Recipes[0].Ingredients[0].CostPerUnit)

	assert.Equal(t, []RowError{
		{Row: 2, Message: "Recipe name is required"},
		{Row: 3, Message: "Category is required"},
		{Row: 4, Message: "Subcategory is required"},
		{Row: 5, Message: "Servings must be a whole number"},
		{Row: 6, Message: "Servings must be a whole number"},
		{Row: 7, Message: "Invalid ingredients format"},
	}, res.Errors)

	err := res.Err()
	var importErr *ImportError
	require.True(t, errors.As(err, &importErr))
	assert.Equal(t, "Row 2: Recipe name is required", importErr.Details()[0])
	assert.Len(t, importErr.Details(), 6)
}

func TestParseRowsAcceptsJSONIngredients(t *testing.T) {
	res := ParseRows([][]string{
		template.Headers,
		{"Kheer", "Dessert", "Indian", "Rice pudding", "", "", `[{"name":"Rice","quantity":150,"unit":"g","costPerUnit":0.03}]`},
	})
	require.NoError(t, res.Err())
	require.Len(t, res.Recipes, 1)
	assert.Nil(t, res.Recipes[0].Servings)
	require.Len(t, res.Recipes[0].Ingredients, 1)
	assert.Equal(t, "Rice", res.Recipes[0].Ingredients[0].Name)
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	_, err := ParseWorkbook(strings.NewReader("nope"))
	assert.Error(t, err)
}

func TestParseCSVRejectsBrokenQuotes(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Recipe Name\n\"unterminated"))
	assert.Error(t, err)
}

func TestParseWorkbookReadsRawServings(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(template.Headers))
	for i, h := range template.Headers {
		header[i] = h
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{
		"Thandai", "Beverage", "Indian", "", "", 1000, "Milk,1000,ml,0.02",
	}))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "F2", "F2", style))

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)

	res, err := ParseWorkbook(&buf)
	require.NoError(t, err)
	require.NoError(t, res.Err())
	require.Len(t, res.Recipes, 1)
	require.NotNil(t, res.Recipes[0].Servings)
	assert.Equal(t, 1000, *res.Recipes[0].Servings)
}
