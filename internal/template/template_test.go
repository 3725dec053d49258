package template

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pageza/recipekit/internal/ingredients"
	"github.com/pageza/recipekit/internal/samples"
	"github.com/pageza/recipekit/internal/types"
)

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, samples.Workbook()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DataSheet, HelpSheet}, f.GetSheetList())

	rows, err := f.GetRows(DataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, Headers, rows[0])

	first := rows[1]
	assert.Equal(t, "Chicken Curry", first[0])
	assert.Equal(t, "4", first[5])
	assert.Contains(t, first[4], "\n2. Heat oil in a pan")

	list, err := ingredients.Decode(first[6])
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestWorkbookStylesAndWidths(t *testing.T) {
	f, err := NewWorkbook(samples.Workbook())
	require.NoError(t, err)
	defer f.Close()

	headerStyle, err := f.GetCellStyle(DataSheet, "A1")
	require.NoError(t, err)
	assert.NotZero(t, headerStyle)

	style, err := f.GetStyle(headerStyle)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	// Instructions and Ingredients overflow and are capped.
	width, err := f.GetColWidth(DataSheet, "G")
	require.NoError(t, err)
	assert.Equal(t, float64(maxColumnWidth), width)

	// "Subcategory" (11) is the longest value in column C.
	width, err = f.GetColWidth(DataSheet, "C")
	require.NoError(t, err)
	assert.Equal(t, 13.0, width)

	title, err := f.GetCellValue(HelpSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Recipe Import Template - Instructions", title)

	titleStyle, err := f.GetCellStyle(HelpSheet, "A1")
	require.NoError(t, err)
	s, err := f.GetStyle(titleStyle)
	require.NoError(t, err)
	assert.Equal(t, 14.0, s.Font.Size)
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, 6.0, ColumnWidth(4))
	assert.Equal(t, 50.0, ColumnWidth(48))
	assert.Equal(t, 50.0, ColumnWidth(500))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, samples.CSV()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11)
	assert.Equal(t, Headers, records[0])

	naan := records[4]
	assert.Equal(t, "Naan Bread", naan[0])
	assert.Equal(t, "1. Mix flour, yeast, and water\n2. Knead for 10 minutes\n3. Let rise for 2 hours\n4. Shape into flatbreads\n5. Cook on hot griddle", naan[4])
	assert.Equal(t, "10", naan[5])

	list, err := ingredients.Decode(records[10][6])
	require.NoError(t, err)
	assert.Equal(t, "Nuts", list[len(list)-1].Name)
}

func TestWriteCSVQuotesMultilineFields(t *testing.T) {
	var buf bytes.Buffer
	r := types.RecipeRecord{
		Name:         "Tea",
		Category:     "Beverage",
		Subcategory:  "Indian",
		Instructions: "1. Boil\n2. Steep",
		Ingredients:  ingredients.MustDecode("Tea,5,g;Milk,100,ml"),
	}
	require.NoError(t, WriteCSV(&buf, []types.RecipeRecord{r}))

	lines := strings.SplitN(buf.String(), "\n", 2)
	assert.Equal(t, strings.Join(Headers, ","), lines[0])
	assert.Equal(t, "Tea,Beverage,Indian,,\"1. Boil\n2. Steep\",,\"Tea,5,g;Milk,100,ml\"\n", lines[1])
}

func TestSaveFiles(t *testing.T) {
	dir := t.TempDir()

	xlsxPath := filepath.Join(dir, "recipe_import_template.xlsx")
	require.NoError(t, SaveWorkbook(xlsxPath, samples.Workbook()))
	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	csvPath := filepath.Join(dir, "recipe_import_template.csv")
	require.NoError(t, SaveCSV(csvPath, samples.CSV()))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Recipe Name,Category"))

	assert.Error(t, SaveCSV(filepath.Join(dir, "missing", "out.csv"), nil))
}
