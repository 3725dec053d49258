package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pageza/recipekit/internal/types"
)

// ErrNoSheet is returned when a workbook has no worksheets.
var ErrNoSheet = errors.New("workbook has no worksheets")

// ReadRows returns the rows of the first worksheet in an .xlsx workbook,
// without the header row.
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	// Raw values keep number formats such as #,##0 from turning numbers
	// into text that looks like a name.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// WriteJSON writes recipes as an indented JSON array. Non-ASCII text is
// written as-is.
func WriteJSON(w io.Writer, recipes []types.SeedRecipe) error {
	if recipes == nil {
		recipes = []types.SeedRecipe{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(recipes); err != nil {
		return fmt.Errorf("encode seed data: %w", err)
	}
	return nil
}

// Preview returns at most n recipes from the start of the list.
func Preview(recipes []types.SeedRecipe, n int) []types.SeedRecipe {
	if n < 0 {
		n = 0
	}
	if len(recipes) < n {
		return recipes
	}
	return recipes[:n]
}
