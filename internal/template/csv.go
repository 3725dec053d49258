package template

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pageza/recipekit/internal/types"
)

// WriteCSV writes the CSV template to w. Fields holding commas, quotes or
// line breaks are quoted.
func WriteCSV(w io.Writer, recipes []types.RecipeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range recipes {
		if err := cw.Write(textRow(r)); err != nil {
			return fmt.Errorf("write csv row %q: %w", r.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the CSV template to path.
func SaveCSV(path string, recipes []types.RecipeRecord) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return WriteCSV(f, recipes)
}
