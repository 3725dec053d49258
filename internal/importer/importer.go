// Package importer reads filled-in recipe import templates.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pageza/recipekit/internal/ingredients"
	"github.com/pageza/recipekit/internal/types"
)

// ErrUnsupportedFormat is returned for files that are neither .xlsx nor .csv.
var ErrUnsupportedFormat = errors.New("invalid file type, please upload an Excel (.xlsx) or CSV file")

// ErrNoSheet is returned when a workbook has no worksheets.
var ErrNoSheet = errors.New("no worksheet found in the Excel file")

const (
	colName = iota
	colCategory
	colSubcategory
	colDescription
	colInstructions
	colServings
	colIngredients
)

// RowError describes why a template row was rejected. Row is the
// 1-based spreadsheet row number.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}

// ImportError lists every rejected row of an import.
type ImportError struct {
	Rows []RowError
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("validation errors found: %s", strings.Join(e.Details(), "; "))
}

// Details returns one message per rejected row.
func (e *ImportError) Details() []string {
	details := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		details[i] = r.Error()
	}
	return details
}

// Result holds the recipes parsed from a template and the rows that failed.
type Result struct {
	Recipes []types.RecipeRecord
	Errors  []RowError
}

// Err returns an *ImportError when any row failed.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return &ImportError{Rows: r.Errors}
}

// Parse reads a template, choosing the format from filename's extension.
func Parse(filename string, r io.Reader) (Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return ParseWorkbook(r)
	case ".csv":
		return ParseCSV(r)
	default:
		return Result{}, ErrUnsupportedFormat
	}
}

// ParseWorkbook reads the first worksheet of an .xlsx template.
func ParseWorkbook(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, ErrNoSheet
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Result{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return ParseRows(rows), nil
}

// ParseCSV reads a CSV template.
func ParseCSV(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("read csv: %w", err)
	}
	return ParseRows(rows), nil
}

// ParseRows converts template rows into recipes. The first row is the
// header; blank rows are ignored.
func ParseRows(rows [][]string) Result {
	var res Result
	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue
		}
		rec, msg := parseRow(row)
		if msg != "" {
			res.Errors = append(res.Errors, RowError{Row: i + 1, Message: msg})
			continue
		}
		res.Recipes = append(res.Recipes, rec)
	}
	return res
}

func parseRow(row []string) (types.RecipeRecord, string) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	rec := types.RecipeRecord{
		Name:         cell(colName),
		Category:     cell(colCategory),
		Subcategory:  cell(colSubcategory),
		Description:  cell(colDescription),
		Instructions: cell(colInstructions),
	}
	switch {
	case rec.Name == "":
		return rec, "Recipe name is required"
	case rec.Category == "":
		return rec, "Category is required"
	case rec.Subcategory == "":
		return rec, "Subcategory is required"
	}

	if s := cell(colServings); s != "" {
		n, ok := parseServings(s)
		if !ok {
			return rec, "Servings must be a whole number"
		}
		rec.Servings = &n
	}

	list, err := ingredients.ParseCell(cell(colIngredients))
	if err != nil {
		return rec, "Invalid ingredients format"
	}
	rec.Ingredients = list
	return rec, ""
}

// parseServings accepts positive whole numbers, including spreadsheet
// numerics such as "4.0".
func parseServings(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, n > 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
