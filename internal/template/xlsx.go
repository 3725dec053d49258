package template

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/pageza/recipekit/internal/types"
)

const (
	// DataSheet is the sheet holding the recipe rows.
	DataSheet = "Recipe Import Template"
	// HelpSheet explains each column.
	HelpSheet = "Instructions"

	headerFill     = "366092"
	maxColumnWidth = 50
)

// NewWorkbook builds the spreadsheet template. The caller must Close the
// returned file.
func NewWorkbook(recipes []types.RecipeRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	b := &workbookBuilder{f: f, widths: map[string][]int{}}

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return closeOnError(f, fmt.Errorf("rename data sheet: %w", err))
	}
	if err := b.writeData(recipes); err != nil {
		return closeOnError(f, err)
	}
	if _, err := f.NewSheet(HelpSheet); err != nil {
		return closeOnError(f, fmt.Errorf("create help sheet: %w", err))
	}
	if err := b.writeHelp(); err != nil {
		return closeOnError(f, err)
	}
	if err := b.applyWidths(); err != nil {
		return closeOnError(f, err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook writes the spreadsheet template to w.
func WriteWorkbook(w io.Writer, recipes []types.RecipeRecord) error {
	f, err := NewWorkbook(recipes)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the spreadsheet template to path.
func SaveWorkbook(path string, recipes []types.RecipeRecord) error {
	f, err := NewWorkbook(recipes)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

type workbookBuilder struct {
	f      *excelize.File
	widths map[string][]int
}

func (b *workbookBuilder) writeData(recipes []types.RecipeRecord) error {
	headerStyle, err := b.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	bodyStyle, err := b.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("create body style: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := b.writeRow(DataSheet, 1, header, headerStyle); err != nil {
		return err
	}
	for i, r := range recipes {
		if err := b.writeRow(DataSheet, i+2, row(r), bodyStyle); err != nil {
			return err
		}
	}
	return nil
}

func (b *workbookBuilder) writeHelp() error {
	titleStyle, err := b.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("create title style: %w", err)
	}
	headingStyle, err := b.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create heading style: %w", err)
	}

	for i, line := range helpLines {
		style := 0
		switch line.emphasis {
		case title:
			style = titleStyle
		case heading:
			style = headingStyle
		}
		values := make([]interface{}, len(line.cells))
		for j, c := range line.cells {
			values[j] = c
		}
		if err := b.writeRow(HelpSheet, i+1, values, style); err != nil {
			return err
		}
	}
	return nil
}

func (b *workbookBuilder) writeRow(sheet string, rowNum int, values []interface{}, style int) error {
	if len(values) == 0 {
		return nil
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := b.f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
		b.track(sheet, i, fmt.Sprint(v))
	}
	if style == 0 {
		return nil
	}
	first, _ := excelize.CoordinatesToCellName(1, rowNum)
	last, _ := excelize.CoordinatesToCellName(len(values), rowNum)
	if err := b.f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("style %s!%s:%s: %w", sheet, first, last, err)
	}
	return nil
}

func (b *workbookBuilder) track(sheet string, col int, value string) {
	widths := b.widths[sheet]
	for len(widths) <= col {
		widths = append(widths, 0)
	}
	if n := utf8.RuneCountInString(value); n > widths[col] {
		widths[col] = n
	}
	b.widths[sheet] = widths
}

func (b *workbookBuilder) applyWidths() error {
	for sheet, widths := range b.widths {
		for i, longest := range widths {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := b.f.SetColWidth(sheet, name, name, ColumnWidth(longest)); err != nil {
				return fmt.Errorf("set width %s!%s: %w", sheet, name, err)
			}
		}
	}
	return nil
}

// ColumnWidth is the display width for a column whose longest value has n
// characters.
func ColumnWidth(n int) float64 {
	return float64(min(n+2, maxColumnWidth))
}

func closeOnError(f *excelize.File, err error) (*excelize.File, error) {
	_ = f.Close()
	return nil, err
}
