package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/recipekit/internal/api"
	"github.com/pageza/recipekit/internal/logger"
	"github.com/pageza/recipekit/internal/samples"
	"github.com/pageza/recipekit/internal/template"
	"github.com/pageza/recipekit/internal/types"
)

type templateFormat struct {
	name        string
	filename    string
	contentType string
	samples     func() []types.RecipeRecord
	save        func(path string, recipes []types.RecipeRecord) error
	features    []string
}

var templateFormats = []templateFormat{
	{
		name:        "xlsx",
		filename:    api.WorkbookFilename,
		contentType: api.XLSXContentType,
		samples:     samples.Workbook,
		save:        template.SaveWorkbook,
		features: []string{
			"Sample recipes with proper formatting",
			"Instructions sheet with detailed guidelines",
			"Proper column headers and data types",
		},
	},
	{
		name:        "csv",
		filename:    api.CSVFilename,
		contentType: api.CSVContentType,
		samples:     samples.CSV,
		save:        template.SaveCSV,
		features: []string{
			"10 sample recipes with proper formatting",
			"All required and optional fields",
			"Proper ingredients format",
			"Instructions with line breaks",
		},
	},
}

func newTemplateCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Generate recipe import templates",
	}
	for _, f := range templateFormats {
		cmd.AddCommand(newTemplateFormatCommand(ctx, f))
	}
	return cmd
}

func newTemplateFormatCommand(ctx *commandContext, f templateFormat) *cobra.Command {
	var (
		out     string
		publish bool
	)

	cmd := &cobra.Command{
		Use:   f.name,
		Short: fmt.Sprintf("Write the %s import template", f.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.outputPath(cmd, "out", out)
			if err != nil {
				return err
			}

			recipes := f.samples()
			if err := ensureDir(path); err != nil {
				return err
			}
			if err := f.save(path, recipes); err != nil {
				return fmt.Errorf("generate %s template: %w", f.name, err)
			}
			logger.Info("template written", zap.String("path", path), zap.Int("recipes", len(recipes)))

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Recipe import template created successfully!")
			fmt.Fprintf(w, "File: %s\n", path)
			fmt.Fprintln(w, "\nTemplate includes:")
			for _, line := range f.features {
				fmt.Fprintf(w, "- %s\n", line)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, recipeTable(recipes))

			if publish {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				return ctx.publish(cmd, "templates/"+f.filename, f.contentType, data)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", f.filename, "Output file path")
	cmd.Flags().BoolVar(&publish, "publish", false, "Upload the template to the configured S3 bucket")
	return cmd
}

func recipeTable(recipes []types.RecipeRecord) string {
	rows := make([][]string, len(recipes))
	for i, r := range recipes {
		rows[i] = []string{
			r.Name,
			r.Category,
			r.Subcategory,
			r.ServingsText(),
			strconv.Itoa(len(r.Ingredients)),
		}
	}
	return renderTable(
		[]string{"Recipe", "Category", "Subcategory", "Servings", "Ingredients"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	)
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
