package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/recipekit/internal/logger"
	"github.com/pageza/recipekit/internal/seed"
)

const (
	defaultSeedInput  = "liquid.xlsx"
	defaultSeedOutput = "recipes_seed_data.json"
)

func newSeedCommand(ctx *commandContext) *cobra.Command {
	var (
		in          string
		out         string
		category    string
		subcategory string
		servings    int
		preview     int
		publish     bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Extract recipe names from a spreadsheet into seed JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			d := seed.Defaults{
				Category:           cfg.Seed.Category,
				Subcategory:        cfg.Seed.Subcategory,
				DescriptionFormat:  cfg.Seed.DescriptionFormat,
				InstructionsFormat: cfg.Seed.InstructionsFormat,
				Servings:           cfg.Seed.Servings,
			}
			flags := cmd.Flags()
			if flags.Changed("category") {
				d.Category = category
			}
			if flags.Changed("subcategory") {
				d.Subcategory = subcategory
			}
			if flags.Changed("servings") {
				if servings < 1 {
					return fmt.Errorf("--servings must be positive")
				}
				d.Servings = servings
			}

			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("open %s: %w", in, err)
			}
			defer f.Close()

			rows, err := seed.ReadRows(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", in, err)
			}
			recipes := seed.Extract(rows, d)
			logger.Info("extracted seed recipes",
				zap.String("input", in),
				zap.Int("rows", len(rows)),
				zap.Int("recipes", len(recipes)),
			)

			var buf bytes.Buffer
			if err := seed.WriteJSON(&buf, recipes); err != nil {
				return err
			}
			path, err := ctx.outputPath(cmd, "out", out)
			if err != nil {
				return err
			}
			if err := writeFile(path, buf.Bytes()); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Generated %d recipes seed data saved to %s\n", len(recipes), path)
			if preview > 0 {
				fmt.Fprintln(w, "\nGenerated seed data:")
				if err := seed.WriteJSON(w, seed.Preview(recipes, preview)); err != nil {
					return err
				}
			}

			if publish {
				return ctx.publish(cmd, "seed/"+defaultSeedOutput, "application/json", buf.Bytes())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", defaultSeedInput, "Spreadsheet to read")
	cmd.Flags().StringVarP(&out, "out", "o", defaultSeedOutput, "Seed JSON output path")
	cmd.Flags().StringVar(&category, "category", "", "Category for every recipe (default from SEED_CATEGORY)")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "Subcategory for every recipe (default from SEED_SUBCATEGORY)")
	cmd.Flags().IntVar(&servings, "servings", 0, "Servings for every recipe (default from SEED_SERVINGS)")
	cmd.Flags().IntVar(&preview, "preview", 3, "Number of recipes to print")
	cmd.Flags().BoolVar(&publish, "publish", false, "Upload the seed file to the configured S3 bucket")
	return cmd
}
