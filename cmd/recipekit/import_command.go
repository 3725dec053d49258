package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pageza/recipekit/internal/database"
	"github.com/pageza/recipekit/internal/importer"
	"github.com/pageza/recipekit/internal/service"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var (
		user   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a filled-in .xlsx or .csv template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var userID uuid.UUID
			if !dryRun {
				id, err := uuid.Parse(user)
				if err != nil {
					return fmt.Errorf("--user must be a UUID when not using --dry-run")
				}
				userID = id
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			res, err := importer.Parse(path, f)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			w := cmd.OutOrStdout()
			var importErr *importer.ImportError
			if errors.As(res.Err(), &importErr) {
				fmt.Fprintln(w, "Validation errors found")
				fmt.Fprintln(w, rowErrorTable(importErr.Rows))
				return importErr
			}

			fmt.Fprintln(w, recipeTable(res.Recipes))
			if dryRun {
				fmt.Fprintf(w, "Dry run: %d recipes would be imported\n", len(res.Recipes))
				return nil
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			db, err := ctx.openDB(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			imported, failures := service.NewRecipeService(db).ImportRecipes(cmd.Context(), userID, res.Recipes)
			fmt.Fprintf(w, "Successfully imported %d recipes\n", len(imported))
			for _, msg := range failures {
				fmt.Fprintln(w, msg)
			}
			if len(failures) > 0 {
				return fmt.Errorf("%d recipes failed to import", len(failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "ID of the user who will own the recipes")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without saving anything")
	return cmd
}

func rowErrorTable(rows []importer.RowError) string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{strconv.Itoa(r.Row), r.Message}
	}
	return renderTable([]string{"Row", "Error"}, out, []columnAlignment{alignRight, alignLeft})
}
