package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pageza/recipekit/internal/service"
	"github.com/pageza/recipekit/internal/types"
)

func newTokenCommand(ctx *commandContext) *cobra.Command {
	var (
		user     string
		username string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if ttl <= 0 {
				return fmt.Errorf("--ttl must be positive")
			}

			userID := uuid.New()
			if user != "" {
				if userID, err = uuid.Parse(user); err != nil {
					return fmt.Errorf("--user must be a UUID: %w", err)
				}
			}

			token, err := service.NewAuthService(cfg.JWTSecret, ttl).GenerateToken(&types.TokenClaims{
				UserID:   userID,
				Username: username,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"User", "Expires", "Token"},
				[][]string{{userID.String(), time.Now().Add(ttl).Format(time.RFC3339), token}},
				nil,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID (a new one is generated when empty)")
	cmd.Flags().StringVar(&username, "username", "", "Username claim")
	cmd.Flags().DurationVar(&ttl, "ttl", service.DefaultTokenTTL, "Token lifetime")
	return cmd
}
