package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pageza/recipekit/config"
	"github.com/pageza/recipekit/internal/database"
)

// artifactUploader publishes generated files.
type artifactUploader interface {
	UploadArtifact(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type commandContext struct {
	loadConfig  func() (*config.Config, error)
	newUploader func(context.Context, *config.Config) (artifactUploader, error)
	openDB      func(*config.Config) (*gorm.DB, error)

	skipLoggerInit bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{
		loadConfig: config.LoadConfig,
		newUploader: func(ctx context.Context, cfg *config.Config) (artifactUploader, error) {
			return config.NewS3Config(ctx, cfg)
		},
		openDB: func(cfg *config.Config) (*gorm.DB, error) {
			db, err := database.New(cfg)
			if err != nil {
				return nil, err
			}
			if err := database.Migrate(db); err != nil {
				return nil, err
			}
			return db, nil
		},
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = c.loadConfig()
	})
	return c.config, c.configErr
}

// outputPath resolves the --out flag: an explicit value is used as given,
// the default name is placed in the configured output directory.
func (c *commandContext) outputPath(cmd *cobra.Command, flag, value string) (string, error) {
	if cmd.Flags().Changed(flag) {
		return value, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.OutputDir, value), nil
}

// publish uploads data when --publish was given and reports the URL.
func (c *commandContext) publish(cmd *cobra.Command, key, contentType string, data []byte) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	uploader, err := c.newUploader(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	url, err := uploader.UploadArtifact(cmd.Context(), key, contentType, data)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Published: %s\n", url)
	return nil
}
