package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pageza/recipekit/internal/logger"
)

func main() {
	cmd := newRootCommand(newCommandContext())
	err := cmd.Execute()
	_ = logger.Sync()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
