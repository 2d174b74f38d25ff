package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taskapp/taskapp/internal/client"
	"github.com/taskapp/taskapp/internal/output"
)

// executeWithClient loads the CLI configuration, builds an API client and runs fn.
func executeWithClient(cmd *cobra.Command, fn func(ctx context.Context, c client.Interface) error) {
	cfg, err := getConfigFromContext(cmd)
	if err != nil {
		output.Errorf("failed to load configuration: %v", err)
		return
	}

	c := client.New(cfg, slog.Default())
	if err = fn(cmd.Context(), c); err != nil {
		output.Errorf(err.Error())
	}
}

const timeLayout = "2006-01-02 15:04:05"
