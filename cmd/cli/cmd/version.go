package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taskapp/taskapp/internal/client"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/output"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the CLI and the backend",
	Run: func(cmd *cobra.Command, _ []string) {
		output.KeyValue("CLI version", *constants.GetVersion())

		cfg, err := getConfigFromContext(cmd)
		if err != nil {
			output.Warningf("backend version unavailable: %v", err)
			return
		}

		health, err := client.New(cfg, slog.Default()).GetHealth(cmd.Context())
		if err != nil {
			output.Errorf(err.Error())
			return
		}

		output.KeyValue("Backend version", health.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
