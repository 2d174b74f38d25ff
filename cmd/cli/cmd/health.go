package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskapp/taskapp/internal/client"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/output"
)

var healthCmd = &cobra.Command{
	Use:     "health",
	Short:   "Check the backend health",
	Example: fmt.Sprintf(`  - %s health`, constants.ProjectName),
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewHealthService(c, NewOutputWrapper(), outputFormat).Check(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// HealthService queries and renders the backend health report
type HealthService struct {
	client client.Interface
	output OutputInterface
	format output.Format
}

// NewHealthService creates a new HealthService with the provided dependencies
func NewHealthService(c client.Interface, o OutputInterface, format output.Format) *HealthService {
	return &HealthService{client: c, output: o, format: format}
}

// Check prints the health report. A degraded backend is reported as an error.
func (s *HealthService) Check(ctx context.Context) error {
	resp, err := s.client.GetHealth(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if s.format == output.FormatYAML {
		if err = s.output.YAML(resp); err != nil {
			return err
		}
	} else {
		s.output.KeyValue("Status", resp.Status)
		s.output.KeyValue("Version", resp.Version)
		if len(resp.Checks) > 0 {
			rows := make([][]string, 0, len(resp.Checks))
			for _, check := range resp.Checks {
				rows = append(rows, []string{check.Name, s.output.StatusBadge(check.Healthy), check.Error})
			}
			s.output.Blank()
			s.output.Table([]string{"Check", "Healthy", "Error"}, rows)
		}
		s.output.Blank()
	}

	if resp.Status != "ok" {
		return fmt.Errorf("backend is %s", resp.Status)
	}
	if s.format == output.FormatTable {
		s.output.Successf("Backend is healthy")
	}
	return nil
}
