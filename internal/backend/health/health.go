// Package health defines the dependency health check contract.
package health

import (
	"context"
	"time"
)

// Manager probes the backing services of the deployment.
type Manager interface {
	// Check runs every probe and returns the aggregated report.
	// Individual probe failures are reported in the result, not as an error.
	Check(ctx context.Context) (*Report, error)
}

// Report contains the results of a health check run.
type Report struct {
	Timestamp time.Time
	Checks    []CheckResult
}

// CheckResult is the outcome of a single probe.
type CheckResult struct {
	Name    string
	Healthy bool
	Error   string
}

// Healthy reports whether every probe succeeded.
func (r *Report) Healthy() bool {
	for _, c := range r.Checks {
		if !c.Healthy {
			return false
		}
	}
	return true
}
