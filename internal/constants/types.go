package constants

import "strings"

// BackendProvider represents the backend infrastructure provider.
type BackendProvider string

const (
	// AWS is the Amazon Web Services backend provider.
	AWS BackendProvider = "AWS"
)

// Providers lists every supported backend provider.
var Providers = []BackendProvider{AWS}

// ProvidersString returns the supported providers as a lowercase, comma separated list.
func ProvidersString() string {
	names := make([]string, 0, len(Providers))
	for _, p := range Providers {
		names = append(names, strings.ToLower(string(p)))
	}
	return strings.Join(names, ", ")
}

// Environment represents the execution environment (e.g., CLI, Lambda).
type Environment string

// Environment types for logger configuration.
const (
	Development Environment = "development"
	Production  Environment = "production"
	CLI         Environment = "cli"
)
