// Package api defines the request and response types of the taskapp HTTP API.
// It is shared by the server handlers and the CLI client.
package api

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents the response to a health check request
type HealthResponse struct {
	Status  string        `json:"status" yaml:"status"`
	Version string        `json:"version" yaml:"version"`
	Checks  []HealthCheck `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// HealthCheck is the outcome of probing a single dependency.
type HealthCheck struct {
	Name    string `json:"name" yaml:"name"`
	Healthy bool   `json:"healthy" yaml:"healthy"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}
