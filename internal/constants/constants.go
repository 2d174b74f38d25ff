// Package constants defines global constants used throughout taskapp.
// It includes version information, paths, and configuration keys.
package constants

import "time"

var version = "0.0.0-development" // Updated by CI/CD pipeline at build time

// GetVersion returns the current version of taskapp.
func GetVersion() *string {
	return &version
}

// ProjectName is the name of the CLI tool and application
const ProjectName = "taskapp"

// ConfigDirName is the name of the configuration directory in the user's home directory
const ConfigDirName = ".taskapp"

// ConfigFileName is the name of the global configuration file
const ConfigFileName = "config.yaml"

// EnvPrefix is the prefix of every environment variable read by the services.
const EnvPrefix = "TASKAPP"

// ConfigDirPath returns the full path to the global configuration directory.
func ConfigDirPath(homeDir string) string {
	return homeDir + "/" + ConfigDirName
}

// ConfigFilePath returns the full path to the global configuration file
func ConfigFilePath(homeDir string) string {
	return ConfigDirPath(homeDir) + "/" + ConfigFileName
}

// Service represents a taskapp deployable component.
type Service string

const (
	// APIService serves the HTTP API behind API Gateway.
	APIService Service = "api"
	// CognitoTriggerService handles Cognito post-confirmation triggers.
	CognitoTriggerService Service = "cognito-trigger"
	// NotifierService consumes EventBridge events and sends emails.
	NotifierService Service = "notifier"
)

// ServerReadTimeout is the HTTP server read timeout
const ServerReadTimeout = 15 * time.Second

// ServerWriteTimeout is the HTTP server write timeout
const ServerWriteTimeout = 15 * time.Second

// ServerIdleTimeout is the HTTP server idle timeout
const ServerIdleTimeout = 60 * time.Second

// ServerShutdownTimeout is the timeout for graceful server shutdown
const ServerShutdownTimeout = 5 * time.Second

// DefaultDevServerPort is the port used by the local development server.
const DefaultDevServerPort = 56212

// ConfigDirPermissions is the file system permissions for config directory (0750)
const ConfigDirPermissions = 0750

// ConfigFilePermissions is the file system permissions for config file (0600)
const ConfigFilePermissions = 0600

// HealthCheckTimeout bounds the dependency probes run by the health endpoint.
const HealthCheckTimeout = 3 * time.Second

// TestContextTimeout is the default timeout for test contexts
const TestContextTimeout = 5 * time.Second
