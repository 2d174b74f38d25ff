// Package config manages configuration for the taskapp CLI and services.
// It uses Viper for unified configuration management from files and environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	awsconfig "github.com/taskapp/taskapp/internal/config/aws"
	"github.com/taskapp/taskapp/internal/constants"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the unified configuration structure for both CLI and services.
// It supports loading from YAML files and environment variables.
type Config struct {
	// CLI Configuration
	APIEndpoint string `mapstructure:"api_endpoint" yaml:"api_endpoint" validate:"omitempty,url"`
	IDToken     string `mapstructure:"id_token" yaml:"id_token"`

	// Backend Service Configuration
	BackendProvider    constants.BackendProvider `mapstructure:"backend_provider" yaml:"backend_provider"`
	CORSAllowedOrigins []string                  `mapstructure:"cors_allowed_origins"`
	InitTimeout        time.Duration             `mapstructure:"init_timeout"`
	LogLevel           string                    `mapstructure:"log_level"`
	Port               int                       `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	RequestTimeout     time.Duration             `mapstructure:"request_timeout"`

	// Provider-specific configuration
	AWS *awsconfig.Config `mapstructure:"aws"`
}

var validate = validator.New()

// LoadAPI loads configuration for the HTTP API service.
// Loads from environment variables and validates required fields.
func LoadAPI() (*Config, error) {
	return loadService("api", validateAPI)
}

// LoadCognitoTrigger loads configuration for the Cognito post-confirmation trigger.
func LoadCognitoTrigger() (*Config, error) {
	return loadService("cognito trigger", validateCognitoTrigger)
}

// LoadNotifier loads configuration for the notification consumer.
func LoadNotifier() (*Config, error) {
	return loadService("notifier", validateNotifier)
}

// MustLoadAPI loads API configuration and exits on error.
// Suitable for application startup where configuration errors should be fatal.
func MustLoadAPI() *Config {
	return mustLoad(LoadAPI, "api")
}

// MustLoadCognitoTrigger loads Cognito trigger configuration and exits on error.
func MustLoadCognitoTrigger() *Config {
	return mustLoad(LoadCognitoTrigger, "cognito trigger")
}

// MustLoadNotifier loads notifier configuration and exits on error.
func MustLoadNotifier() *Config {
	return mustLoad(LoadNotifier, "notifier")
}

func mustLoad(load func() (*Config, error), name string) *Config {
	cfg, err := load()
	if err != nil {
		slog.Error(fmt.Sprintf("failed to load %s configuration", name), "error", err)
		os.Exit(1)
	}
	return cfg
}

func loadService(name string, validateFn func(*Config) error) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling %s config: %w", name, err)
	}

	cfg.BackendProvider = normalizeBackendProvider(cfg.BackendProvider)
	cfg.CORSAllowedOrigins = normalizeOrigins(cfg.CORSAllowedOrigins)

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s config validation failed: %w", name, err)
	}

	if err := validateFn(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadCLI loads configuration specifically for CLI usage.
// Returns an error if the config file doesn't exist.
func LoadCLI() (*Config, error) {
	v := viper.New()

	if err := loadConfigFile(v); err != nil {
		return nil, err
	}

	_ = v.BindEnv("api_endpoint", "TASKAPP_API_ENDPOINT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Save saves the CLI configuration to the user's home directory.
// Overwrites the existing config file if it exists.
func Save(config *Config) error {
	configFilePath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(configFilePath), constants.ConfigDirPermissions); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	v := viper.New()
	v.Set("api_endpoint", config.APIEndpoint)
	v.Set("id_token", config.IDToken)

	if err = v.WriteConfigAs(configFilePath); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	if err = os.Chmod(configFilePath, constants.ConfigFilePermissions); err != nil {
		return fmt.Errorf("error setting config file permissions: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := homeDirectory()
	if err != nil {
		return "", err
	}

	return constants.ConfigFilePath(homeDir), nil
}

// GetLogLevel returns the slog.Level from the string configuration.
// Defaults to INFO if the level string is invalid.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoadProviderSDK loads the SDK configuration of the configured backend provider.
func (c *Config) LoadProviderSDK(ctx context.Context) error {
	switch c.BackendProvider {
	case constants.AWS:
		if c.AWS == nil {
			return errors.New("AWS configuration is missing")
		}
		return c.AWS.LoadSDKConfig(ctx)
	default:
		return fmt.Errorf("unsupported backend provider: %s", c.BackendProvider)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", constants.DefaultDevServerPort)
	v.SetDefault("request_timeout", 0)
	v.SetDefault("init_timeout", "10s")
	v.SetDefault("backend_provider", string(constants.AWS))
	v.SetDefault("log_level", "INFO")
	v.SetDefault("cors_allowed_origins", []string{})
}

func homeDirectory() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}

	currentUser, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("error getting current user: %w", err)
	}
	return currentUser.HomeDir, nil
}

func loadConfigFile(v *viper.Viper) error {
	configFile, err := GetConfigPath()
	if err != nil {
		return err
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	if readErr := v.ReadInConfig(); readErr != nil {
		return readErr
	}

	return nil
}

func bindEnvVars(v *viper.Viper) {
	envVars := []string{
		"BACKEND_PROVIDER",
		"CORS_ALLOWED_ORIGINS",
		"DEV_SERVER_PORT",
		"INIT_TIMEOUT",
		"LOG_LEVEL",
		"REQUEST_TIMEOUT",
	}

	for _, envVar := range envVars {
		if envVar == "DEV_SERVER_PORT" {
			_ = v.BindEnv("port", constants.EnvPrefix+"_DEV_SERVER_PORT")
			continue
		}
		_ = v.BindEnv(strings.ToLower(envVar), constants.EnvPrefix+"_"+envVar)
	}

	awsconfig.BindEnvVars(v)
}

func validateAPI(cfg *Config) error {
	switch cfg.BackendProvider {
	case constants.AWS:
		return awsconfig.ValidateAPI(cfg.AWS)
	default:
		return fmt.Errorf("unsupported backend provider: %s", cfg.BackendProvider)
	}
}

func validateCognitoTrigger(cfg *Config) error {
	switch cfg.BackendProvider {
	case constants.AWS:
		return awsconfig.ValidateCognitoTrigger(cfg.AWS)
	default:
		return fmt.Errorf("unsupported backend provider: %s", cfg.BackendProvider)
	}
}

func validateNotifier(cfg *Config) error {
	switch cfg.BackendProvider {
	case constants.AWS:
		return awsconfig.ValidateNotifier(cfg.AWS)
	default:
		return fmt.Errorf("unsupported backend provider: %s", cfg.BackendProvider)
	}
}

// normalizeBackendProvider trims whitespace and uppercases the backend provider identifier.
func normalizeBackendProvider(provider constants.BackendProvider) constants.BackendProvider {
	normalized := strings.TrimSpace(string(provider))
	if normalized == "" {
		return ""
	}
	return constants.BackendProvider(strings.ToUpper(normalized))
}

// normalizeOrigins accepts both a YAML list and a comma separated env value.
func normalizeOrigins(origins []string) []string {
	var out []string
	for _, entry := range origins {
		for origin := range strings.SplitSeq(entry, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}
