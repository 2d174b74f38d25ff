// Package aws contains AWS-specific configuration helpers for taskapp services.
package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/viper"
)

// Config contains AWS-specific configuration.
// These settings are only used when the backend provider is AWS.
type Config struct {
	// DynamoDB Tables
	TasksTable string `mapstructure:"tasks_table"`
	UsersTable string `mapstructure:"users_table"`

	// EventBridge. An empty bus name disables event publishing.
	EventBusName string `mapstructure:"event_bus_name"`

	// Cognito
	UserPoolID                    string `mapstructure:"user_pool_id"`
	UserPoolClientID              string `mapstructure:"user_pool_client_id"`
	UserPoolClientSecretParameter string `mapstructure:"user_pool_client_secret_parameter"`

	// SES
	SESFromAddress      string `mapstructure:"ses_from_address" validate:"omitempty,email"`
	SESConfigurationSet string `mapstructure:"ses_configuration_set"`

	// EndpointURL overrides every AWS service endpoint (e.g. a local DynamoDB).
	EndpointURL string `mapstructure:"endpoint_url" validate:"omitempty,url"`

	// AWS SDK Configuration (credentials, region, etc.)
	SDKConfig *aws.Config `mapstructure:"-"`
}

// BindEnvVars binds AWS-specific environment variables to the provided Viper instance.
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("aws.tasks_table", "TASKAPP_AWS_TASKS_TABLE")
	_ = v.BindEnv("aws.users_table", "TASKAPP_AWS_USERS_TABLE")
	_ = v.BindEnv("aws.event_bus_name", "TASKAPP_AWS_EVENT_BUS_NAME")
	_ = v.BindEnv("aws.user_pool_id", "TASKAPP_AWS_USER_POOL_ID")
	_ = v.BindEnv("aws.user_pool_client_id", "TASKAPP_AWS_USER_POOL_CLIENT_ID")
	_ = v.BindEnv("aws.user_pool_client_secret_parameter", "TASKAPP_AWS_USER_POOL_CLIENT_SECRET_PARAMETER")
	_ = v.BindEnv("aws.ses_from_address", "TASKAPP_AWS_SES_FROM_ADDRESS")
	_ = v.BindEnv("aws.ses_configuration_set", "TASKAPP_AWS_SES_CONFIGURATION_SET")
	_ = v.BindEnv("aws.endpoint_url", "TASKAPP_AWS_ENDPOINT_URL")
}

// ValidateAPI validates required AWS fields for the HTTP API service.
func ValidateAPI(cfg *Config) error {
	if cfg == nil {
		return errors.New("AWS configuration is required when backend_provider is AWS")
	}

	return requireFields(map[string]string{
		"AWS.TasksTable":       cfg.TasksTable,
		"AWS.UsersTable":       cfg.UsersTable,
		"AWS.UserPoolID":       cfg.UserPoolID,
		"AWS.UserPoolClientID": cfg.UserPoolClientID,
	})
}

// ValidateCognitoTrigger validates required AWS fields for the post-confirmation trigger.
func ValidateCognitoTrigger(cfg *Config) error {
	if cfg == nil {
		return errors.New("AWS configuration is required when backend_provider is AWS")
	}

	return requireFields(map[string]string{
		"AWS.UsersTable": cfg.UsersTable,
	})
}

// ValidateNotifier validates required AWS fields for the notification consumer.
func ValidateNotifier(cfg *Config) error {
	if cfg == nil {
		return errors.New("AWS configuration is required when backend_provider is AWS")
	}

	return requireFields(map[string]string{
		"AWS.UsersTable":     cfg.UsersTable,
		"AWS.SESFromAddress": cfg.SESFromAddress,
	})
}

func requireFields(required map[string]string) error {
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
	}
	return nil
}

// LoadSDKConfig loads the AWS SDK configuration from the environment.
func (c *Config) LoadSDKConfig(ctx context.Context) error {
	var opts []func(*awsConfig.LoadOptions) error
	if c.EndpointURL != "" {
		opts = append(opts, awsConfig.WithBaseEndpoint(c.EndpointURL))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to load AWS SDK configuration: %w", err)
	}
	c.SDKConfig = &awsCfg
	return nil
}
