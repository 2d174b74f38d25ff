package aws

import (
	"context"
	"fmt"
	"log/slog"

	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/taskapp/taskapp/internal/backend/contract"
	"github.com/taskapp/taskapp/internal/backend/health"
	"github.com/taskapp/taskapp/internal/config"
	"github.com/taskapp/taskapp/internal/database"
	"github.com/taskapp/taskapp/internal/events"
	"github.com/taskapp/taskapp/internal/providers/aws/cognito"
	awsDatabase "github.com/taskapp/taskapp/internal/providers/aws/database"
	dynamoRepo "github.com/taskapp/taskapp/internal/providers/aws/database/dynamodb"
	awsEventBridge "github.com/taskapp/taskapp/internal/providers/aws/eventbridge"
	awsHealth "github.com/taskapp/taskapp/internal/providers/aws/health"
	"github.com/taskapp/taskapp/internal/providers/aws/secrets"
	"github.com/taskapp/taskapp/internal/providers/aws/ses"
)

// Dependencies bundles the AWS-backed implementations required by the app services.
// Optional collaborators stay nil when their settings are absent.
type Dependencies struct {
	TaskRepo    database.TaskRepository
	UserRepo    database.UserRepository
	Publisher   events.Publisher
	Identity    contract.IdentityProvider
	EmailSender contract.EmailSender
	Health      health.Manager
}

// Clients holds the SDK clients used to build Dependencies.
type Clients struct {
	DynamoDB    dynamoRepo.Client
	EventBridge awsEventBridge.Client
	Cognito     cognito.Client
	SES         ses.Client
	SSM         secrets.Client
	STS         awsHealth.STSClient
}

// NewClients creates SDK clients from the loaded AWS configuration.
func NewClients(cfg *config.Config) (*Clients, error) {
	if cfg.AWS == nil || cfg.AWS.SDKConfig == nil {
		return nil, fmt.Errorf("AWS SDK configuration is not loaded")
	}
	sdkCfg := *cfg.AWS.SDKConfig

	return &Clients{
		DynamoDB:    dynamoRepo.NewClientAdapter(dynamodb.NewFromConfig(sdkCfg)),
		EventBridge: eventbridge.NewFromConfig(sdkCfg),
		Cognito:     cip.NewFromConfig(sdkCfg),
		SES:         sesv2.NewFromConfig(sdkCfg),
		SSM:         secrets.NewClientAdapter(ssm.NewFromConfig(sdkCfg)),
		STS:         sts.NewFromConfig(sdkCfg),
	}, nil
}

// Initialize prepares AWS service dependencies for the app package.
func Initialize(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Dependencies, error) {
	if cfg.AWS == nil {
		return nil, fmt.Errorf("AWS configuration is missing")
	}

	if cfg.AWS.SDKConfig == nil {
		if err := cfg.AWS.LoadSDKConfig(ctx); err != nil {
			return nil, err
		}
	}

	clients, err := NewClients(cfg)
	if err != nil {
		return nil, err
	}

	return Build(ctx, clients, cfg, log)
}

// Build wires Dependencies from prebuilt clients.
func Build(ctx context.Context, clients *Clients, cfg *config.Config, log *slog.Logger) (*Dependencies, error) {
	awsCfg := cfg.AWS
	repos := awsDatabase.CreateRepositories(clients.DynamoDB, awsCfg, log)

	deps := &Dependencies{
		TaskRepo: repos.TaskRepo,
		UserRepo: repos.UserRepo,
		Health: awsHealth.Initialize(
			clients.DynamoDB, clients.STS, tableNames(awsCfg.TasksTable, awsCfg.UsersTable), log),
	}

	if awsCfg.EventBusName != "" {
		deps.Publisher = awsEventBridge.NewPublisher(clients.EventBridge, awsCfg.EventBusName, log)
	} else {
		log.Warn("no event bus configured, domain events are disabled")
	}

	if awsCfg.UserPoolClientID != "" {
		clientSecret, secretErr := resolveClientSecret(ctx, clients.SSM, awsCfg.UserPoolClientSecretParameter, log)
		if secretErr != nil {
			return nil, secretErr
		}
		deps.Identity = cognito.NewIdentityProvider(clients.Cognito, awsCfg.UserPoolClientID, clientSecret, log)
	}

	if awsCfg.SESFromAddress != "" {
		deps.EmailSender = ses.NewSender(clients.SES, awsCfg.SESFromAddress, awsCfg.SESConfigurationSet, log)
	}

	return deps, nil
}

func resolveClientSecret(ctx context.Context, client secrets.Client, parameter string, log *slog.Logger) (string, error) {
	if parameter == "" {
		return "", nil
	}

	secret, err := secrets.NewParameterStoreManager(client, log).RetrieveSecret(ctx, parameter)
	if err != nil {
		return "", fmt.Errorf("failed to resolve user pool client secret: %w", err)
	}
	return secret, nil
}

func tableNames(names ...string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
