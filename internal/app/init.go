package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskapp/taskapp/internal/config"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/logger"
	awsApp "github.com/taskapp/taskapp/internal/providers/aws/app"
)

// ProviderInitializer constructs provider dependencies from configuration.
type ProviderInitializer func(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
) (*ProviderDependencies, error)

type initializeOptions struct {
	providerInitializer ProviderInitializer
}

// InitializeOption configures initialization behavior.
type InitializeOption func(*initializeOptions)

// WithProviderInitializer injects a custom provider initializer, enabling in-memory tests
// or alternate provider wiring without invoking cloud SDKs.
func WithProviderInitializer(initializer ProviderInitializer) InitializeOption {
	return func(opts *initializeOptions) {
		opts.providerInitializer = initializer
	}
}

// Initialize creates a new Service configured for the specified backend provider.
// It returns an error if the context is canceled, timed out, or if an unknown provider is specified.
func Initialize(
	ctx context.Context,
	cfg *config.Config,
	baseLogger *slog.Logger,
	opts ...InitializeOption,
) (*Service, error) {
	options := initializeOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	reqLogger := logger.DeriveRequestLogger(ctx, baseLogger)
	reqLogger.Debug(fmt.Sprintf("initializing %s services", constants.ProjectName),
		"provider", cfg.BackendProvider,
		"version", *constants.GetVersion(),
		"init_timeout", cfg.InitTimeout.String(),
	)

	if cfg.InitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.InitTimeout)
		defer cancel()
	}

	initializer, err := selectProviderInitializer(cfg.BackendProvider, options.providerInitializer)
	if err != nil {
		return nil, err
	}

	deps, initErr := initializer(ctx, cfg, baseLogger)
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize %s dependencies: %w", cfg.BackendProvider, initErr)
	}

	svc := NewService(deps, baseLogger, cfg.BackendProvider)
	reqLogger.Debug(constants.ProjectName + " services initialized successfully")
	return svc, nil
}

func selectProviderInitializer(
	provider constants.BackendProvider,
	override ProviderInitializer,
) (ProviderInitializer, error) {
	if override != nil {
		return override, nil
	}

	switch provider {
	case constants.AWS:
		return awsProviderInitializer, nil
	default:
		return nil, fmt.Errorf("unknown backend provider: %s (supported: %s)", provider, constants.ProvidersString())
	}
}

func awsProviderInitializer(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
) (*ProviderDependencies, error) {
	awsDeps, err := awsApp.Initialize(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &ProviderDependencies{
		TaskRepo:    awsDeps.TaskRepo,
		UserRepo:    awsDeps.UserRepo,
		Publisher:   awsDeps.Publisher,
		Identity:    awsDeps.Identity,
		EmailSender: awsDeps.EmailSender,
		Health:      awsDeps.Health,
	}, nil
}
