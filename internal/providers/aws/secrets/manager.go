// Package secrets reads deployment secrets from AWS Systems Manager Parameter Store.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/taskapp/taskapp/internal/logger"
)

// ErrSecretNotFound is returned when the parameter does not exist.
var ErrSecretNotFound = errors.New("secret not found")

// ParameterStoreManager retrieves SecureString parameters, decrypted with their KMS key.
type ParameterStoreManager struct {
	client Client
	logger *slog.Logger
}

// NewParameterStoreManager creates a new Parameter Store-based secrets reader.
func NewParameterStoreManager(client Client, log *slog.Logger) *ParameterStoreManager {
	return &ParameterStoreManager{client: client, logger: log}
}

// RetrieveSecret returns the decrypted value of the named parameter.
func (m *ParameterStoreManager) RetrieveSecret(ctx context.Context, name string) (string, error) {
	reqLogger := logger.DeriveRequestLogger(ctx, m.logger)

	logArgs := []any{
		"operation", "SSM.GetParameter",
		"name", name,
	}
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	reqLogger.Debug("calling external service", "context", logger.SliceToMap(logArgs))

	result, err := m.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		if isParameterNotFound(err) {
			reqLogger.Debug("secret not found", "name", name)
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, name)
		}
		reqLogger.Error("failed to retrieve secret", "error", err, "name", name)
		return "", fmt.Errorf("failed to retrieve secret: %w", err)
	}

	if result.Parameter == nil || result.Parameter.Value == nil {
		reqLogger.Warn("unexpected nil response from parameter store", "name", name)
		return "", fmt.Errorf("unexpected response from parameter store")
	}

	return *result.Parameter.Value, nil
}

func isParameterNotFound(err error) bool {
	var notFound *types.ParameterNotFound
	return errors.As(err, &notFound)
}
