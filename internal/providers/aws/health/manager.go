// Package health provides the AWS implementation of the dependency health check.
// It probes the DynamoDB tables and the caller identity concurrently.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamoTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"golang.org/x/sync/errgroup"

	"github.com/taskapp/taskapp/internal/backend/health"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/logger"
	dynamoRepo "github.com/taskapp/taskapp/internal/providers/aws/database/dynamodb"
)

// STSClient defines the STS operation used to verify credentials.
type STSClient interface {
	GetCallerIdentity(
		ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
}

// Manager implements the health.Manager interface for AWS.
type Manager struct {
	dynamoClient dynamoRepo.Client
	stsClient    STSClient
	tables       []string
	timeout      time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// Initialize creates a new AWS health manager for the given tables.
// A nil stsClient skips the credentials probe.
func Initialize(dynamoClient dynamoRepo.Client, stsClient STSClient, tables []string, log *slog.Logger) *Manager {
	return &Manager{
		dynamoClient: dynamoClient,
		stsClient:    stsClient,
		tables:       tables,
		timeout:      constants.HealthCheckTimeout,
		logger:       log,
		now:          time.Now,
	}
}

// Check runs every probe concurrently. Probe failures are reported in the
// result; the returned error is always nil unless ctx is already done.
func (m *Manager) Check(ctx context.Context) (*health.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reqLogger := logger.DeriveRequestLogger(ctx, m.logger)

	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	probes := make([]func(context.Context) health.CheckResult, 0, len(m.tables)+1)
	for _, table := range m.tables {
		probes = append(probes, func(ctx context.Context) health.CheckResult {
			return m.checkTable(ctx, table)
		})
	}
	if m.stsClient != nil {
		probes = append(probes, m.checkCallerIdentity)
	}

	results := make([]health.CheckResult, len(probes))
	g, gctx := errgroup.WithContext(probeCtx)
	for i, probe := range probes {
		g.Go(func() error {
			results[i] = probe(gctx)
			return nil
		})
	}
	_ = g.Wait()

	report := &health.Report{Timestamp: m.now().UTC(), Checks: results}
	if !report.Healthy() {
		reqLogger.Warn("health check failed", "checks", results)
	}
	return report, nil
}

func (m *Manager) checkTable(ctx context.Context, table string) health.CheckResult {
	result := health.CheckResult{Name: "dynamodb:" + table}

	logArgs := []any{
		"operation", "DynamoDB.DescribeTable",
		"table", table,
	}
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	logger.DeriveRequestLogger(ctx, m.logger).Debug("calling external service", "context", logger.SliceToMap(logArgs))

	out, err := m.dynamoClient.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if out.Table == nil || out.Table.TableStatus != dynamoTypes.TableStatusActive {
		status := "unknown"
		if out.Table != nil {
			status = string(out.Table.TableStatus)
		}
		result.Error = fmt.Sprintf("table status is %s", status)
		return result
	}

	result.Healthy = true
	return result
}

func (m *Manager) checkCallerIdentity(ctx context.Context) health.CheckResult {
	result := health.CheckResult{Name: "sts:caller-identity"}

	logger.DeriveRequestLogger(ctx, m.logger).Debug("calling external service", "context", map[string]string{
		"operation": "STS.GetCallerIdentity",
	})

	out, err := m.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		result.Error = fmt.Sprintf("STS GetCallerIdentity failed: %v", err)
		return result
	}
	if aws.ToString(out.Account) == "" {
		result.Error = "STS returned empty account ID"
		return result
	}

	result.Healthy = true
	return result
}
