package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/logger"
)

// FailureObserver is notified of every swallowed publish failure.
// Implementations must not fail the calling operation.
type FailureObserver interface {
	ObservePublishFailure(ctx context.Context, source, detailType string, err error)
}

// EMFObserver records publish failures as CloudWatch Embedded Metric Format
// log lines. With the JSON handler used in production each line becomes an
// EventPublishFailures data point dimensioned by source and detail type.
type EMFObserver struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewEMFObserver creates an EMFObserver writing through log.
func NewEMFObserver(log *slog.Logger) *EMFObserver {
	return &EMFObserver{logger: log, now: time.Now}
}

// ObservePublishFailure emits one EMF record with a count of 1.
func (o *EMFObserver) ObservePublishFailure(ctx context.Context, source, detailType string, _ error) {
	reqLogger := logger.DeriveRequestLogger(ctx, o.logger)
	reqLogger.Info("event publish failure metric",
		"_aws", emfMetadata(o.now()),
		"Source", source,
		"DetailType", detailType,
		constants.EventPublishFailuresMetric, 1,
	)
}

func emfMetadata(ts time.Time) map[string]any {
	return map[string]any{
		"Timestamp": ts.UnixMilli(),
		"CloudWatchMetrics": []map[string]any{
			{
				"Namespace":  constants.EventMetricsNamespace,
				"Dimensions": [][]string{{"Source", "DetailType"}},
				"Metrics": []map[string]string{
					{"Name": constants.EventPublishFailuresMetric, "Unit": "Count"},
				},
			},
		},
	}
}
