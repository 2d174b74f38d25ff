package constants

// Event sources used on the event bus.
const (
	TaskEventSource = "com.taskapp.tasks"
	UserEventSource = "user-service"
)

// Event detail types.
const (
	TaskCreationDetailType           = "TaskCreation"
	TaskCompletionDetailType         = "TaskCompletion"
	UserCreatedDetailType            = "UserCreated"
	UserPreferencesUpdatedDetailType = "UserPreferencesUpdated"
)

// EventMetricsNamespace is the CloudWatch namespace used for event publishing metrics.
const EventMetricsNamespace = "taskapp/Events"

// EventPublishFailuresMetric counts publish attempts that failed.
const EventPublishFailuresMetric = "EventPublishFailures"
