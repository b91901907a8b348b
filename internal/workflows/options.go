package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/chorusworks/chorus/internal/provider"
	"github.com/chorusworks/chorus/pkg/models"
)

// activityTimeout bounds every provider call. The same budget applies at all
// call sites; exceeding it is a retryable timeout, not a truncation.
const activityTimeout = 5 * time.Minute

// retryPolicy is the uniform policy for provider activities. Configuration,
// invalid-request, and attachment failures never succeed on retry, so the
// engine fails them immediately.
func retryPolicy() *temporal.RetryPolicy {
	return &temporal.RetryPolicy{
		InitialInterval:    10 * time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    30 * time.Second,
		MaximumAttempts:    3,
		NonRetryableErrorTypes: []string{
			provider.ErrTypeConfiguration,
			provider.ErrTypeInvalidRequest,
			provider.ErrTypeAttachment,
		},
	}
}

// executeProvider dispatches one ProcessRequest activity to the provider's
// own task queue and returns the future without blocking, so callers can fan
// out concurrently and synchronize later.
func executeProvider(ctx workflow.Context, p models.Provider, req models.AIRequest) (workflow.Future, error) {
	queue, err := provider.TaskQueueFor(p)
	if err != nil {
		return nil, err
	}
	name, err := provider.ActivityName(p)
	if err != nil {
		return nil, err
	}

	actx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		TaskQueue:           queue,
		StartToCloseTimeout: activityTimeout,
		RetryPolicy:         retryPolicy(),
	})
	return workflow.ExecuteActivity(actx, name, req), nil
}
