// Package orchestrator maps orchestration requests onto the composition
// workflows and submits them to Temporal. It owns no retry or timeout logic;
// the engine's execution policy and the workflow definitions carry that.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"

	"github.com/chorusworks/chorus/internal/workflows"
	"github.com/chorusworks/chorus/pkg/models"
)

// Driver submits composition workflows and awaits their results.
type Driver struct {
	temporal client.Client
	now      func() time.Time
}

// NewDriver creates a Driver on an existing Temporal client. The caller
// retains ownership of the client and closes it.
func NewDriver(c client.Client) *Driver {
	return &Driver{temporal: c, now: time.Now}
}

// Start validates the input and submits the selected composition workflow.
// The returned run can be awaited with Get, or abandoned; the execution
// continues durably either way.
func (d *Driver) Start(ctx context.Context, algorithm models.Algorithm, input models.OrchestrationInput) (client.WorkflowRun, error) {
	name, err := workflows.NameFor(algorithm)
	if err != nil {
		return nil, err
	}
	if input.InitialPrompt == "" {
		return nil, fmt.Errorf("initial prompt is empty")
	}
	for _, p := range input.Providers {
		if !p.Valid() {
			return nil, fmt.Errorf("unknown provider %q", p)
		}
	}

	opts := client.StartWorkflowOptions{
		ID:        d.workflowID(name),
		TaskQueue: workflows.TaskQueue,
	}
	run, err := d.temporal.ExecuteWorkflow(ctx, opts, name, input)
	if err != nil {
		return nil, fmt.Errorf("starting %s: %w", name, err)
	}
	return run, nil
}

// Run submits the workflow and blocks until it finishes, returning the
// composed result or the workflow's terminal failure unchanged.
func (d *Driver) Run(ctx context.Context, algorithm models.Algorithm, input models.OrchestrationInput) (models.OrchestrationResult, error) {
	run, err := d.Start(ctx, algorithm, input)
	if err != nil {
		return models.OrchestrationResult{}, err
	}
	var result models.OrchestrationResult
	if err := run.Get(ctx, &result); err != nil {
		return models.OrchestrationResult{}, err
	}
	return result, nil
}

// workflowID derives an identifier from the workflow name and submission
// time. Uniqueness is advisory; Temporal deduplicates on its own terms.
func (d *Driver) workflowID(name string) string {
	return fmt.Sprintf("%s-%d", name, d.now().Unix())
}
