package orchestrator

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"

	"github.com/chorusworks/chorus/internal/workflows"
	"github.com/chorusworks/chorus/pkg/models"
)

func newTestDriver(c client.Client) *Driver {
	d := NewDriver(c)
	d.now = func() time.Time { return time.Unix(1700000000, 0) }
	return d
}

func TestDriver_Run(t *testing.T) {
	want := models.OrchestrationResult{
		Results:   map[models.Provider]models.AIResponse{models.ProviderGemini: {Content: "hi"}},
		Consensus: "composed",
		Analysis:  "Processed with 1 AI providers",
	}

	mockRun := &mocks.WorkflowRun{}
	mockRun.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(1).(*models.OrchestrationResult) = want
	}).Return(nil)

	mockClient := &mocks.Client{}
	mockClient.On("ExecuteWorkflow",
		mock.Anything,
		mock.MatchedBy(func(opts client.StartWorkflowOptions) bool {
			return opts.TaskQueue == workflows.TaskQueue &&
				strings.HasPrefix(opts.ID, workflows.ConsensusWorkflowName+"-")
		}),
		workflows.ConsensusWorkflowName,
		mock.Anything,
	).Return(mockRun, nil)

	d := newTestDriver(mockClient)
	got, err := d.Run(context.Background(), models.AlgorithmConsensus, models.OrchestrationInput{
		InitialPrompt: "Summarize microservice tradeoffs",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got.Consensus != want.Consensus || got.Analysis != want.Analysis {
		t.Errorf("Run = %+v, want %+v", got, want)
	}
	mockClient.AssertExpectations(t)
	mockRun.AssertExpectations(t)
}

func TestDriver_StartValidation(t *testing.T) {
	tests := []struct {
		// name describes the invalid input.
		name      string
		algorithm models.Algorithm
		input     models.OrchestrationInput
	}{
		{
			name:      "unknown algorithm",
			algorithm: models.Algorithm("vote"),
			input:     models.OrchestrationInput{InitialPrompt: "hi"},
		},
		{
			name:      "empty prompt",
			algorithm: models.AlgorithmConsensus,
			input:     models.OrchestrationInput{},
		},
		{
			name:      "unknown provider",
			algorithm: models.AlgorithmConsensus,
			input: models.OrchestrationInput{
				InitialPrompt: "hi",
				Providers:     []models.Provider{"mistral"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := &mocks.Client{}
			d := newTestDriver(mockClient)
			if _, err := d.Start(context.Background(), tc.algorithm, tc.input); err == nil {
				t.Error("Start should reject the input")
			}
			mockClient.AssertNotCalled(t, "ExecuteWorkflow")
		})
	}
}

func TestDriver_WorkflowID(t *testing.T) {
	d := newTestDriver(&mocks.Client{})
	got := d.workflowID(workflows.ChainWorkflowName)
	if got != "ai-chain-workflow-1700000000" {
		t.Errorf("workflowID = %q", got)
	}
}
