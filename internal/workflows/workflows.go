// Package workflows implements the three composition algorithms as Temporal
// workflows: consensus (parallel fan-out plus a synthesized summary), chain
// (strictly sequential refinement), and specialist (per-provider prompts
// tailored to each backend's strength). Workflows never talk to a provider
// directly; every provider interaction is an activity dispatched to that
// provider's task queue, so the engine records each call and replays
// completed steps from history instead of re-invoking the provider.
package workflows

import (
	"fmt"

	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/chorusworks/chorus/pkg/models"
)

// TaskQueue is the queue the composition workflows themselves run on,
// separate from the per-provider activity queues.
const TaskQueue = "ai-workflow-queue"

// Registered workflow names.
const (
	ConsensusWorkflowName  = "ai-consensus-workflow"
	ChainWorkflowName      = "ai-chain-workflow"
	SpecialistWorkflowName = "ai-specialist-workflow"
)

// NameFor returns the registered workflow name for a composition algorithm.
func NameFor(a models.Algorithm) (string, error) {
	switch a {
	case models.AlgorithmConsensus:
		return ConsensusWorkflowName, nil
	case models.AlgorithmChain:
		return ChainWorkflowName, nil
	case models.AlgorithmSpecialist:
		return SpecialistWorkflowName, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q", a)
	}
}

// RegisterAll registers the three composition workflows on a worker.
func RegisterAll(w worker.WorkflowRegistry) {
	w.RegisterWorkflowWithOptions(Consensus, workflow.RegisterOptions{Name: ConsensusWorkflowName})
	w.RegisterWorkflowWithOptions(Chain, workflow.RegisterOptions{Name: ChainWorkflowName})
	w.RegisterWorkflowWithOptions(Specialist, workflow.RegisterOptions{Name: SpecialistWorkflowName})
}
