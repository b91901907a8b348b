package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"

	"github.com/chorusworks/chorus/pkg/models"
)

// Consensus sends the same prompt to every requested provider concurrently,
// then asks Anthropic to synthesize a balanced consensus from the collected
// responses. Any failed fan-out call fails the whole composition; there is
// no partial consensus.
func Consensus(ctx workflow.Context, input models.OrchestrationInput) (models.OrchestrationResult, error) {
	logger := workflow.GetLogger(ctx)
	providers := input.EffectiveProviders()
	logger.Info("Starting consensus composition", "providers", providers)

	// Fan out first, collect second, so the calls run in parallel.
	futures := make([]workflow.Future, 0, len(providers))
	for _, p := range providers {
		req := models.AIRequest{Prompt: input.InitialPrompt, FilePath: input.FilePath}
		f, err := executeProvider(ctx, p, req)
		if err != nil {
			return models.OrchestrationResult{}, err
		}
		futures = append(futures, f)
	}

	results := make(map[models.Provider]models.AIResponse, len(providers))
	for i, p := range providers {
		var resp models.AIResponse
		if err := futures[i].Get(ctx, &resp); err != nil {
			return models.OrchestrationResult{}, fmt.Errorf("consensus call to %s failed: %w", p, err)
		}
		results[p] = resp
	}

	f, err := executeProvider(ctx, models.ProviderAnthropic, models.AIRequest{
		Prompt: consensusPrompt(providers, results),
	})
	if err != nil {
		return models.OrchestrationResult{}, err
	}
	var consensus models.AIResponse
	if err := f.Get(ctx, &consensus); err != nil {
		return models.OrchestrationResult{}, fmt.Errorf("consensus synthesis failed: %w", err)
	}

	logger.Info("Consensus composition complete", "providers", len(providers))
	return models.OrchestrationResult{
		Results:   results,
		Consensus: consensus.Content,
		Analysis:  fmt.Sprintf("Processed with %d AI providers", len(providers)),
	}, nil
}
