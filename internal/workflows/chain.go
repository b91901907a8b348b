package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"

	"github.com/chorusworks/chorus/pkg/models"
)

// Chain runs the fixed provider triple strictly in sequence: Gemini produces
// the initial analysis, OpenAI refines it, Anthropic validates and polishes.
// Each step's prompt embeds the prior step's content, so there is no
// parallelism to exploit. Only the first step carries the attachment; later
// steps work from text alone. The chain fails at whichever step fails.
func Chain(ctx workflow.Context, input models.OrchestrationInput) (models.OrchestrationResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting chain composition")

	results := make(map[models.Provider]models.AIResponse, 3)

	f, err := executeProvider(ctx, models.ProviderGemini, models.AIRequest{
		Prompt:   chainInitialPrompt(input.InitialPrompt),
		FilePath: input.FilePath,
	})
	if err != nil {
		return models.OrchestrationResult{}, err
	}
	var initial models.AIResponse
	if err := f.Get(ctx, &initial); err != nil {
		return models.OrchestrationResult{}, fmt.Errorf("chain initial analysis failed: %w", err)
	}
	results[models.ProviderGemini] = initial

	f, err = executeProvider(ctx, models.ProviderOpenAI, models.AIRequest{
		Prompt: chainRefinePrompt(input.InitialPrompt, initial.Content),
	})
	if err != nil {
		return models.OrchestrationResult{}, err
	}
	var refined models.AIResponse
	if err := f.Get(ctx, &refined); err != nil {
		return models.OrchestrationResult{}, fmt.Errorf("chain refinement failed: %w", err)
	}
	results[models.ProviderOpenAI] = refined

	f, err = executeProvider(ctx, models.ProviderAnthropic, models.AIRequest{
		Prompt: chainValidatePrompt(input.InitialPrompt, initial.Content, refined.Content),
	})
	if err != nil {
		return models.OrchestrationResult{}, err
	}
	var validated models.AIResponse
	if err := f.Get(ctx, &validated); err != nil {
		return models.OrchestrationResult{}, fmt.Errorf("chain validation failed: %w", err)
	}
	results[models.ProviderAnthropic] = validated

	logger.Info("Chain composition complete")
	return models.OrchestrationResult{
		Results:   results,
		Consensus: validated.Content,
		Analysis:  "Sequential processing: Gemini → OpenAI → Anthropic",
	}, nil
}
