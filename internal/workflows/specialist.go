package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"

	"github.com/chorusworks/chorus/pkg/models"
)

// Specialist sends each provider of the fixed triple a prompt tailored to
// its strength (Gemini vision and creative framing, OpenAI the technical
// angle, Anthropic the analytical one), concurrently, then asks Anthropic
// to synthesize the three labeled analyses into one response.
func Specialist(ctx workflow.Context, input models.OrchestrationInput) (models.OrchestrationResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting specialist composition", "has_file", input.FilePath != "")

	prompts := map[models.Provider]string{
		models.ProviderGemini:    specialistVisionPrompt(input.InitialPrompt, input.FilePath),
		models.ProviderOpenAI:    specialistTechnicalPrompt(input.InitialPrompt),
		models.ProviderAnthropic: specialistAnalyticalPrompt(input.InitialPrompt),
	}

	providers := models.AllProviders()
	futures := make([]workflow.Future, 0, len(providers))
	for _, p := range providers {
		req := models.AIRequest{Prompt: prompts[p], FilePath: input.FilePath}
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
			return models.OrchestrationResult{}, fmt.Errorf("specialist call to %s failed: %w", p, err)
		}
		results[p] = resp
	}

	f, err := executeProvider(ctx, models.ProviderAnthropic, models.AIRequest{
		Prompt: synthesisPrompt(
			results[models.ProviderGemini].Content,
			results[models.ProviderOpenAI].Content,
			results[models.ProviderAnthropic].Content,
		),
	})
	if err != nil {
		return models.OrchestrationResult{}, err
	}
	var synthesis models.AIResponse
	if err := f.Get(ctx, &synthesis); err != nil {
		return models.OrchestrationResult{}, fmt.Errorf("specialist synthesis failed: %w", err)
	}

	logger.Info("Specialist composition complete")
	return models.OrchestrationResult{
		Results:   results,
		Consensus: synthesis.Content,
		Analysis:  "Specialized processing: Gemini (vision/creative) + OpenAI (technical) + Anthropic (analytical)",
	}, nil
}
