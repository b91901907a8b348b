package workflows

import (
	"strings"
	"testing"

	"go.temporal.io/sdk/temporal"

	"github.com/chorusworks/chorus/pkg/models"
)

func TestChain_SequentialRefinement(t *testing.T) {
	stubs := newStubProviders()
	env := newTestEnv(t, stubs)

	env.ExecuteWorkflow(Chain, models.OrchestrationInput{
		InitialPrompt: "Summarize microservice tradeoffs",
		FilePath:      "notes.txt",
	})

	if err := env.GetWorkflowError(); err != nil {
		t.Fatalf("workflow failed: %v", err)
	}
	var result models.OrchestrationResult
	if err := env.GetWorkflowResult(&result); err != nil {
		t.Fatalf("GetWorkflowResult failed: %v", err)
	}

	order := stubs.callOrder()
	want := []models.Provider{models.ProviderGemini, models.ProviderOpenAI, models.ProviderAnthropic}
	if len(order) != len(want) {
		t.Fatalf("chain issued %d calls, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("call order = %v, want %v", order, want)
		}
	}

	gemini := stubs.callsTo(models.ProviderGemini)[0]
	openai := stubs.callsTo(models.ProviderOpenAI)[0]
	anthropic := stubs.callsTo(models.ProviderAnthropic)[0]

	if !strings.Contains(gemini.Prompt, "Summarize microservice tradeoffs") {
		t.Error("initial prompt missing the original request")
	}
	if gemini.FilePath != "notes.txt" {
		t.Errorf("initial step FilePath = %q, want the attachment", gemini.FilePath)
	}

	// Refinement embeds the initial analysis; validation embeds both prior
	// contents. Neither carries the attachment.
	if !strings.Contains(openai.Prompt, "gemini analysis") {
		t.Error("refine prompt missing the initial analysis")
	}
	if openai.FilePath != "" {
		t.Errorf("refine step FilePath = %q, want empty", openai.FilePath)
	}
	if !strings.Contains(anthropic.Prompt, "gemini analysis") ||
		!strings.Contains(anthropic.Prompt, "openai refinement") {
		t.Error("validate prompt missing prior contents")
	}
	if anthropic.FilePath != "" {
		t.Errorf("validate step FilePath = %q, want empty", anthropic.FilePath)
	}

	if len(result.Results) != 3 {
		t.Errorf("Results has %d entries, want 3", len(result.Results))
	}
	if result.Consensus != "anthropic validation" {
		t.Errorf("Consensus = %q, want the final step's content", result.Consensus)
	}
	if result.Analysis != "Sequential processing: Gemini → OpenAI → Anthropic" {
		t.Errorf("Analysis = %q", result.Analysis)
	}
}

func TestChain_FailsAtFailingStep(t *testing.T) {
	stubs := newStubProviders()
	stubs.errs[models.ProviderOpenAI] = temporal.NewNonRetryableApplicationError(
		"openai request failed: boom", "ProviderError", nil)
	env := newTestEnv(t, stubs)

	env.ExecuteWorkflow(Chain, models.OrchestrationInput{InitialPrompt: "hello"})

	if err := env.GetWorkflowError(); err == nil {
		t.Fatal("workflow should fail when a chain step fails")
	}
	// The failing step stops the chain; the validation step never runs.
	if n := len(stubs.callsTo(models.ProviderAnthropic)); n != 0 {
		t.Errorf("Anthropic received %d calls after a failed step, want 0", n)
	}
}
