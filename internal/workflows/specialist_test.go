package workflows

import (
	"strings"
	"testing"

	"github.com/chorusworks/chorus/pkg/models"
)

func TestSpecialist_NoAttachment(t *testing.T) {
	stubs := newStubProviders()
	env := newTestEnv(t, stubs)

	env.ExecuteWorkflow(Specialist, models.OrchestrationInput{
		InitialPrompt: "Summarize microservice tradeoffs",
	})

	if err := env.GetWorkflowError(); err != nil {
		t.Fatalf("workflow failed: %v", err)
	}
	var result models.OrchestrationResult
	if err := env.GetWorkflowResult(&result); err != nil {
		t.Fatalf("GetWorkflowResult failed: %v", err)
	}

	gemini := stubs.callsTo(models.ProviderGemini)[0]
	if !strings.HasPrefix(gemini.Prompt, "Provide a creative and comprehensive response to:") {
		t.Errorf("vision prompt = %q, want creative framing without an image attachment", gemini.Prompt)
	}

	openai := stubs.callsTo(models.ProviderOpenAI)[0]
	if !strings.Contains(openai.Prompt, "Technical analysis requested:") {
		t.Errorf("technical prompt = %q", openai.Prompt)
	}
	anthropicReqs := stubs.callsTo(models.ProviderAnthropic)
	if len(anthropicReqs) != 2 {
		t.Fatalf("Anthropic received %d calls, want specialist plus synthesis", len(anthropicReqs))
	}
	if !strings.Contains(anthropicReqs[0].Prompt, "Analytical task:") {
		t.Errorf("analytical prompt = %q", anthropicReqs[0].Prompt)
	}

	synthesis := anthropicReqs[1].Prompt
	for _, content := range []string{"gemini analysis", "openai refinement", "anthropic validation"} {
		if !strings.Contains(synthesis, content) {
			t.Errorf("synthesis prompt missing %q", content)
		}
	}

	if len(result.Results) != 3 {
		t.Errorf("Results has %d entries, want 3", len(result.Results))
	}
	if result.Consensus != "synthesized summary" {
		t.Errorf("Consensus = %q, want synthesis content", result.Consensus)
	}
	if result.Analysis != "Specialized processing: Gemini (vision/creative) + OpenAI (technical) + Anthropic (analytical)" {
		t.Errorf("Analysis = %q", result.Analysis)
	}
}

func TestSpecialist_ImageAttachment(t *testing.T) {
	stubs := newStubProviders()
	env := newTestEnv(t, stubs)

	env.ExecuteWorkflow(Specialist, models.OrchestrationInput{
		InitialPrompt: "describe the architecture diagram",
		FilePath:      "diagram.PNG",
	})

	if err := env.GetWorkflowError(); err != nil {
		t.Fatalf("workflow failed: %v", err)
	}

	gemini := stubs.callsTo(models.ProviderGemini)[0]
	if !strings.HasPrefix(gemini.Prompt, "Analyze this image in detail and ") {
		t.Errorf("vision prompt = %q, want image-analysis framing", gemini.Prompt)
	}

	// All three specialists get the attachment; only the prompts differ.
	for _, p := range models.AllProviders() {
		if got := stubs.callsTo(p)[0].FilePath; got != "diagram.PNG" {
			t.Errorf("%s FilePath = %q, want the attachment", p, got)
		}
	}
}
