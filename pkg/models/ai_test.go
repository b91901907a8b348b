package models

import (
	"testing"
)

func TestProvider_Valid(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		want     bool
	}{
		{"gemini is valid", ProviderGemini, true},
		{"openai is valid", ProviderOpenAI, true},
		{"anthropic is valid", ProviderAnthropic, true},
		{"empty string is invalid", Provider(""), false},
		{"unknown provider is invalid", Provider("mistral"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.provider.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllProviders_Order(t *testing.T) {
	got := AllProviders()
	want := []Provider{ProviderGemini, ProviderOpenAI, ProviderAnthropic}

	if len(got) != len(want) {
		t.Fatalf("AllProviders() returned %d providers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllProviders()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrchestrationInput_EffectiveProviders(t *testing.T) {
	empty := OrchestrationInput{InitialPrompt: "hello"}
	if got := empty.EffectiveProviders(); len(got) != 3 {
		t.Errorf("empty providers should default to all three, got %v", got)
	}

	subset := OrchestrationInput{
		InitialPrompt: "hello",
		Providers:     []Provider{ProviderOpenAI},
	}
	got := subset.EffectiveProviders()
	if len(got) != 1 || got[0] != ProviderOpenAI {
		t.Errorf("EffectiveProviders() = %v, want [openai]", got)
	}

	dupes := OrchestrationInput{
		InitialPrompt: "hello",
		Providers: []Provider{
			ProviderOpenAI, ProviderGemini, ProviderOpenAI, ProviderGemini,
		},
	}
	got = dupes.EffectiveProviders()
	if len(got) != 2 || got[0] != ProviderOpenAI || got[1] != ProviderGemini {
		t.Errorf("EffectiveProviders() = %v, want [openai gemini]", got)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Algorithm
		ok    bool
	}{
		{"consensus", "consensus", AlgorithmConsensus, true},
		{"chain", "chain", AlgorithmChain, true},
		{"specialist", "specialist", AlgorithmSpecialist, true},
		{"uppercase", "CONSENSUS", AlgorithmConsensus, true},
		{"surrounding whitespace", "  chain ", AlgorithmChain, true},
		{"unknown", "vote", Algorithm("vote"), false},
		{"empty", "", Algorithm(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAlgorithm(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseAlgorithm(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasImageExtension(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"animation.gif", true},
		{"PHOTO.PNG", true},
		{"/tmp/uploads/scan.JPeG", true},
		{"report.pdf", false},
		{"notes.txt", false},
		{"archive.png.zip", false},
		{"", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := HasImageExtension(tt.path); got != tt.want {
				t.Errorf("HasImageExtension(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestAIResponse_SafetyBlocked(t *testing.T) {
	blocked := AIResponse{
		Content:  "Response was blocked due to safety filters",
		Metadata: map[string]string{MetaSafetyBlocked: "true"},
	}
	if !blocked.SafetyBlocked() {
		t.Error("response with safety_blocked metadata should report blocked")
	}

	normal := AIResponse{Content: "fine", Metadata: map[string]string{MetaFinishReason: "stop"}}
	if normal.SafetyBlocked() {
		t.Error("normal response should not report blocked")
	}

	nilMeta := AIResponse{Content: "fine"}
	if nilMeta.SafetyBlocked() {
		t.Error("response with nil metadata should not report blocked")
	}
}
