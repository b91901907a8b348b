// Package models defines the data shapes exchanged between the composition
// workflows and the provider activities. All types in this package cross the
// Temporal payload boundary and must stay JSON-serializable.
package models

import (
	"path/filepath"
	"strings"
)

// Provider identifies one of the three AI backends.
type Provider string

const (
	// ProviderGemini is the Google Gemini backend.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI backend.
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic Claude backend.
	ProviderAnthropic Provider = "anthropic"
)

// Valid returns true if the provider is a known value.
func (p Provider) Valid() bool {
	switch p {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
		return true
	default:
		return false
	}
}

// AllProviders returns the fixed provider triple in canonical order.
func AllProviders() []Provider {
	return []Provider{ProviderGemini, ProviderOpenAI, ProviderAnthropic}
}

// GenerationParams holds optional per-call overrides of a provider's default
// generation settings. A nil field leaves the provider default in place;
// Model, when non-empty, supersedes the provider's default model id.
type GenerationParams struct {
	Temperature *float64 `json:"temperature,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
	TopK        *int32   `json:"top_k,omitempty"`
	MaxTokens   *int64   `json:"max_tokens,omitempty"`
	Model       string   `json:"model,omitempty"`
}

// AIRequest is the normalized request passed to a provider activity.
// A fresh instance is constructed for every activity call.
type AIRequest struct {
	// Prompt is the text prompt. Required, non-empty.
	Prompt string `json:"prompt"`
	// FilePath optionally references a local attachment, resolved by the
	// activity on its own host.
	FilePath string `json:"file_path,omitempty"`
	// Params optionally overrides the provider's generation defaults.
	Params *GenerationParams `json:"params,omitempty"`
}

// AIResponse is the normalized response returned by a provider activity.
type AIResponse struct {
	// Content is the generated text. Empty only for safety-blocked calls.
	Content string `json:"content"`
	// ModelUsed echoes the concrete model id the activity actually used.
	ModelUsed string `json:"model_used"`
	// TokensUsed is the total token count, 0 when the provider does not
	// report usage.
	TokensUsed int64 `json:"tokens_used,omitempty"`
	// Metadata carries provider-specific diagnostics such as the finish
	// reason or a safety-block flag.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SafetyBlocked reports whether the response represents a refused/blocked
// generation rather than real content.
func (r AIResponse) SafetyBlocked() bool {
	return r.Metadata[MetaSafetyBlocked] == "true"
}

// Metadata keys shared across provider activities.
const (
	MetaFinishReason     = "finish_reason"
	MetaStopReason       = "stop_reason"
	MetaPromptTokens     = "prompt_tokens"
	MetaCompletionTokens = "completion_tokens"
	MetaInputTokens      = "input_tokens"
	MetaOutputTokens     = "output_tokens"
	MetaSafetyBlocked    = "safety_blocked"
	MetaBlockReason      = "block_reason"
)

// OrchestrationInput is the immutable input to a composition workflow.
type OrchestrationInput struct {
	InitialPrompt string `json:"initial_prompt"`
	FilePath      string `json:"file_path,omitempty"`
	// Providers selects which backends participate. Empty means all three.
	Providers []Provider `json:"providers,omitempty"`
}

// EffectiveProviders returns the requested providers with duplicates
// removed, keeping first-occurrence order. Defaults to the full triple when
// none were given. A repeated provider carries no extra weight, so it is
// invoked once.
func (in OrchestrationInput) EffectiveProviders() []Provider {
	if len(in.Providers) == 0 {
		return AllProviders()
	}
	seen := make(map[Provider]bool, len(in.Providers))
	providers := make([]Provider, 0, len(in.Providers))
	for _, p := range in.Providers {
		if seen[p] {
			continue
		}
		seen[p] = true
		providers = append(providers, p)
	}
	return providers
}

// OrchestrationResult is the finalized output of a composition workflow.
type OrchestrationResult struct {
	// Results maps each invoked provider to its response. Synthesis calls
	// are not included.
	Results map[Provider]AIResponse `json:"results"`
	// Consensus is the composed output text, produced by a synthesis
	// activity call.
	Consensus string `json:"consensus,omitempty"`
	// Analysis is a human-readable label describing which composition ran.
	Analysis string `json:"analysis,omitempty"`
}

// Algorithm names a composition strategy.
type Algorithm string

const (
	// AlgorithmConsensus fans the same prompt out to every provider and
	// synthesizes a balanced consensus.
	AlgorithmConsensus Algorithm = "consensus"
	// AlgorithmChain runs providers sequentially, each refining the last.
	AlgorithmChain Algorithm = "chain"
	// AlgorithmSpecialist sends each provider a prompt tailored to its
	// strength, then synthesizes a unified response.
	AlgorithmSpecialist Algorithm = "specialist"
)

// Valid returns true if the algorithm is a known value.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmConsensus, AlgorithmChain, AlgorithmSpecialist:
		return true
	default:
		return false
	}
}

// ParseAlgorithm converts a string to an Algorithm, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, bool) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	return a, a.Valid()
}

// imageExtensions are the attachment extensions treated as images when
// choosing vision-capable handling. The set is fixed; prompt construction
// depends on it and must stay deterministic across replays.
var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// HasImageExtension reports whether path names an image attachment.
// Pure function of its input.
func HasImageExtension(path string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}
