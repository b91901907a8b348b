// Package provider implements the three AI provider activities.
//
// Each provider exposes the same contract, ProcessRequest taking a normalized
// AIRequest and returning a normalized AIResponse, but owns its own default
// model, generation parameters, and attachment serialization. Activities are
// registered under per-provider names and hosted on per-provider task queues
// so credentials only need to exist on the worker that uses them.
package provider

import (
	"fmt"

	"go.temporal.io/sdk/temporal"

	"github.com/chorusworks/chorus/pkg/models"
)

// Task queues, one per provider. Workers for a provider listen only on its
// own queue.
const (
	GeminiTaskQueue    = "gemini-ai-queue"
	OpenAITaskQueue    = "openai-ai-queue"
	AnthropicTaskQueue = "anthropic-ai-queue"
)

// Activity registration names.
const (
	GeminiActivityName    = "gemini.ProcessRequest"
	OpenAIActivityName    = "openai.ProcessRequest"
	AnthropicActivityName = "anthropic.ProcessRequest"
)

// Application error types surfaced across the activity boundary. The workflow
// retry policy treats all but ErrTypeProvider as non-retryable.
const (
	// ErrTypeConfiguration marks a missing or unusable credential.
	ErrTypeConfiguration = "ConfigurationError"
	// ErrTypeProvider marks a failed or malformed remote provider call.
	ErrTypeProvider = "ProviderError"
	// ErrTypeInvalidRequest marks a request that can never succeed, such as
	// an empty prompt.
	ErrTypeInvalidRequest = "InvalidRequestError"
	// ErrTypeAttachment marks an attachment that could not be read.
	ErrTypeAttachment = "AttachmentError"
)

// TaskQueueFor returns the task queue serving a provider's activities.
func TaskQueueFor(p models.Provider) (string, error) {
	switch p {
	case models.ProviderGemini:
		return GeminiTaskQueue, nil
	case models.ProviderOpenAI:
		return OpenAITaskQueue, nil
	case models.ProviderAnthropic:
		return AnthropicTaskQueue, nil
	default:
		return "", fmt.Errorf("unknown provider %q", p)
	}
}

// ActivityName returns the registered activity name for a provider.
func ActivityName(p models.Provider) (string, error) {
	switch p {
	case models.ProviderGemini:
		return GeminiActivityName, nil
	case models.ProviderOpenAI:
		return OpenAIActivityName, nil
	case models.ProviderAnthropic:
		return AnthropicActivityName, nil
	default:
		return "", fmt.Errorf("unknown provider %q", p)
	}
}

// configurationError marks a missing or unusable credential. Constructors
// return it so a misconfigured worker never starts, and the workflow retry
// policy refuses to retry it if it ever crosses the activity boundary.
func configurationError(detail string) error {
	return temporal.NewNonRetryableApplicationError(detail, ErrTypeConfiguration, nil)
}

// providerError wraps a failed remote call as a retryable application error.
func providerError(p models.Provider, err error) error {
	return temporal.NewApplicationErrorWithCause(
		fmt.Sprintf("%s request failed: %v", p, err), ErrTypeProvider, err)
}

// malformedResponseError marks a provider payload that decoded successfully
// at the transport level but is missing the fields we require.
func malformedResponseError(p models.Provider, detail string) error {
	return temporal.NewApplicationError(
		fmt.Sprintf("%s returned a malformed response: %s", p, detail), ErrTypeProvider)
}

// invalidRequestError marks a request that no retry can fix.
func invalidRequestError(p models.Provider, detail string) error {
	return temporal.NewNonRetryableApplicationError(
		fmt.Sprintf("invalid %s request: %s", p, detail), ErrTypeInvalidRequest, nil)
}

// attachmentError marks a failure to read the request's attachment file.
func attachmentError(p models.Provider, path string, err error) error {
	return temporal.NewNonRetryableApplicationError(
		fmt.Sprintf("%s attachment %s: %v", p, path, err), ErrTypeAttachment, err)
}
