package provider

import (
	"errors"
	"testing"

	"go.temporal.io/sdk/temporal"

	"github.com/chorusworks/chorus/pkg/models"
)

// wantConfigurationError asserts that err is a non-retryable application
// error of the configuration type carrying the given message.
func wantConfigurationError(t *testing.T, err error, message string) {
	t.Helper()
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		t.Fatalf("error is %T, want *temporal.ApplicationError", err)
	}
	if appErr.Type() != ErrTypeConfiguration {
		t.Errorf("Type() = %q, want %q", appErr.Type(), ErrTypeConfiguration)
	}
	if !appErr.NonRetryable() {
		t.Error("configuration errors must not be retried")
	}
	if appErr.Message() != message {
		t.Errorf("Message() = %q, want %q", appErr.Message(), message)
	}
}

func TestTaskQueueFor(t *testing.T) {
	tests := []struct {
		provider models.Provider
		want     string
		wantErr  bool
	}{
		{models.ProviderGemini, GeminiTaskQueue, false},
		{models.ProviderOpenAI, OpenAITaskQueue, false},
		{models.ProviderAnthropic, AnthropicTaskQueue, false},
		{models.Provider("cohere"), "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			got, err := TaskQueueFor(tt.provider)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TaskQueueFor(%q) error = %v, wantErr %v", tt.provider, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TaskQueueFor(%q) = %q, want %q", tt.provider, got, tt.want)
			}
		})
	}
}

func TestActivityName(t *testing.T) {
	tests := []struct {
		provider models.Provider
		want     string
		wantErr  bool
	}{
		{models.ProviderGemini, GeminiActivityName, false},
		{models.ProviderOpenAI, OpenAIActivityName, false},
		{models.ProviderAnthropic, AnthropicActivityName, false},
		{models.Provider(""), "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			got, err := ActivityName(tt.provider)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ActivityName(%q) error = %v, wantErr %v", tt.provider, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ActivityName(%q) = %q, want %q", tt.provider, got, tt.want)
			}
		})
	}
}
