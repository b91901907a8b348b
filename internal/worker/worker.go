// Package worker builds the Temporal workers that host the composition
// workflows and the per-provider activities. Each worker serves exactly one
// role so a process only needs the credentials for the provider it runs.
package worker

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/chorusworks/chorus/internal/config"
	"github.com/chorusworks/chorus/internal/provider"
	"github.com/chorusworks/chorus/internal/workflows"
	"github.com/chorusworks/chorus/pkg/models"
)

// Role selects what a worker process hosts.
type Role string

const (
	// RoleWorkflow hosts the composition workflows only.
	RoleWorkflow Role = "workflow"
	// RoleGemini hosts the Gemini provider activity.
	RoleGemini Role = "gemini"
	// RoleOpenAI hosts the OpenAI provider activity.
	RoleOpenAI Role = "openai"
	// RoleAnthropic hosts the Anthropic provider activity.
	RoleAnthropic Role = "anthropic"
)

// ParseRole converts a string to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleWorkflow, RoleGemini, RoleOpenAI, RoleAnthropic:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown worker role %q (want workflow, gemini, openai, or anthropic)", s)
	}
}

// New builds a worker for the given role on an existing Temporal client.
// Provider roles fail here, before polling starts, when their credentials
// are missing.
func New(ctx context.Context, c client.Client, role Role, cfg *config.Config) (worker.Worker, error) {
	switch role {
	case RoleWorkflow:
		w := worker.New(c, workflows.TaskQueue, worker.Options{})
		workflows.RegisterAll(w)
		return w, nil

	case RoleGemini:
		key, err := config.GetAPIKey(cfg, models.ProviderGemini)
		if err != nil {
			key = "" // constructor reports the canonical error
		}
		acts, err := provider.NewGeminiActivities(ctx, provider.GeminiConfig{
			APIKey: key,
			Model:  cfg.Gemini.Model,
		})
		if err != nil {
			return nil, err
		}
		w := worker.New(c, provider.GeminiTaskQueue, worker.Options{})
		w.RegisterActivityWithOptions(acts.ProcessRequest, activity.RegisterOptions{Name: provider.GeminiActivityName})
		return w, nil

	case RoleOpenAI:
		key, err := config.GetAPIKey(cfg, models.ProviderOpenAI)
		if err != nil {
			key = ""
		}
		acts, err := provider.NewOpenAIActivities(provider.OpenAIConfig{
			APIKey: key,
			Model:  cfg.OpenAI.Model,
		})
		if err != nil {
			return nil, err
		}
		w := worker.New(c, provider.OpenAITaskQueue, worker.Options{})
		w.RegisterActivityWithOptions(acts.ProcessRequest, activity.RegisterOptions{Name: provider.OpenAIActivityName})
		return w, nil

	case RoleAnthropic:
		key, err := config.GetAPIKey(cfg, models.ProviderAnthropic)
		if err != nil {
			key = ""
		}
		acts, err := provider.NewAnthropicActivities(ctx, provider.AnthropicConfig{
			APIKey:     key,
			Model:      cfg.Anthropic.Model,
			UseBedrock: cfg.Anthropic.UseBedrock,
			AWSRegion:  cfg.Anthropic.AWSRegion,
			AWSProfile: cfg.Anthropic.AWSProfile,
		})
		if err != nil {
			return nil, err
		}
		w := worker.New(c, provider.AnthropicTaskQueue, worker.Options{})
		w.RegisterActivityWithOptions(acts.ProcessRequest, activity.RegisterOptions{Name: provider.AnthropicActivityName})
		return w, nil

	default:
		return nil, fmt.Errorf("unknown worker role %q", role)
	}
}
