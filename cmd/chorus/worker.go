package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/chorusworks/chorus/internal/config"
	"github.com/chorusworks/chorus/internal/worker"
)

var workerRole string

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run a workflow or provider worker",
	Long: `Run a Temporal worker hosting either the composition workflows or a
single provider's activity.

Roles:
  workflow    Hosts the consensus, chain, and specialist workflows.
  gemini      Hosts the Gemini activity. Requires GEMINI_API_KEY.
  openai      Hosts the OpenAI activity. Requires OPENAI_API_KEY.
  anthropic   Hosts the Anthropic activity. Requires ANTHROPIC_API_KEY,
              or use_bedrock in the config for AWS credentials.

A full deployment runs four workers, one per role. Each provider worker
polls only its own task queue, so a worker never needs another
provider's credentials.`,
	RunE: runWorker,
}

func init() {
	workerCmd.Flags().StringVar(&workerRole, "role", "", "Worker role: workflow, gemini, openai, or anthropic (required)")
	workerCmd.MarkFlagRequired("role")
}

func runWorker(cmd *cobra.Command, args []string) error {
	role, err := worker.ParseRole(workerRole)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Identity:  fmt.Sprintf("chorus-%s-%s", role, uuid.NewString()),
	})
	if err != nil {
		return fmt.Errorf("connect to Temporal at %s: %w", cfg.Temporal.HostPort, err)
	}
	defer c.Close()

	w, err := worker.New(context.Background(), c, role, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("✗"), err)
		os.Exit(1)
	}

	fmt.Printf("%s %s worker polling %s\n", color.GreenString("✓"), role, cfg.Temporal.HostPort)
	return w.Run(sdkworker.InterruptCh())
}
