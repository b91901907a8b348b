package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chorus",
	Short: "Multi-provider AI workflow orchestrator",
	Long: `Chorus orchestrates Gemini, OpenAI, and Anthropic through durable
Temporal workflows. Prompts are dispatched to per-provider workers and
combined with one of three composition algorithms:

  consensus   Send the same prompt to every provider in parallel, then
              synthesize a balanced consensus from the responses.
  chain       Gemini analyzes, OpenAI refines, Anthropic validates;
              each step builds on the previous one.
  specialist  Each provider gets a prompt tailored to its strength
              (vision/creative, technical, analytical), then the
              analyses are synthesized into one response.

Workers host one provider each, so credentials only need to exist on
the worker that uses them. Start workers with 'chorus worker', then
submit prompts with 'chorus run'.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(workerCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
