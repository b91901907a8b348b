package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"

	"github.com/chorusworks/chorus/internal/config"
	"github.com/chorusworks/chorus/internal/orchestrator"
	"github.com/chorusworks/chorus/pkg/models"
)

var (
	runAlgorithm string
	runFile      string
	runProviders []string
	runShowAll   bool
)

var runCmd = &cobra.Command{
	Use:   "run <prompt>",
	Short: "Run a prompt through a composition workflow",
	Long: `Submit a prompt to the composition workflows and wait for the result.

Algorithms (--algorithm):
  consensus   All requested providers answer in parallel; Anthropic
              synthesizes a balanced consensus. Honors --providers.
  chain       Gemini → OpenAI → Anthropic, each step refining the last.
              Always uses all three providers.
  specialist  Per-provider prompts tuned to each backend's strength,
              synthesized into one response. Always uses all three.

Attach a file with --file. Image attachments (.png, .jpg, .jpeg, .gif)
are sent to vision-capable models; text files are folded into the
prompt; other binaries are referenced by name only.

The workflow runs durably: if this command is interrupted, the
execution continues on the workers and can be inspected with the
Temporal CLI.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

func init() {
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "consensus", "Composition algorithm: consensus, chain, or specialist")
	runCmd.Flags().StringVar(&runFile, "file", "", "Optional attachment path, resolved on the provider workers")
	runCmd.Flags().StringSliceVar(&runProviders, "providers", nil, "Providers for consensus (default all): gemini, openai, anthropic")
	runCmd.Flags().BoolVar(&runShowAll, "show-all", false, "Print each provider's response, not just the composed output")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	algorithm, ok := models.ParseAlgorithm(runAlgorithm)
	if !ok {
		return fmt.Errorf("invalid algorithm %q: must be consensus, chain, or specialist", runAlgorithm)
	}

	var providers []models.Provider
	for _, s := range runProviders {
		p := models.Provider(strings.ToLower(strings.TrimSpace(s)))
		if !p.Valid() {
			return fmt.Errorf("invalid provider %q: must be gemini, openai, or anthropic", s)
		}
		providers = append(providers, p)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		return fmt.Errorf("connect to Temporal at %s: %w", cfg.Temporal.HostPort, err)
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel the wait on interrupt; the workflow itself keeps running.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted; the workflow continues on the workers.")
		cancel()
	}()

	driver := orchestrator.NewDriver(c)
	input := models.OrchestrationInput{
		InitialPrompt: args[0],
		FilePath:      runFile,
		Providers:     providers,
	}

	fmt.Printf("Running %s composition...\n\n", color.CyanString(string(algorithm)))

	result, err := driver.Run(ctx, algorithm, input)
	if err != nil {
		return fmt.Errorf("orchestration failed: %w", err)
	}

	printResult(result)
	return nil
}

// printResult renders an orchestration result to stdout.
func printResult(result models.OrchestrationResult) {
	if runShowAll {
		for _, p := range models.AllProviders() {
			resp, ok := result.Results[p]
			if !ok {
				continue
			}
			header := fmt.Sprintf("── %s (%s) ──", strings.ToUpper(string(p)), resp.ModelUsed)
			fmt.Println(color.YellowString(header))
			if resp.SafetyBlocked() {
				fmt.Printf("%s %s\n", color.RedString("blocked:"), resp.Metadata[models.MetaBlockReason])
			}
			fmt.Println(resp.Content)
			if resp.TokensUsed > 0 {
				fmt.Printf("%s\n", color.HiBlackString(fmt.Sprintf("tokens: %d", resp.TokensUsed)))
			}
			fmt.Println()
		}
	}

	fmt.Println(color.GreenString("── Composed output ──"))
	fmt.Println(result.Consensus)
	fmt.Println()
	fmt.Println(color.HiBlackString(result.Analysis))
}
