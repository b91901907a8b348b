package workflows

import (
	"fmt"
	"strings"

	"github.com/chorusworks/chorus/pkg/models"
)

// Prompt builders are pure functions of their inputs. Workflow replay depends
// on that: the same responses must always assemble the same prompt.

// consensusPrompt concatenates each provider's response, in the order the
// providers were requested, under a summary instruction.
func consensusPrompt(providers []models.Provider, results map[models.Provider]models.AIResponse) string {
	var b strings.Builder
	b.WriteString("Based on these AI responses, create a consensus summary:\n\n")
	for _, p := range providers {
		fmt.Fprintf(&b, "**%s Response:**\n%s\n\n", strings.ToUpper(string(p)), results[p].Content)
	}
	b.WriteString("Create a balanced consensus that incorporates the best insights from all responses.")
	return b.String()
}

func chainInitialPrompt(initial string) string {
	return fmt.Sprintf("Analyze this request and provide initial insights: %s", initial)
}

func chainRefinePrompt(initial, analysis string) string {
	return fmt.Sprintf(`Original request: %s

Initial analysis from another AI:
%s

Please refine and enhance this analysis with additional insights and improvements.`, initial, analysis)
}

func chainValidatePrompt(initial, analysis, refined string) string {
	return fmt.Sprintf(`Original request: %s

Analysis progression:
1. Initial: %s
2. Refined: %s

Please validate the analysis, correct any errors, and provide a final polished response.`, initial, analysis, refined)
}

// specialistVisionPrompt branches on the attachment extension: image files
// get a detailed image-analysis framing, everything else a creative one.
func specialistVisionPrompt(initial, filePath string) string {
	if filePath != "" && models.HasImageExtension(filePath) {
		return fmt.Sprintf("Analyze this image in detail and %s", initial)
	}
	return fmt.Sprintf("Provide a creative and comprehensive response to: %s", initial)
}

func specialistTechnicalPrompt(initial string) string {
	return fmt.Sprintf(`Technical analysis requested: %s

Please provide:
1. Technical implementation details
2. Code examples if applicable
3. Best practices and considerations`, initial)
}

func specialistAnalyticalPrompt(initial string) string {
	return fmt.Sprintf(`Analytical task: %s

Please provide:
1. Logical analysis and reasoning
2. Potential challenges and solutions
3. Strategic recommendations`, initial)
}

func synthesisPrompt(vision, technical, analytical string) string {
	return fmt.Sprintf(`Synthesize these specialized analyses into a comprehensive response:

Visual/Creative Analysis (Gemini):
%s

Technical Analysis (OpenAI):
%s

Strategic Analysis (Anthropic):
%s

Create a unified response that leverages the strengths of each analysis.`, vision, technical, analytical)
}
