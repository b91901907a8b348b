package provider

import (
	"context"
	"fmt"
	"strings"

	"go.temporal.io/sdk/activity"
	"google.golang.org/genai"

	"github.com/chorusworks/chorus/pkg/models"
)

// Gemini generation defaults.
const (
	defaultGeminiModel    = "gemini-1.5-pro"
	geminiTemperature     = 0.7
	geminiTopP            = 0.95
	geminiTopK            = 40
	geminiMaxOutputTokens = 4096
)

// GeminiConfig configures the Gemini activity host.
type GeminiConfig struct {
	// APIKey is the Gemini API key. Required.
	APIKey string
	// Model overrides the default model id for all calls.
	Model string
}

// GeminiActivities implements ProcessRequest against Google Gemini.
// Gemini is the multimodal specialist: attachments are always sent as inline
// binary parts, images and documents alike.
type GeminiActivities struct {
	client *genai.Client
	model  string
}

// NewGeminiActivities creates the Gemini activity host. It fails immediately
// when the API key is absent so a misconfigured worker never starts.
func NewGeminiActivities(ctx context.Context, cfg GeminiConfig) (*GeminiActivities, error) {
	if cfg.APIKey == "" {
		return nil, configurationError("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiActivities{client: client, model: model}, nil
}

// ProcessRequest sends one prompt (plus optional attachment) to Gemini and
// normalizes the response. A safety-blocked generation is returned as a
// successful response with placeholder content and a safety_blocked metadata
// flag, so composition workflows can proceed with partial material instead of
// failing the whole run.
func (g *GeminiActivities) ProcessRequest(ctx context.Context, req models.AIRequest) (models.AIResponse, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing Gemini request", "prompt_len", len(req.Prompt), "has_file", req.FilePath != "")

	if strings.TrimSpace(req.Prompt) == "" {
		return models.AIResponse{}, invalidRequestError(models.ProviderGemini, "prompt is empty")
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.FilePath != "" {
		att, err := LoadAttachment(req.FilePath)
		if err != nil {
			return models.AIResponse{}, attachmentError(models.ProviderGemini, req.FilePath, err)
		}
		parts = append(parts, genai.NewPartFromBytes(att.Data, att.MIME))
		logger.Info("Including attachment", "path", req.FilePath, "mime", att.MIME)
	}

	model, genCfg := g.generationConfig(req.Params)
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, genCfg)
	if err != nil {
		return models.AIResponse{}, providerError(models.ProviderGemini, err)
	}

	text := resp.Text()
	if text == "" {
		logger.Warn("Gemini response was empty or blocked")
		meta := map[string]string{models.MetaSafetyBlocked: "true"}
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			meta[models.MetaBlockReason] = string(resp.PromptFeedback.BlockReason)
		}
		return models.AIResponse{
			Content:   "Response was blocked due to safety filters",
			ModelUsed: model,
			Metadata:  meta,
		}, nil
	}

	out := models.AIResponse{
		Content:   text,
		ModelUsed: model,
		Metadata:  map[string]string{},
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
		out.Metadata[models.MetaFinishReason] = string(resp.Candidates[0].FinishReason)
	}
	if resp.UsageMetadata != nil {
		out.TokensUsed = int64(resp.UsageMetadata.TotalTokenCount)
	}
	return out, nil
}

// generationConfig builds the model id and generation settings for one call,
// applying caller overrides field by field on top of the defaults.
func (g *GeminiActivities) generationConfig(p *models.GenerationParams) (string, *genai.GenerateContentConfig) {
	model := g.model
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(geminiTemperature)),
		TopP:            genai.Ptr(float32(geminiTopP)),
		TopK:            genai.Ptr(float32(geminiTopK)),
		MaxOutputTokens: geminiMaxOutputTokens,
	}
	if p == nil {
		return model, cfg
	}
	if p.Model != "" {
		model = p.Model
	}
	if p.Temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*p.Temperature))
	}
	if p.TopP != nil {
		cfg.TopP = genai.Ptr(float32(*p.TopP))
	}
	if p.TopK != nil {
		cfg.TopK = genai.Ptr(float32(*p.TopK))
	}
	if p.MaxTokens != nil {
		cfg.MaxOutputTokens = int32(*p.MaxTokens)
	}
	return model, cfg
}
