package provider

import (
	"context"
	"strconv"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"go.temporal.io/sdk/activity"

	"github.com/chorusworks/chorus/pkg/models"
)

// Anthropic generation defaults.
const (
	defaultAnthropicModel = anthropic.Model("claude-3-opus-20240229")
	anthropicTemperature  = 0.7
	anthropicMaxTokens    = 4096
)

// AnthropicConfig configures the Anthropic activity host.
type AnthropicConfig struct {
	// APIKey is the Anthropic API key. Required unless UseBedrock is set.
	APIKey string
	// Model overrides the default model id for all calls.
	Model string
	// UseBedrock routes calls through AWS Bedrock instead of the direct API.
	UseBedrock bool
	// AWSRegion is the AWS region for Bedrock (e.g. "us-west-2").
	AWSRegion string
	// AWSProfile is the optional AWS profile name to use.
	AWSProfile string
}

// AnthropicActivities implements ProcessRequest against Anthropic Claude.
// Anthropic also serves as the synthesizer for the consensus and specialist
// compositions.
type AnthropicActivities struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicActivities creates the Anthropic activity host. It fails
// immediately when no credential source is available so a misconfigured
// worker never starts.
func NewAnthropicActivities(ctx context.Context, cfg AnthropicConfig) (*AnthropicActivities, error) {
	var opts []option.RequestOption

	if cfg.UseBedrock {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.AWSRegion != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.AWSRegion))
		}
		if cfg.AWSProfile != "" {
			loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.AWSProfile))
		}
		opts = append(opts, bedrock.WithLoadDefaultConfig(ctx, loadOpts...))
	} else {
		if cfg.APIKey == "" {
			return nil, configurationError("ANTHROPIC_API_KEY is not set")
		}
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = defaultAnthropicModel
	}

	return &AnthropicActivities{client: anthropic.NewClient(opts...), model: model}, nil
}

// ProcessRequest sends one prompt (plus optional attachment) to Claude and
// normalizes the response. Image attachments are sent as base64 image
// blocks; other attachments are folded into the prompt text.
func (a *AnthropicActivities) ProcessRequest(ctx context.Context, req models.AIRequest) (models.AIResponse, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing Anthropic request", "prompt_len", len(req.Prompt), "has_file", req.FilePath != "")

	if strings.TrimSpace(req.Prompt) == "" {
		return models.AIResponse{}, invalidRequestError(models.ProviderAnthropic, "prompt is empty")
	}

	var blocks []anthropic.ContentBlockParamUnion
	if req.FilePath != "" {
		att, err := LoadAttachment(req.FilePath)
		if err != nil {
			return models.AIResponse{}, attachmentError(models.ProviderAnthropic, req.FilePath, err)
		}
		if att.IsImage() {
			blocks = []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(req.Prompt),
				anthropic.NewImageBlockBase64(att.MIME, att.Base64()),
			}
		} else {
			blocks = []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(textualPrompt(req.Prompt, att)),
			}
		}
	} else {
		blocks = []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(req.Prompt)}
	}

	params := anthropic.MessageNewParams{
		Model:       a.model,
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(anthropicTemperature),
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	}
	model := applyAnthropicParams(&params, req.Params)

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return models.AIResponse{}, providerError(models.ProviderAnthropic, err)
	}

	var content strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			content.WriteString(text.Text)
		}
	}

	out := models.AIResponse{
		Content:    content.String(),
		ModelUsed:  string(model),
		TokensUsed: resp.Usage.InputTokens + resp.Usage.OutputTokens,
		Metadata: map[string]string{
			models.MetaStopReason:   string(resp.StopReason),
			models.MetaInputTokens:  strconv.FormatInt(resp.Usage.InputTokens, 10),
			models.MetaOutputTokens: strconv.FormatInt(resp.Usage.OutputTokens, 10),
		},
	}
	return out, nil
}

// applyAnthropicParams overrides the request defaults with caller-supplied
// values and returns the model id actually in effect.
func applyAnthropicParams(params *anthropic.MessageNewParams, p *models.GenerationParams) anthropic.Model {
	if p == nil {
		return params.Model
	}
	if p.Model != "" {
		params.Model = anthropic.Model(p.Model)
	}
	if p.Temperature != nil {
		params.Temperature = anthropic.Float(*p.Temperature)
	}
	if p.TopP != nil {
		params.TopP = anthropic.Float(*p.TopP)
	}
	if p.TopK != nil {
		params.TopK = anthropic.Int(int64(*p.TopK))
	}
	if p.MaxTokens != nil {
		params.MaxTokens = *p.MaxTokens
	}
	return params.Model
}
