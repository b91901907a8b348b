package provider

import (
	"context"
	"strconv"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.temporal.io/sdk/activity"

	"github.com/chorusworks/chorus/pkg/models"
)

// OpenAI generation defaults. The vision model is substituted automatically
// when an image attachment is present.
const (
	defaultOpenAIModel = "gpt-4-turbo-preview"
	openAIVisionModel  = "gpt-4-vision-preview"
	openAITemperature  = 0.7
	openAIMaxTokens    = 4096
)

// OpenAIConfig configures the OpenAI activity host.
type OpenAIConfig struct {
	// APIKey is the OpenAI API key. Required.
	APIKey string
	// Model overrides the default model id for all calls.
	Model string
}

// OpenAIActivities implements ProcessRequest against OpenAI chat completions.
type OpenAIActivities struct {
	client openai.Client
	model  string
}

// NewOpenAIActivities creates the OpenAI activity host. It fails immediately
// when the API key is absent so a misconfigured worker never starts.
func NewOpenAIActivities(cfg OpenAIConfig) (*OpenAIActivities, error) {
	if cfg.APIKey == "" {
		return nil, configurationError("OPENAI_API_KEY is not set")
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIActivities{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  model,
	}, nil
}

// ProcessRequest sends one prompt (plus optional attachment) to OpenAI and
// normalizes the response. Image attachments switch the call to the vision
// model with an inline data URL; other attachments are folded into the
// prompt text.
func (o *OpenAIActivities) ProcessRequest(ctx context.Context, req models.AIRequest) (models.AIResponse, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing OpenAI request", "prompt_len", len(req.Prompt), "has_file", req.FilePath != "")

	if strings.TrimSpace(req.Prompt) == "" {
		return models.AIResponse{}, invalidRequestError(models.ProviderOpenAI, "prompt is empty")
	}

	model := o.model
	var message openai.ChatCompletionMessageParamUnion

	if req.FilePath != "" {
		att, err := LoadAttachment(req.FilePath)
		if err != nil {
			return models.AIResponse{}, attachmentError(models.ProviderOpenAI, req.FilePath, err)
		}
		if att.IsImage() {
			message = openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(req.Prompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: att.DataURL(),
				}),
			})
			model = openAIVisionModel
			logger.Info("Using vision model for image attachment", "mime", att.MIME)
		} else {
			message = openai.UserMessage(textualPrompt(req.Prompt, att))
		}
	} else {
		message = openai.UserMessage(req.Prompt)
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    []openai.ChatCompletionMessageParamUnion{message},
		Temperature: openai.Float(openAITemperature),
		MaxTokens:   openai.Int(openAIMaxTokens),
	}
	model = applyOpenAIParams(&params, req.Params, model)

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return models.AIResponse{}, providerError(models.ProviderOpenAI, err)
	}
	if len(resp.Choices) == 0 {
		return models.AIResponse{}, malformedResponseError(models.ProviderOpenAI, "no choices in completion")
	}

	choice := resp.Choices[0]
	out := models.AIResponse{
		Content:    choice.Message.Content,
		ModelUsed:  model,
		TokensUsed: resp.Usage.TotalTokens,
		Metadata: map[string]string{
			models.MetaFinishReason:     string(choice.FinishReason),
			models.MetaPromptTokens:     strconv.FormatInt(resp.Usage.PromptTokens, 10),
			models.MetaCompletionTokens: strconv.FormatInt(resp.Usage.CompletionTokens, 10),
		},
	}
	return out, nil
}

// applyOpenAIParams overrides the request defaults with caller-supplied
// values and returns the model id actually in effect. TopK has no OpenAI
// equivalent and is ignored.
func applyOpenAIParams(params *openai.ChatCompletionNewParams, p *models.GenerationParams, model string) string {
	if p == nil {
		return model
	}
	if p.Model != "" {
		model = p.Model
		params.Model = openai.ChatModel(model)
	}
	if p.Temperature != nil {
		params.Temperature = openai.Float(*p.Temperature)
	}
	if p.TopP != nil {
		params.TopP = openai.Float(*p.TopP)
	}
	if p.MaxTokens != nil {
		params.MaxTokens = openai.Int(*p.MaxTokens)
	}
	return model
}
