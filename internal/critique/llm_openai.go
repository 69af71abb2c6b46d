package critique

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAILLM implements LLMClient with the official openai-go SDK (chat
// completions).
type OpenAILLM struct {
	model string
	opts  []option.RequestOption
}

func NewOpenAILLM(cfg LLMSettings) (*OpenAILLM, error) {
	if cfg.APIKey == "" {
		return nil, &AuthError{Reason: "missing api key; set OPENAI_API_KEY"}
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAILLM{model: cfg.Model, opts: opts}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(o.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyUpstreamErr maps a raw client error onto the critique taxonomy.
// Credential rejections become AuthError; everything else is transport.
func classifyUpstreamErr(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden {
			return &AuthError{Reason: apierr.Error()}
		}
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}
	return &TransportError{Err: err}
}
