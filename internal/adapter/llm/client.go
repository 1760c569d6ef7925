// Package llm talks to an OpenAI compatible chat completion endpoint (Groq by
// default). It implements the assistant that turns free text into function
// arguments and the recommender that derives campaign settings from landing
// page content.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
)

var (
	_ port.Assistant   = (*Client)(nil)
	_ port.Recommender = (*Client)(nil)
)

// ErrEmptyReply is returned when the model answers with neither content nor
// a tool call.
var ErrEmptyReply = errors.New("llm: empty reply")

// Client wraps the chat completion API.
type Client struct {
	chat    openai.Client
	cfg     configs.LLM
	fetcher port.ContentFetcher
	logger  *slog.Logger
}

// New returns a Client. hc may be nil to use the SDK default transport. SDK
// retries are disabled; retries, if any, belong to hc.
func New(cfg configs.LLM, fetcher port.ContentFetcher, hc *http.Client, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if hc != nil {
		opts = append(opts, option.WithHTTPClient(hc))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		chat:    openai.NewClient(opts...),
		cfg:     cfg,
		fetcher: fetcher,
		logger:  logger,
	}
}

// completion is the part of a chat completion the adapters care about.
type completion struct {
	Content   string
	ToolName  string
	Arguments string
}

type request struct {
	model    string
	system   string
	user     string
	jsonMode bool
	tool     *shared.FunctionDefinitionParam
}

func (c *Client) complete(ctx context.Context, r request) (*completion, error) {
	params := openai.ChatCompletionNewParams{
		Model: r.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(r.system),
			openai.UserMessage(r.user),
		},
		Temperature: openai.Float(c.cfg.Temperature),
	}
	if c.cfg.MaxTokens > 0 {
		params.MaxTokens = openai.Int(c.cfg.MaxTokens)
	}
	if r.jsonMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	if r.tool != nil {
		params.Tools = []openai.ChatCompletionToolUnionParam{openai.ChatCompletionFunctionTool(*r.tool)}
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{OfAuto: openai.String("auto")}
	}

	start := time.Now()
	resp, err := c.chat.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	c.logger.Debug("chat completion",
		slog.String("model", r.model),
		slog.Int64("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int64("completion_tokens", resp.Usage.CompletionTokens),
		slog.Duration("took", time.Since(start)))

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyReply
	}
	msg := resp.Choices[0].Message
	out := &completion{Content: strings.TrimSpace(msg.Content)}
	for _, tc := range msg.ToolCalls {
		if tc.Function.Name == "" {
			continue
		}
		out.ToolName = tc.Function.Name
		out.Arguments = tc.Function.Arguments
		break
	}
	if out.Content == "" && out.ToolName == "" {
		return nil, ErrEmptyReply
	}
	return out, nil
}
