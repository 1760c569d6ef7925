// Package imagegen renders logo images with a Gemini image model.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/genai"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
)

var _ port.ImageGenerator = (*Generator)(nil)

// ErrNoImage is returned when the model answered without an image part.
var ErrNoImage = errors.New("imagegen: response holds no image")

// Generator implements port.ImageGenerator.
type Generator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// New creates a Gemini client. hc may be nil.
func New(ctx context.Context, cfg configs.ImageGen, hc *http.Client, logger *slog.Logger) (*Generator, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{client: client, model: cfg.Model, logger: logger}, nil
}

// GenerateImage asks for text and image output and returns the bytes of the
// first inline image part.
func (g *Generator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				g.logger.Debug("image generated",
					slog.String("mime_type", part.InlineData.MIMEType),
					slog.Int("bytes", len(part.InlineData.Data)))
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, ErrNoImage
}
