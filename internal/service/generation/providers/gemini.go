package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini adapts Google's Gemini API through the official client
type Gemini struct {
	modelName string
	client    *genai.Client
}

// NewGemini constructs the Gemini adapter. An empty API key yields an
// unavailable adapter rather than an error, so the registry can always be
// built regardless of which credentials are present.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	if apiKey == "" {
		return &Gemini{modelName: modelName}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &Gemini{modelName: modelName, client: client}, nil
}

func (p *Gemini) Name() string { return "gemini" }

func (p *Gemini) Available() bool { return p.client != nil }

// GenerateText implements the Provider interface
func (p *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	if p.client == nil {
		return "", ErrUnavailable
	}

	model := p.client.GenerativeModel(p.modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(4096)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("Gemini blocked the prompt: %s", resp.PromptFeedback.BlockReason)
	}

	return extractGeminiText(resp)
}

// DescribeImage implements the Provider interface
func (p *Gemini) DescribeImage(ctx context.Context, imageURL, prompt string) (string, error) {
	if p.client == nil {
		return "", ErrUnavailable
	}

	model := p.client.GenerativeModel(p.modelName)
	model.SetTemperature(0.3)
	model.SetMaxOutputTokens(1024)

	resp, err := model.GenerateContent(ctx,
		genai.FileData{URI: imageURL},
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("Gemini vision error: %w", err)
	}

	return extractGeminiText(resp)
}

// Close closes the underlying client
func (p *Gemini) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

func extractGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no content generated")
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
