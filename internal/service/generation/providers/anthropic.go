package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

// Anthropic adapts the Anthropic messages API over plain HTTP
type Anthropic struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// NewAnthropic constructs the Anthropic adapter. An empty API key yields an
// unavailable adapter.
func NewAnthropic(apiKey, model string) *Anthropic {
	if model == "" {
		model = "claude-3-5-sonnet-20241022"
	}
	return &Anthropic{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *Anthropic) Name() string { return "anthropic" }

func (p *Anthropic) Available() bool { return p.apiKey != "" }

// GenerateText implements the Provider interface
func (p *Anthropic) GenerateText(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", ErrUnavailable
	}

	return p.send(ctx, anthropicRequest{
		Model:     p.model,
		MaxTokens: 4096,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
}

// DescribeImage implements the Provider interface
func (p *Anthropic) DescribeImage(ctx context.Context, imageURL, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", ErrUnavailable
	}

	content := []map[string]any{
		{"type": "image", "source": map[string]string{"type": "url", "url": imageURL}},
		{"type": "text", "text": prompt},
	}

	return p.send(ctx, anthropicRequest{
		Model:     p.model,
		MaxTokens: 1024,
		Messages:  []anthropicMessage{{Role: "user", Content: content}},
	})
}

// Close implements the Provider interface
func (p *Anthropic) Close() error { return nil }

func (p *Anthropic) send(ctx context.Context, req anthropicRequest) (string, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Anthropic API error: %s - %s", resp.Status, string(body))
	}

	var result anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	for _, block := range result.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", errors.New("no content generated")
}
