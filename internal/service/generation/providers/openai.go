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

const openAIAPIURL = "https://api.openai.com/v1/chat/completions"

// OpenAI adapts the OpenAI chat completions API over plain HTTP
type OpenAI struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

type chatMessage struct {
	Role string `json:"role"`
	// Content is a string for text-only messages and a part array for
	// vision requests
	Content any `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// NewOpenAI constructs the OpenAI adapter. An empty API key yields an
// unavailable adapter.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = "gpt-4o"
	}
	return &OpenAI{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *OpenAI) Name() string { return "openai" }

func (p *OpenAI) Available() bool { return p.apiKey != "" }

// GenerateText implements the Provider interface
func (p *OpenAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", ErrUnavailable
	}

	return p.complete(ctx, chatCompletionRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	})
}

// DescribeImage implements the Provider interface
func (p *OpenAI) DescribeImage(ctx context.Context, imageURL, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", ErrUnavailable
	}

	content := []map[string]any{
		{"type": "text", "text": prompt},
		{"type": "image_url", "image_url": map[string]string{"url": imageURL}},
	}

	return p.complete(ctx, chatCompletionRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: content}},
		Temperature: 0.3,
		MaxTokens:   1024,
	})
}

// Close implements the Provider interface; the HTTP client holds no
// resources worth releasing
func (p *OpenAI) Close() error { return nil }

func (p *OpenAI) complete(ctx context.Context, req chatCompletionRequest) (string, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIAPIURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OpenAI API error: %s - %s", resp.Status, string(body))
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", errors.New("no content generated")
	}

	return result.Choices[0].Message.Content, nil
}
