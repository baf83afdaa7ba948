// Package llm wraps the external generation service behind a small
// client interface so handlers and tests never touch the provider SDK
// directly.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultModel is the Gemini model used for all translations.
const defaultModel = "gemini-2.5-flash"

// Client is an abstraction over generation providers.
type Client interface {
	// GenerateContent sends the prompt and returns the generated text.
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// Factory builds a Client for a given API key. The server holds one of
// these instead of a long-lived client singleton: BYOK requests get a
// per-request client for the caller's key, and tests substitute fakes.
type Factory func(ctx context.Context, apiKey string) (Client, error)

// NewGeminiClient creates a client for the Google Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &GenerationError{Message: "API key is required"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &GenerationError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiClient{client: client}, nil
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
}

// GenerateContent generates text for the given prompt.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(defaultModel)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Message: "generation request failed", Cause: err}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	return CleanResponse(text), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &GenerationError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &GenerationError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &GenerationError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}

// MockTranslation returns the deterministic placeholder used when no API
// key is configured anywhere, so the rest of the pipeline can be
// exercised without a live external dependency.
func MockTranslation(tone, text string) string {
	return fmt.Sprintf("[Mock - %s] %s", tone, text)
}
