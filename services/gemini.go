package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	DefaultGeminiModel   = "gemini-pro"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiTimeout = 60 * time.Second
)

// GeminiClient calls the Gemini generateContent API. The client is
// constructed unconfigured and armed once via TryInitialize; a failed
// initialization leaves it retryable, the ready flag is only set on success.
type GeminiClient struct {
	mu         sync.Mutex
	apiKey     string
	ready      bool
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient builds an uninitialized client. Empty model or baseURL
// fall back to the service defaults; baseURL is overridable so tests can
// point the client at a local server.
func NewGeminiClient(model, baseURL string, timeout time.Duration) *GeminiClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultGeminiTimeout
	}
	return &GeminiClient{
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// TryInitialize arms the client with an API key. Returns false (and stays
// uninitialized) on an empty key. Re-initialization after success is a no-op.
func (c *GeminiClient) TryInitialize(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return true
	}
	if key == "" {
		log.Printf("Gemini initialization failed: missing API key")
		return false
	}
	c.apiKey = key
	c.ready = true
	return true
}

// IsReady reports whether the client has been initialized.
func (c *GeminiClient) IsReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single text prompt and returns the model's text response.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	ready, key := c.ready, c.apiKey
	c.mu.Unlock()
	if !ready {
		return "", fmt.Errorf("gemini client not initialized")
	}

	reqJSON, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:generateContent?key=%s", c.baseURL, c.model, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(reqJSON)))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: %d %s", resp.StatusCode, string(body))
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var texts []string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	if len(texts) == 0 {
		return "", fmt.Errorf("no text in gemini response")
	}
	return strings.Join(texts, "\n"), nil
}
