package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"TextSidekick/internal/domain"
	"TextSidekick/internal/grammar"
	"TextSidekick/internal/ports"
)

// Name identifies the remote strategy inside the engine registry.
const Name = "remote"

const defaultTimeout = 15 * time.Second

// Client delegates summarization and correction to an HTTP text-analysis service.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.Engine = (*Client)(nil)

// NewClient creates a reusable HTTP client. A zero timeout means 15 seconds.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

// Name identifies the strategy inside the registry.
func (c *Client) Name() string {
	return Name
}

// Summarize asks the service for at most limit summary sentences.
func (c *Client) Summarize(ctx context.Context, text string, limit int) ([]string, error) {
	payload := map[string]any{
		"text": text,
		"max":  limit,
	}

	var resp struct {
		Sentences []string `json:"sentences"`
	}
	if err := c.post(ctx, "/summarize", payload, &resp); err != nil {
		return nil, fmt.Errorf("remote summarize: %w", err)
	}

	if limit > 0 && len(resp.Sentences) > limit {
		resp.Sentences = resp.Sentences[:limit]
	}
	return resp.Sentences, nil
}

// Correct asks the service for suggestions and a rewrite.
func (c *Client) Correct(ctx context.Context, text string) (domain.Correction, error) {
	payload := map[string]any{
		"text": text,
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
		Rewrite     string   `json:"rewrite"`
	}
	if err := c.post(ctx, "/correct", payload, &resp); err != nil {
		return domain.Correction{}, fmt.Errorf("remote correct: %w", err)
	}

	if len(resp.Suggestions) == 0 {
		resp.Suggestions = []string{grammar.AllClear}
	}
	return domain.Correction{Suggestions: resp.Suggestions, Rewrite: resp.Rewrite}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, v any) error {
	if c.endpoint == "" {
		return fmt.Errorf("remote endpoint is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
