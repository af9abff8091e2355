// Package sentiment calls the companion sentiment-analysis service.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type analyzeRequest struct {
	Content string `json:"content"`
}

type analyzeResponse struct {
	Sentiment string `json:"sentiment"`
}

// Analyze classifies the given text. Callers are expected to treat a failure
// as "no sentiment" rather than an error worth surfacing.
func (c *Client) Analyze(ctx context.Context, content string) (string, error) {
	body, err := json.Marshal(analyzeRequest{Content: content})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sentiment", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling sentiment service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sentiment service returned status %d", resp.StatusCode)
	}

	var out analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding sentiment response: %w", err)
	}
	return out.Sentiment, nil
}
