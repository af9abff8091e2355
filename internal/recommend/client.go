// Package recommend calls the companion content-recommendation service.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
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

type recommendItem struct {
	ID    uuid.UUID `json:"id"`
	Genre string    `json:"genre"`
}

type recommendRequest struct {
	UserPreferences string          `json:"user_preferences"`
	Content         []recommendItem `json:"content"`
}

// Recommend sends the catalog and the user's preference string to the
// recommender and returns the ids it picks, in its ranking order.
func (c *Client) Recommend(ctx context.Context, preferences string, items []domain.Content) ([]uuid.UUID, error) {
	payload := recommendRequest{UserPreferences: preferences}
	for _, item := range items {
		payload.Content = append(payload.Content, recommendItem{ID: item.ID, Genre: item.Genre})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling recommender: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommender returned status %d", resp.StatusCode)
	}

	var ids []uuid.UUID
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		return nil, fmt.Errorf("decoding recommender response: %w", err)
	}
	return ids, nil
}
