package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/selfcraft/atlas/internal/domain/model"
)

// HTTPClient wraps http.Client with a request timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

type ack struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// postSession submits one session and classifies the outcome.
func (c *HTTPClient) postSession(ctx context.Context, baseURL string, sub model.Submission) (accepted, duplicate bool, err error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return false, false, fmt.Errorf("marshal submission: %w", err)
	}

	url := fmt.Sprintf("%s/sessions/%s", baseURL, sub.Tool)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, false, fmt.Errorf("post session: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusAccepted:
		return true, false, nil
	case http.StatusOK:
		var a ack
		if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
			return false, false, fmt.Errorf("decode ack: %w", err)
		}
		return false, a.Duplicate, nil
	case http.StatusTooManyRequests:
		return false, false, nil
	default:
		raw, _ := io.ReadAll(resp.Body)
		return false, false, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw)
	}
}

// getResults reads back recent snapshots for a user and tool.
func (c *HTTPClient) getResults(ctx context.Context, baseURL, userID string, tool model.Tool, limit int) ([]model.Snapshot, error) {
	url := fmt.Sprintf("%s/results/%s?user_id=%s&limit=%d", baseURL, tool, userID, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw)
	}

	var snaps []model.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snaps); err != nil {
		return nil, fmt.Errorf("decode snapshots: %w", err)
	}
	return snaps, nil
}

// checkServiceHealth verifies the target instance is reachable.
func (c *HTTPClient) checkServiceHealth(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/healthz", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}
