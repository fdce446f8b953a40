package messages

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/teamarchive/member-qa/internal/domain/answer"
)

const defaultBaseURL = "https://november7-730026606190.europe-west1.run.app/messages/"

// Client fetches the full message archive.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an archive client. The timeout bounds the single fetch;
// there are no retries.
func NewClient(baseURL string, timeout time.Duration) *Client {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves every message record. Records without text are dropped
// here so the domain only ever sees usable messages.
func (c *Client) Fetch(ctx context.Context) ([]answer.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build messages request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("messages request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("messages request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read messages response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	return convertRecords(raw.Items), nil
}

type apiResponse struct {
	Items []record `json:"items"`
}

type record struct {
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}

func convertRecords(records []record) []answer.Message {
	out := make([]answer.Message, 0, len(records))
	for _, rec := range records {
		if rec.Message == "" {
			continue
		}
		out = append(out, answer.Message{
			Speaker: rec.UserName,
			Text:    rec.Message,
		})
	}
	return out
}
