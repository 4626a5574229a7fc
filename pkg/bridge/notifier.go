package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Notifier posts messages to a chat incoming webhook.
type Notifier struct {
	httpClient *http.Client
	webhookURL string
}

// NewNotifier creates a Notifier for the given incoming-webhook URL.
func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		httpClient: &http.Client{},
		webhookURL: webhookURL,
	}
}

// message is the webhook payload.
type message struct {
	Text string `json:"text"`
}

// Post delivers one message. A non-2xx webhook response is an error; there
// are no retries.
func (n *Notifier) Post(ctx context.Context, text string) error {
	body, err := json.Marshal(message{Text: text})
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
