// Package wecom sends clip progress notifications to a WeCom group chat
// webhook.
package wecom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mwalczak/clipmark"
)

// DefaultTimeout is the default timeout for webhook requests.
const DefaultTimeout = 5 * time.Second

// Ensure Notifier implements clipmark.Notifier at compile time.
var _ clipmark.Notifier = (*Notifier)(nil)

// Notifier posts text messages to a WeCom webhook.
type Notifier struct {
	client     *http.Client
	webhookURL string
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithHTTPClient sets the HTTP client used for webhook requests.
func WithHTTPClient(client *http.Client) Option {
	return func(n *Notifier) { n.client = client }
}

// NewNotifier creates a Notifier for the given webhook URL.
func NewNotifier(webhookURL string, opts ...Option) *Notifier {
	n := &Notifier{webhookURL: webhookURL}
	for _, opt := range opts {
		opt(n)
	}
	if n.client == nil {
		n.client = &http.Client{Timeout: DefaultTimeout}
	}
	return n
}

// ClipSucceeded reports a finished clip.
func (n *Notifier) ClipSucceeded(ctx context.Context, title, url string) error {
	return n.send(ctx, fmt.Sprintf("✅ Clipped: %s\n%s", title, url))
}

// ClipFailed reports a terminal clip failure.
func (n *Notifier) ClipFailed(ctx context.Context, url string, cause error) error {
	return n.send(ctx, fmt.Sprintf("❌ Clip failed: %s\n%s", url, clipmark.ErrorMessage(cause)))
}

// message is the WeCom webhook payload shape.
type message struct {
	MsgType string `json:"msgtype"`
	Text    struct {
		Content string `json:"content"`
	} `json:"text"`
}

// response is the WeCom webhook result shape.
type response struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

func (n *Notifier) send(ctx context.Context, content string) error {
	var msg message
	msg.MsgType = "text"
	msg.Text.Content = content

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return clipmark.Errorf(clipmark.EUNAVAILABLE, "webhook request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return clipmark.Errorf(clipmark.EUNAVAILABLE, "webhook HTTP %d", resp.StatusCode)
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return clipmark.Errorf(clipmark.EINTERNAL, "malformed webhook response: %v", err)
	}
	if result.ErrCode != 0 {
		return clipmark.Errorf(clipmark.EUNAVAILABLE, "webhook error %d: %s", result.ErrCode, result.ErrMsg)
	}

	return nil
}
