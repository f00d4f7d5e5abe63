package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxUpstreamBody bounds how much of an error response is kept.
const maxUpstreamBody = 64 << 10

// ResendClient sends mail through the Resend HTTP API.
type ResendClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// ResendOption configures a ResendClient.
type ResendOption func(*ResendClient)

// WithResendHTTPClient replaces the default HTTP client.
func WithResendHTTPClient(c *http.Client) ResendOption {
	return func(r *ResendClient) {
		if c != nil {
			r.client = c
		}
	}
}

// WithResendBaseURL overrides the API base URL.
func WithResendBaseURL(u string) ResendOption {
	return func(r *ResendClient) {
		if u != "" {
			r.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// NewResendClient creates a client for apiKey. An empty key is accepted;
// every Send then fails with ErrMissingAPIKey without touching the network.
func NewResendClient(apiKey string, opts ...ResendOption) *ResendClient {
	r := &ResendClient{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: DefaultResendAPIURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	ReplyTo string   `json:"reply_to,omitempty"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// Send implements Sender with one POST to {base}/emails.
// A non-2xx answer yields *UpstreamError carrying the response body verbatim.
func (r *ResendClient) Send(ctx context.Context, msg Email) error {
	if r.apiKey == "" {
		return ErrMissingAPIKey
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(resendRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		ReplyTo: msg.ReplyTo,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
		return &UpstreamError{Provider: "Resend", StatusCode: resp.StatusCode, Body: string(text)}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
