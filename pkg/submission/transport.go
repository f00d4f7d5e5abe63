package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patkim97/folio/pkg/contact"
	"github.com/patkim97/folio/pkg/requestid"
)

// ContactPath is the server route accepting submissions.
const ContactPath = "/api/contact"

// Transport delivers a validated message to the contact endpoint.
type Transport interface {
	Send(ctx context.Context, msg contact.Message) error
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, msg contact.Message) error

// Send implements Transport.
func (f TransportFunc) Send(ctx context.Context, msg contact.Message) error {
	return f(ctx, msg)
}

// HTTPTransport posts submissions to a folio server.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

// TransportOption configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		if c != nil {
			t.client = c
		}
	}
}

// NewHTTPTransport creates a transport for the server at baseURL.
func NewHTTPTransport(baseURL string, opts ...TransportOption) (*HTTPTransport, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", ErrTransport, baseURL)
	}

	t := &HTTPTransport{
		endpoint: u.JoinPath(ContactPath).String(),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Send implements Transport. A non-2xx answer yields *ServerError carrying
// the "error" field of the body when the body is JSON.
func (t *HTTPTransport) Send(ctx context.Context, msg contact.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestid.Propagate(ctx, req)

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Error string `json:"error"`
	}
	// Unparseable bodies leave the reason empty.
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return nil
}
