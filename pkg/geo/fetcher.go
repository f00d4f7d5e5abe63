package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patkim97/folio/pkg/requestid"
)

// LookupPath is the server route answering geo lookups.
const LookupPath = "/api/locale"

// Fetcher retrieves the geo signal for the current visitor.
type Fetcher interface {
	Fetch(ctx context.Context) (Lookup, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (Lookup, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) (Lookup, error) {
	return f(ctx)
}

// HTTPFetcher queries the lookup endpoint of a folio server.
type HTTPFetcher struct {
	endpoint string
	client   *http.Client
}

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// NewHTTPFetcher creates a fetcher for the server at baseURL, e.g. "https://example.com".
func NewHTTPFetcher(baseURL string, opts ...FetcherOption) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	f := &HTTPFetcher{
		endpoint: u.JoinPath(LookupPath).String(),
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch implements Fetcher. The request is sent with Cache-Control: no-store.
// Non-2xx responses, transport failures and undecodable bodies are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context) (Lookup, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return Lookup{}, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")
	requestid.Propagate(ctx, req)

	resp, err := f.client.Do(req)
	if err != nil {
		return Lookup{}, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Lookup{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var payload struct {
		Country         *string `json:"country"`
		IsKoreanCountry *bool   `json:"isKoreanCountry"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload); err != nil {
		return Lookup{}, errors.Join(ErrMalformedBody, err)
	}
	if payload.IsKoreanCountry == nil {
		return Lookup{}, fmt.Errorf("%w: missing isKoreanCountry", ErrMalformedBody)
	}

	l := Lookup{IsKoreanCountry: *payload.IsKoreanCountry}
	if payload.Country != nil {
		l.Country = *payload.Country
	}
	return l, nil
}
