package email

import (
	"fmt"
	"net/http"
)

// NewSender builds the Sender selected by cfg.Provider.
// The Resend sender is always constructed, even without an API key.
func NewSender(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case ProviderResend, "":
		opts := []ResendOption{WithResendBaseURL(cfg.ResendAPIURL)}
		if cfg.Timeout > 0 {
			opts = append(opts, WithResendHTTPClient(&http.Client{Timeout: cfg.Timeout}))
		}
		return NewResendClient(cfg.ResendAPIKey, opts...), nil
	case ProviderPostmark:
		return NewPostmarkClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	case ProviderDev:
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
