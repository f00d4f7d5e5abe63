package email

import "time"

// Provider names a relay backend.
type Provider string

const (
	ProviderResend   Provider = "resend"
	ProviderPostmark Provider = "postmark"
	ProviderDev      Provider = "dev"
)

const (
	// DefaultResendAPIURL is the base URL of the Resend API.
	DefaultResendAPIURL = "https://api.resend.com"
	// DefaultFrom is the sender identity used when CONTACT_FROM_EMAIL is empty.
	DefaultFrom = "Portfolio Contact <onboarding@resend.dev>"
	// DefaultTo is the inbox used when CONTACT_TO_EMAIL is empty.
	DefaultTo = "patkim97@gmail.com"
)

// Config holds relay configuration. The Resend key is deliberately optional
// at load time: a missing key fails each send with ErrMissingAPIKey instead of
// preventing startup.
type Config struct {
	Provider             Provider      `env:"EMAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey         string        `env:"RESEND_API_KEY"`
	ResendAPIURL         string        `env:"RESEND_API_URL" envDefault:"https://api.resend.com"`
	FromEmail            string        `env:"CONTACT_FROM_EMAIL"`
	ToEmail              string        `env:"CONTACT_TO_EMAIL"`
	PostmarkServerToken  string        `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string        `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevDir               string        `env:"EMAIL_DEV_DIR" envDefault:"tmp/emails"`
	Timeout              time.Duration `env:"EMAIL_TIMEOUT" envDefault:"15s"`
}

// From returns the configured sender identity or DefaultFrom.
func (c Config) From() string {
	if c.FromEmail == "" {
		return DefaultFrom
	}
	return c.FromEmail
}

// To returns the configured recipient or DefaultTo.
func (c Config) To() string {
	if c.ToEmail == "" {
		return DefaultTo
	}
	return c.ToEmail
}
