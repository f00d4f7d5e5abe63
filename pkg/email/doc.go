// Package email relays rendered messages to an external mail service.
//
// Three Sender implementations exist:
//
//   - ResendClient posts to the Resend API. It is the production relay.
//   - PostmarkClient uses Postmark through github.com/mrz1836/postmark.
//   - DevSender writes each message to disk for local work.
//
// NewSender picks one from Config, which is loaded from the environment:
//
//	var cfg email.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	sender, err := email.NewSender(cfg)
//
// A relay that answers with a failure yields *UpstreamError, whose message is
// "<Provider> request failed: <relay text>". A missing Resend key yields
// ErrMissingAPIKey before any request is made.
package email
