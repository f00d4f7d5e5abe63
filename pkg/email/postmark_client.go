package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkClient sends mail through Postmark's transactional API.
type PostmarkClient struct {
	client *postmark.Client
}

// NewPostmarkClient creates a Postmark-backed sender. Both tokens are required.
func NewPostmarkClient(serverToken, accountToken string) (*PostmarkClient, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrInvalidConfig)
	}
	if accountToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_ACCOUNT_TOKEN is required", ErrInvalidConfig)
	}

	return &PostmarkClient{client: postmark.NewClient(serverToken, accountToken)}, nil
}

// Send implements Sender. Postmark accepts a single To header, so recipients
// are joined with commas. Tracking is off: the recipient is the site owner.
func (c *PostmarkClient) Send(ctx context.Context, msg Email) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	to := msg.To[0]
	for _, rcpt := range msg.To[1:] {
		to += ", " + rcpt
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       to,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		Tag:      msg.Tag,
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return &UpstreamError{
			Provider: "Postmark",
			Body:     fmt.Sprintf("%d - %s", resp.ErrorCode, resp.Message),
		}
	}
	return nil
}
