package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes messages to a directory instead of relaying them.
// Each message produces <timestamp>_<tag-or-subject>.html, .txt and .json files.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a sender that writes into dir, creating it on demand.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devMetadata struct {
	Timestamp string   `json:"timestamp"`
	From      string   `json:"from"`
	To        []string `json:"to"`
	ReplyTo   string   `json:"reply_to,omitempty"`
	Subject   string   `json:"subject"`
	Tag       string   `json:"tag,omitempty"`
}

// Send implements Sender.
func (d *DevSender) Send(ctx context.Context, msg Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	base := filepath.Join(d.dir, fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000000"), sanitizeFilename(identifier)))

	meta, err := json.MarshalIndent(devMetadata{
		Timestamp: now.Format(time.RFC3339),
		From:      msg.From,
		To:        msg.To,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	for ext, data := range map[string][]byte{
		".html": []byte(msg.HTML),
		".txt":  []byte(msg.Text),
		".json": meta,
	} {
		if err := os.WriteFile(base+ext, data, 0o644); err != nil {
			return fmt.Errorf("%w: failed to write %s file: %v", ErrFailedToSendEmail, ext, err)
		}
	}

	return nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename turns s into a short, lower-case, filesystem-safe name.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
