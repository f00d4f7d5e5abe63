package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/patkim97/folio/pkg/email/templates"
	"github.com/patkim97/folio/pkg/sanitizer"
)

// Heading opens both bodies.
const Heading = "New message from portfolio website"

// Rendered holds both bodies of the notification email.
type Rendered struct {
	HTML string
	Text string
}

// Render builds the notification bodies. Every user-supplied value in the
// HTML body is escaped and message line breaks become <br />; the text body
// carries the values unescaped.
func Render(ctx context.Context, m Message, md Metadata) (Rendered, error) {
	md = md.orUnknown()

	html, err := templates.Render(ctx, notificationHTML(m, md))
	if err != nil {
		return Rendered{}, errors.Join(ErrRender, err)
	}

	return Rendered{HTML: html, Text: notificationText(m, md)}, nil
}

func notificationHTML(m Message, md Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e := sanitizer.EscapeHTML
		_, err := fmt.Fprintf(w, `
<h2>%s</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong><br />%s</p>
<hr />
<p><strong>IP:</strong> %s</p>
<p><strong>User Agent:</strong> %s</p>
`,
			Heading,
			e(m.Name),
			e(m.Email),
			e(m.Subject),
			sanitizer.NewlinesToBreaks(e(m.Message)),
			e(md.IP),
			e(md.UserAgent),
		)
		return err
	})
}

func notificationText(m Message, md Metadata) string {
	var b strings.Builder
	b.WriteString(Heading + "\n\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nSubject: %s\n\n", m.Name, m.Email, m.Subject)
	fmt.Fprintf(&b, "Message:\n%s\n\n", m.Message)
	fmt.Fprintf(&b, "IP: %s\nUser Agent: %s", md.IP, md.UserAgent)
	return b.String()
}
