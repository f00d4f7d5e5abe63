// Package contact validates, renders and relays visitor messages from the
// portfolio contact form.
//
// The same Validate function backs the HTTP endpoint and the client-side
// submission flow, so both sides agree on what a deliverable message is:
//
//	msg := contact.Message{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Message: "Hello"}.Normalize()
//	if err := contact.Validate(msg); err != nil {
//		// ErrMissingFields or ErrInvalidEmail
//	}
//
// Relay renders the message into HTML and plain-text bodies and hands it to an
// email.Sender. Nothing is stored; each Deliver call is independent.
package contact
