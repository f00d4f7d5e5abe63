package submission_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patkim97/folio/modules"
	modcontact "github.com/patkim97/folio/modules/contact"
	"github.com/patkim97/folio/pkg/contact"
	"github.com/patkim97/folio/pkg/email"
	"github.com/patkim97/folio/pkg/i18n"
	"github.com/patkim97/folio/pkg/submission"
)

type countingTransport struct {
	calls atomic.Int32
	err   error
	last  contact.Message
	mu    sync.Mutex
}

func (c *countingTransport) Send(_ context.Context, msg contact.Message) error {
	c.calls.Add(1)
	c.mu.Lock()
	c.last = msg
	c.mu.Unlock()
	return c.err
}

func fill(t *testing.T, f *submission.Form, m contact.Message) {
	t.Helper()
	require.NoError(t, f.SetField(submission.FieldName, m.Name))
	require.NoError(t, f.SetField(submission.FieldEmail, m.Email))
	require.NoError(t, f.SetField(submission.FieldSubject, m.Subject))
	require.NoError(t, f.SetField(submission.FieldMessage, m.Message))
}

func valid() contact.Message {
	return contact.Message{Name: "Ann", Email: "a@b.com", Subject: "Hi", Message: "Hello"}
}

func newForm(t *testing.T, tr submission.Transport, opts ...submission.Option) *submission.Form {
	t.Helper()
	f, err := submission.New(context.Background(), tr, opts...)
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := submission.New(context.Background(), nil)
	assert.ErrorIs(t, err, submission.ErrNilTransport)

	f := newForm(t, &countingTransport{})
	assert.Equal(t, submission.StateIdle, f.State())
	assert.Equal(t, submission.Outcome{State: submission.StateIdle}, f.Outcome())
}

func TestSubmit_EmptyFieldNeverSends(t *testing.T) {
	t.Parallel()

	blank := map[submission.Field]func(*contact.Message){
		submission.FieldName:    func(m *contact.Message) { m.Name = "  " },
		submission.FieldEmail:   func(m *contact.Message) { m.Email = "" },
		submission.FieldSubject: func(m *contact.Message) { m.Subject = "\t" },
		submission.FieldMessage: func(m *contact.Message) { m.Message = "\n" },
	}

	for field, mutate := range blank {
		t.Run(string(field), func(t *testing.T) {
			t.Parallel()

			tr := &countingTransport{}
			f := newForm(t, tr)
			m := valid()
			mutate(&m)
			fill(t, f, m)

			out, err := f.Submit(context.Background())
			assert.ErrorIs(t, err, contact.ErrMissingFields)
			assert.Equal(t, submission.StateFailed, out.State)
			assert.Equal(t, "Failed to send. Please try again in a moment.", out.Message)
			assert.Zero(t, tr.calls.Load())
			assert.Equal(t, m, f.Fields(), "fields are kept")
		})
	}
}

func TestSubmit_InvalidEmailNeverSends(t *testing.T) {
	t.Parallel()

	tr := &countingTransport{}
	f := newForm(t, tr, submission.WithLocale(func() i18n.Locale { return i18n.KR }))
	m := valid()
	m.Email = "not-an-email"
	fill(t, f, m)

	out, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, contact.ErrInvalidEmail)
	assert.Equal(t, submission.StateFailed, out.State)
	assert.Equal(t, "전송에 실패했습니다. 잠시 후 다시 시도해주세요.", out.Message)
	assert.Zero(t, tr.calls.Load())
}

func TestSubmit_Success(t *testing.T) {
	t.Parallel()

	var transitions []string
	tr := &countingTransport{}
	f := newForm(t, tr, submission.WithListener(func(from, to submission.State) {
		transitions = append(transitions, string(from)+">"+string(to))
	}))

	m := valid()
	m.Name = "  Ann  "
	fill(t, f, m)

	out, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, submission.StateSucceeded, out.State)
	assert.Equal(t, "Message sent successfully. I will get back to you soon.", out.Message)
	assert.Equal(t, contact.Message{}, f.Fields())
	assert.Equal(t, "Ann", tr.last.Name, "fields are trimmed before sending")
	assert.Equal(t, []string{"idle>submitting", "submitting>succeeded"}, transitions)
}

func TestSubmit_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"server reason", &submission.ServerError{StatusCode: 502, Message: "Resend request failed: nope"}, "Resend request failed: nope"},
		{"server without reason", &submission.ServerError{StatusCode: 500}, "Failed to send. Please try again in a moment."},
		{"transport", errors.Join(submission.ErrTransport, errors.New("dial tcp")), "Failed to send. Please try again in a moment."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newForm(t, &countingTransport{err: tt.err})
			fill(t, f, valid())

			out, err := f.Submit(context.Background())
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, submission.StateFailed, out.State)
			assert.Equal(t, tt.wantMsg, out.Message)
			assert.Equal(t, valid(), f.Fields(), "fields are kept")
		})
	}
}

func TestSubmit_RetryAfterFailure(t *testing.T) {
	t.Parallel()

	tr := &countingTransport{err: &submission.ServerError{StatusCode: 502}}
	f := newForm(t, tr)
	fill(t, f, valid())

	_, err := f.Submit(context.Background())
	require.Error(t, err)

	tr.err = nil
	out, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, submission.StateSucceeded, out.State)
	assert.Equal(t, int32(2), tr.calls.Load())
}

func TestSubmit_InFlight(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	tr := submission.TransportFunc(func(ctx context.Context, _ contact.Message) error {
		close(entered)
		<-release
		return nil
	})

	f := newForm(t, tr)
	fill(t, f, valid())

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()
	<-entered

	out := f.Outcome()
	assert.Equal(t, submission.StateSubmitting, out.State)
	assert.Equal(t, "Sending...", out.Message)

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, submission.ErrInFlight)
	assert.ErrorIs(t, f.Open(context.Background()), submission.ErrInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, submission.StateSucceeded, f.State())
}

func TestOpen(t *testing.T) {
	t.Parallel()

	f := newForm(t, &countingTransport{})
	fill(t, f, contact.Message{Name: "Ann"})

	_, err := f.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, submission.StateFailed, f.State())

	require.NoError(t, f.Open(context.Background()))
	assert.Equal(t, submission.Outcome{State: submission.StateIdle}, f.Outcome())
	assert.Equal(t, "Ann", f.Fields().Name)

	require.NoError(t, f.Open(context.Background()), "open from idle")
}

func TestSetField_Unknown(t *testing.T) {
	t.Parallel()

	f := newForm(t, &countingTransport{})
	assert.ErrorIs(t, f.SetField("phone", "1"), submission.ErrUnknownField)
}

// The end-to-end path: form → HTTP transport → contact endpoint → relay.
func TestSubmit_AgainstEndpoint(t *testing.T) {
	t.Parallel()

	newServer := func(t *testing.T, apiKey string, relayStatus int) (*httptest.Server, *atomic.Int32) {
		t.Helper()
		var relayCalls atomic.Int32
		resend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			relayCalls.Add(1)
			w.WriteHeader(relayStatus)
			_, _ = io.WriteString(w, `{"message":"upstream says no"}`)
		}))
		t.Cleanup(resend.Close)

		relay, err := contact.NewRelay(email.NewResendClient(apiKey, email.WithResendBaseURL(resend.URL)))
		require.NoError(t, err)

		srv := httptest.NewServer(modules.Router(modules.RouterOptions{
			Contact: modcontact.NewService(relay),
		}))
		t.Cleanup(srv.Close)
		return srv, &relayCalls
	}

	t.Run("success clears fields", func(t *testing.T) {
		t.Parallel()

		srv, calls := newServer(t, "re_test", http.StatusOK)
		tr, err := submission.NewHTTPTransport(srv.URL)
		require.NoError(t, err)

		f := newForm(t, tr)
		fill(t, f, valid())
		out, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, submission.StateSucceeded, out.State)
		assert.Equal(t, contact.Message{}, f.Fields())
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("missing credential surfaces server reason", func(t *testing.T) {
		t.Parallel()

		srv, calls := newServer(t, "", http.StatusOK)
		tr, err := submission.NewHTTPTransport(srv.URL)
		require.NoError(t, err)

		f := newForm(t, tr)
		fill(t, f, valid())
		out, err := f.Submit(context.Background())

		var serverErr *submission.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
		assert.Equal(t, submission.StateFailed, out.State)
		assert.Equal(t, "Server is missing RESEND_API_KEY.", out.Message)
		assert.Zero(t, calls.Load())
	})

	t.Run("upstream rejection", func(t *testing.T) {
		t.Parallel()

		srv, _ := newServer(t, "re_test", http.StatusUnprocessableEntity)
		tr, err := submission.NewHTTPTransport(srv.URL)
		require.NoError(t, err)

		f := newForm(t, tr)
		fill(t, f, valid())
		out, _ := f.Submit(context.Background())
		assert.Equal(t, `Resend request failed: {"message":"upstream says no"}`, out.Message)
	})
}

func TestNewHTTPTransport_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := submission.NewHTTPTransport("not a url")
	assert.ErrorIs(t, err, submission.ErrTransport)
}
