package commands

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patkim97/folio/modules"
	modcontact "github.com/patkim97/folio/modules/contact"
	modlocale "github.com/patkim97/folio/modules/locale"
	"github.com/patkim97/folio/pkg/contact"
	"github.com/patkim97/folio/pkg/email"
	"github.com/patkim97/folio/pkg/i18n"
	"github.com/patkim97/folio/pkg/preference"
)

// englishHost pins the OS signals to an English, non-Seoul machine and
// points the profile store at a temp dir.
func englishHost(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LANGUAGE", "en_US")
	t.Setenv("LC_ALL", "en_US.UTF-8")
	t.Setenv("LC_MESSAGES", "en_US.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	t.Setenv("TZ", "UTC")
}

type outbox struct {
	mu   sync.Mutex
	sent []email.Email
}

func (o *outbox) Send(_ context.Context, e email.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, e)
	return nil
}

func (o *outbox) Sent() []email.Email {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]email.Email(nil), o.sent...)
}

// koreanVisitorSite serves the folio API as seen from Korea and records
// relayed mail.
func koreanVisitorSite(t *testing.T, box *outbox) *httptest.Server {
	t.Helper()

	relay, err := contact.NewRelay(box)
	require.NoError(t, err)

	router := modules.Router(modules.RouterOptions{
		Contact: modcontact.NewService(relay),
		Locale:  modlocale.NewService(),
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Header.Set("CF-IPCountry", "KR")
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runFolio(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func storedPreference(t *testing.T, profile string) (i18n.Locale, error) {
	t.Helper()
	fs, err := preference.NewProfileFileStore(profile)
	require.NoError(t, err)
	return fs.Get(context.Background())
}

func TestLocale_GeoSwitchesToKorean(t *testing.T) {
	englishHost(t)
	box := &outbox{}
	srv := koreanVisitorSite(t, box)

	out, err := runFolio(t, "--server", srv.URL, "--profile", "visitor", "locale")
	require.NoError(t, err)
	assert.Contains(t, out, "initial: en (detector)")
	assert.Contains(t, out, "country: KR")
	assert.Contains(t, out, "locale:  kr (geo)")
	assert.Contains(t, out, "lang:    ko")

	_, err = storedPreference(t, "visitor")
	assert.ErrorIs(t, err, preference.ErrNotFound)
}

func TestToggle_FlipsTheGeoSettledLocale(t *testing.T) {
	englishHost(t)
	box := &outbox{}
	srv := koreanVisitorSite(t, box)

	// The visitor sees kr after the geo switch; toggling must pick en.
	out, err := runFolio(t, "--server", srv.URL, "--profile", "visitor", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "locale: en\n", out)

	stored, err := storedPreference(t, "visitor")
	require.NoError(t, err)
	assert.Equal(t, i18n.EN, stored)

	// The explicit choice now wins over the geo signal.
	out, err = runFolio(t, "--server", srv.URL, "--profile", "visitor", "locale")
	require.NoError(t, err)
	assert.Contains(t, out, "locale:  en (preference)")
}

func TestToggle_WithoutServerFlipsDetectedLocale(t *testing.T) {
	englishHost(t)

	out, err := runFolio(t, "--profile", "offline", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "locale: kr\n", out)

	stored, err := storedPreference(t, "offline")
	require.NoError(t, err)
	assert.Equal(t, i18n.KR, stored)
}

func TestSend_UsesGeoSettledLocaleForCopy(t *testing.T) {
	englishHost(t)
	box := &outbox{}
	srv := koreanVisitorSite(t, box)

	out, err := runFolio(t, "--server", srv.URL, "--profile", "visitor", "send",
		"--name", " Ada ", "--email", "ada@example.com", "--subject", "Hello", "-m", "Hi there")
	require.NoError(t, err)
	assert.Equal(t, "전송 완료되었습니다. 빠르게 확인 후 답장드릴게요.\n", out)

	sent := box.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "[Portfolio Contact] Hello", sent[0].Subject)
	assert.Equal(t, "ada@example.com", sent[0].ReplyTo)
}

func TestSend_RequiresServer(t *testing.T) {
	englishHost(t)

	_, err := runFolio(t, "--profile", "visitor", "send", "--name", "Ada")
	assert.ErrorContains(t, err, "--server")
}
