package modules_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patkim97/folio/modules"
	"github.com/patkim97/folio/modules/locale"
	"github.com/patkim97/folio/pkg/i18n"
	"github.com/patkim97/folio/pkg/requestid"
)

type mountFunc func() http.Handler

func (f mountFunc) Handle() http.Handler { return f() }

func serve(h http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestRouter(t *testing.T) {
	t.Parallel()

	var seenLocale i18n.Locale
	contact := mountFunc(func() http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenLocale = i18n.GetLocale(r.Context())
			w.WriteHeader(http.StatusAccepted)
		})
	})

	r := modules.Router(modules.RouterOptions{
		Contact: contact,
		Locale:  locale.NewService(),
	})

	w := serve(r, http.MethodPost, "/api/contact", map[string]string{"Accept-Language": "ko-KR,ko;q=0.9"})
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestid.Header))
	assert.Equal(t, i18n.KR, seenLocale)

	w = serve(r, http.MethodGet, "/api/locale", map[string]string{"CF-IPCountry": "KR"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"country":"KR","isKoreanCountry":true}`, w.Body.String())

	w = serve(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())

	w = serve(r, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found."}`, w.Body.String())
}

func TestRouter_Readiness(t *testing.T) {
	t.Parallel()

	r := modules.Router(modules.RouterOptions{
		ReadinessChecks: []func(context.Context) error{func(context.Context) error { return errors.New("down") }},
	})

	w := serve(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(r, http.MethodGet, "/api/contact", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RecoversPanics(t *testing.T) {
	t.Parallel()

	r := modules.Router(modules.RouterOptions{
		Locale: mountFunc(func() http.Handler {
			return http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
		}),
	})

	w := serve(r, http.MethodGet, "/api/locale", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
