package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patkim97/folio/pkg/binder"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Ignored string `json:"-"`
	Count   int    `json:"count"`
}

func bind(t *testing.T, body string) (contactRequest, error) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	var got contactRequest
	err := binder.LooseJSON()(r, &got)
	return got, err
}

func TestLooseJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    contactRequest
		wantErr bool
	}{
		{
			name: "strings bound",
			body: `{"name":"Ann","email":"ann@example.com","subject":"Hi"}`,
			want: contactRequest{Name: "Ann", Email: "ann@example.com", Subject: "Hi"},
		},
		{
			name: "non-string values ignored",
			body: `{"name":42,"email":true,"subject":{"a":1},"count":3}`,
			want: contactRequest{},
		},
		{
			name: "null and missing",
			body: `{"name":null}`,
			want: contactRequest{},
		},
		{
			name: "skipped and unknown keys",
			body: `{"-":"x","Ignored":"y","extra":"z","name":"Ann"}`,
			want: contactRequest{Name: "Ann"},
		},
		{name: "array payload", body: `["Ann"]`, want: contactRequest{}},
		{name: "null payload", body: `null`, want: contactRequest{}},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
		{name: "trailing garbage", body: `{"name":"Ann"} x`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := bind(t, tt.body)
			if tt.wantErr {
				assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLooseJSON_TooLarge(t *testing.T) {
	t.Parallel()

	body := `{"name":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
	_, err := bind(t, body)
	assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
}

func TestLooseJSON_InvalidTarget(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	var s string
	assert.ErrorIs(t, binder.LooseJSON()(r, &s), binder.ErrInvalidTarget)
	assert.ErrorIs(t, binder.LooseJSON()(r, nil), binder.ErrInvalidTarget)
}

func TestLooseJSON_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)).WithContext(ctx)
	var got contactRequest
	assert.ErrorIs(t, binder.LooseJSON()(r, &got), binder.ErrFailedToParseJSON)
}
