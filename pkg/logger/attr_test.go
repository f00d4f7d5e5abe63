package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patkim97/folio/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"error", logger.Error(boom), "error", boom},
		{"request id", logger.RequestID("abc"), "request_id", "abc"},
		{"component", logger.Component("cascade"), "component", "cascade"},
		{"event", logger.Event("toggle"), "event", "toggle"},
		{"locale", logger.Locale("kr"), "locale", "kr"},
		{"country", logger.Country("KR"), "country", "KR"},
		{"provider", logger.Provider("resend"), "provider", "resend"},
		{"status", logger.Status(502), "status", int64(502)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestAttrs_EmptyValuesAreDropped(t *testing.T) {
	t.Parallel()

	for _, attr := range []slog.Attr{
		logger.Error(nil),
		logger.RequestID(""),
		logger.Country(""),
	} {
		assert.True(t, attr.Equal(slog.Attr{}))
	}
}
