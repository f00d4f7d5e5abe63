package logger

import "log/slog"

// Attribute helpers keep key names consistent across packages. Helpers for
// optional values return an empty Attr, which slog drops.

// Error records err under "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr { return slog.String("component", name) }

func Event(name string) slog.Attr { return slog.String("event", name) }

// Locale records a display locale, "en" or "kr".
func Locale(l string) slog.Attr { return slog.String("locale", l) }

// Country records a two-letter country code under "country".
func Country(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("country", code)
}

// Provider records the mail relay, e.g. "resend".
func Provider(name string) slog.Attr { return slog.String("provider", name) }

func Status(code int) slog.Attr { return slog.Int("status", code) }
