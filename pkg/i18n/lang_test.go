package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patkim97/folio/pkg/i18n"
)

func TestAcceptLanguageTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected []string
	}{
		{name: "empty header", header: "", expected: nil},
		{name: "single tag", header: "ko-KR", expected: []string{"ko-kr"}},
		{
			name:     "quality values respected",
			header:   "en;q=0.5,ko;q=0.9,de;q=0.8",
			expected: []string{"ko", "de", "en"},
		},
		{
			name:     "equal weights keep client order",
			header:   "en-US,en,ko",
			expected: []string{"en-us", "en", "ko"},
		},
		{
			name:     "zero weight and wildcard dropped",
			header:   "ko;q=0,*;q=0.1,en",
			expected: []string{"en"},
		},
		{
			name:     "malformed quality defaults to one",
			header:   "fr;q=abc,ko;q=0.4",
			expected: []string{"fr", "ko"},
		},
		{
			name:     "blank entries skipped",
			header:   " , ko , ",
			expected: []string{"ko"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.AcceptLanguageTags(tt.header))
		})
	}
}
