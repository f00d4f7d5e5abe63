package detector_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patkim97/folio/pkg/detector"
	"github.com/patkim97/folio/pkg/i18n"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		signals detector.Signals
		want    i18n.Locale
	}{
		{
			name:    "korean tag first",
			signals: detector.Signals{Languages: []string{"ko-KR", "en-US"}, Timezone: "America/New_York"},
			want:    i18n.KR,
		},
		{
			name:    "korean tag later in list",
			signals: detector.Signals{Languages: []string{"en-US", "ko"}},
			want:    i18n.KR,
		},
		{
			name:    "seoul timezone without korean tag",
			signals: detector.Signals{Languages: []string{"en-US"}, Timezone: "Asia/Seoul"},
			want:    i18n.KR,
		},
		{
			name:    "no matching signal",
			signals: detector.Signals{Languages: []string{"en-US"}, Timezone: "Europe/Berlin"},
			want:    i18n.EN,
		},
		{
			name:    "empty signals",
			signals: detector.Signals{},
			want:    i18n.EN,
		},
		{
			name:    "posix locale",
			signals: detector.Signals{Languages: []string{"ko_KR.UTF-8"}},
			want:    i18n.KR,
		},
		{
			name:    "upper case tag",
			signals: detector.Signals{Languages: []string{"KO"}},
			want:    i18n.KR,
		},
		{
			name:    "region alone is not a language",
			signals: detector.Signals{Languages: []string{"en-KR"}},
			want:    i18n.EN,
		},
		{
			name:    "other asian timezone",
			signals: detector.Signals{Timezone: "Asia/Tokyo"},
			want:    i18n.EN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detector.Detect(tt.signals))
		})
	}
}

func TestIsKoreanTag(t *testing.T) {
	t.Parallel()

	for tag, want := range map[string]bool{
		"ko":          true,
		"ko-KR":       true,
		"ko-Kore-KR":  true,
		"ko_KR.UTF-8": true,
		"ko_KR@euro":  true,
		" ko ":        true,
		"en":          false,
		"ja-JP":       false,
		"":            false,
		"x-klingon":   false,
	} {
		assert.Equal(t, want, detector.IsKoreanTag(tag), tag)
	}
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "en;q=0.4, ko-KR;q=0.9")
	r.Header.Set("Time-Zone", "Asia/Seoul")

	s := detector.FromRequest(r)
	assert.Equal(t, []string{"ko-kr", "en"}, s.Languages)
	assert.Equal(t, "Asia/Seoul", s.Timezone)
	assert.Equal(t, i18n.KR, detector.Detect(s))

	empty := detector.FromRequest(httptest.NewRequest("GET", "/", nil))
	assert.Empty(t, empty.Languages)
	assert.Equal(t, i18n.EN, detector.Detect(empty))
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "ko_KR.UTF-8")
	t.Setenv("TZ", "Asia/Seoul")

	s := detector.FromEnvironment()
	assert.Equal(t, "Asia/Seoul", s.Timezone)
	assert.NotEmpty(t, s.Languages)
	assert.Equal(t, i18n.KR, detector.Detect(s))
}

func TestLocalTimezone(t *testing.T) {
	t.Setenv("TZ", ":Europe/Berlin")
	assert.Equal(t, "Europe/Berlin", detector.LocalTimezone())
}
