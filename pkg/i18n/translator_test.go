package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patkim97/folio/pkg/i18n"
)

const testCopy = `
en:
  hello: Hello
  welcome: "Welcome, %{name}!"
  only_en: English only
  nested:
    greeting: Nested greeting
kr:
  hello: 안녕하세요
  welcome: "%{name}님, 환영합니다!"
`

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	fsys := fstest.MapFS{"copy/site.yaml": {Data: []byte(testCopy)}}
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "copy"), opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator_NilAdapter(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, tr)
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	tests := []struct {
		name   string
		locale i18n.Locale
		key    string
		args   []string
		want   string
	}{
		{"english", i18n.EN, "hello", nil, "Hello"},
		{"korean", i18n.KR, "hello", nil, "안녕하세요"},
		{"named param", i18n.EN, "welcome", []string{"name", "Ann"}, "Welcome, Ann!"},
		{"named param korean", i18n.KR, "welcome", []string{"name", "Ann"}, "Ann님, 환영합니다!"},
		{"nested key", i18n.EN, "nested.greeting", nil, "Nested greeting"},
		{"falls back to default locale", i18n.KR, "only_en", nil, "English only"},
		{"falls back to key", i18n.EN, "missing.key", nil, "missing.key"},
		{"unknown placeholder kept", i18n.EN, "welcome", []string{"other", "x"}, "Welcome, %{name}!"},
		{"map value is not a string", i18n.EN, "nested", nil, "nested"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key, tt.args...))
		})
	}
}

func TestTranslator_NoFallbackToKey(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t, i18n.WithFallbackToKey(false))
	assert.Empty(t, tr.T(i18n.EN, "missing"))
	assert.Equal(t, "Hello", tr.T(i18n.EN, "hello"))
}

func TestNewDefaultTranslator(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewDefaultTranslator(context.Background(), i18n.WithFallbackToKey(false))
	require.NoError(t, err)

	assert.Equal(t, "Failed to send. Please try again in a moment.", tr.T(i18n.EN, "contact.modal.error"))
	assert.Equal(t, "전송에 실패했습니다. 잠시 후 다시 시도해주세요.", tr.T(i18n.KR, "contact.modal.error"))

	// Korean copy must not silently fall back to English.
	for _, key := range []string{
		"contact.modal.send",
		"contact.modal.sending",
		"contact.modal.success",
		"contact.modal.close",
		"locale.toggle",
	} {
		en, kr := tr.T(i18n.EN, key), tr.T(i18n.KR, key)
		assert.NotEmpty(t, en, key)
		assert.NotEmpty(t, kr, key)
		assert.NotEqual(t, en, kr, key)
	}
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges files", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"copy/a.yaml":    {Data: []byte("en:\n  a: A\n")},
			"copy/b.yml":     {Data: []byte("en:\n  b: B\nkr:\n  b: 비\n")},
			"copy/notes.txt": {Data: []byte("ignored")},
		}

		got, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "copy").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "A", got["en"]["a"])
		assert.Equal(t, "B", got["en"]["b"])
		assert.Equal(t, "비", got["kr"]["b"])
	})

	t.Run("no valid files", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"copy/broken.yaml": {Data: []byte("en: [unterminated")},
		}

		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "copy").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseEmbeddedFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "copy").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingTranslationsCancelled)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i18n.NewFSAdapter(nil, fstest.MapFS{}, "copy"))
		assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, ""))
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	p := i18n.NewYAMLParser()

	got, err := p.Parse(context.Background(), "en:\n  contact:\n    title: Contact\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Contact"}, got["en"]["contact"])

	_, err = p.Parse(context.Background(), "")
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)

	_, err = p.Parse(context.Background(), "en: just a string\n")
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Parse(ctx, "en:\n  a: b\n")
	assert.ErrorIs(t, err, i18n.ErrParseCancelled)

	for ext, want := range map[string]bool{".yaml": true, "YML": true, ".json": false, "": false} {
		assert.Equal(t, want, p.SupportsFileExtension(ext), ext)
	}
}
