package i18n

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// Translator looks up localized copy keyed by Locale.
type Translator struct {
	translations  map[string]map[string]any
	defaultLocale Locale
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	mu            sync.RWMutex
	adapter       TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, fmt.Errorf("adapter is nil")
	}

	t := &Translator{
		defaultLocale: DefaultLocale,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// NewDefaultTranslator loads the site copy compiled into the binary.
func NewDefaultTranslator(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(NewYAMLParser(), translationsFS, "translations"), options...)
}

// validateTranslations checks if the translations map has a valid structure.
func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "contact.modal.error" will traverse m["contact"] then ["modal"] then ["error"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// lookup resolves a string translation, falling back to the default locale
// when the requested one has no entry for key.
func (t *Translator) lookup(locale Locale, key string) (string, bool) {
	for _, l := range []Locale{locale, t.defaultLocale} {
		langMap, ok := t.translations[string(l)]
		if !ok {
			continue
		}
		val, ok := t.getTranslation(langMap, key)
		if !ok {
			continue
		}
		if s, ok := val.(string); ok {
			return s, true
		}
		if s, ok := val.(fmt.Stringer); ok {
			return s.String(), true
		}
	}
	return "", false
}

// buildParams converts a slice of strings (expected as key, value, key, value, …)
// into a map. If the number of arguments is odd, the last one is ignored.
func (t *Translator) buildParams(args []string) map[string]string {
	params := make(map[string]string)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

func (t *Translator) sprintf(tmpl string, args []string) string {
	return t.namedSprintf(tmpl, t.buildParams(args))
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf performs substitution of named placeholders in the form "%{key}".
// Unknown placeholders are kept as is.
func (t *Translator) namedSprintf(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// T translates a key for the given locale.
// Additional arguments are key-value pairs substituted into "%{key}" placeholders.
//
// When the locale has no entry the default locale is tried. If that fails as well
// and FallbackToKey is true the key itself is returned, otherwise an empty string.
//
// Example:
//
//	msg := translator.T(i18n.KR, "contact.modal.send")
//	// Returns: "전송하기"
func (t *Translator) T(locale Locale, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.lookup(locale, key); ok {
		return t.sprintf(s, args)
	}

	if t.logMissing {
		t.logger.Warn("translation not found", "locale", string(locale), "key", key)
	}
	if t.fallbackToKey {
		return t.sprintf(key, args)
	}
	return ""
}
