package i18n

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads translation files whose top-level keys are locale codes:
//
//	en:
//	  contact:
//	    modal:
//	      sending: Sending...
//	kr:
//	  contact:
//	    modal:
//	      sending: 전송 중...
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes content. A document with no locale sections is an error.
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParseCancelled, err)
	}

	var byLocale map[string]map[string]any
	if err := yaml.Unmarshal([]byte(content), &byLocale); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(byLocale) == 0 {
		return nil, ErrNoTranslations
	}
	return byLocale, nil
}

// SupportsFileExtension accepts "yaml" and "yml", with or without the dot.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		return true
	}
	return false
}
