package i18n

import "errors"

var (
	ErrParseCancelled    = errors.New("i18n: parsing cancelled")
	ErrFailedToParseYAML = errors.New("i18n: failed to parse YAML content")
	ErrNoTranslations    = errors.New("i18n: no locale sections found")

	ErrLoadingTranslationsCancelled  = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadEmbeddedDirectory = errors.New("i18n: failed to read translation directory")
	ErrLoadingEmbeddedFileCancelled  = errors.New("i18n: loading translation file cancelled")
	ErrFailedToReadEmbeddedFile      = errors.New("i18n: failed to read translation file")
	ErrFailedToParseEmbeddedFile     = errors.New("i18n: failed to parse translation file")
)
