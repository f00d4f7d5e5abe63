package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// FSAdapter loads every supported file from one directory of an fs.FS,
// typically an embed.FS compiled into the binary.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter instance.
// Returns nil if parser or fsys is nil, or dir is empty.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface.
// Files for the same language are merged; later files win on key conflicts.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}

	all := make(map[string]map[string]any)
	var errs []error
	processed := false

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := path.Ext(entry.Name())
		if ext == "" || !a.parser.SupportsFileExtension(ext) {
			continue
		}

		if err := a.processFile(ctx, path.Join(a.dir, entry.Name()), all); err != nil {
			errs = append(errs, err)
			continue
		}
		processed = true
	}

	if !processed {
		errs = append(errs, fmt.Errorf("no valid translation files found in directory '%s'", a.dir))
		return nil, errors.Join(errs...)
	}

	return all, nil
}

func (a *FSAdapter) processFile(ctx context.Context, filePath string, all map[string]map[string]any) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingEmbeddedFileCancelled, err)
	}

	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadEmbeddedFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("translation file '%s' is empty", filePath)
	}

	parsed, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseEmbeddedFile, err)
	}

	for lang, translations := range parsed {
		if all[lang] == nil {
			all[lang] = make(map[string]any)
		}
		maps.Copy(all[lang], translations)
	}

	return nil
}
