package preference

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/patkim97/folio/pkg/i18n"
)

// FileStore persists the preference as a JSON document on disk:
//
//	{"portfolio-locale-preference":"kr"}
//
// The file is replaced atomically on Set.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
// Parent directories are created on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NewProfileFileStore creates a store under the user configuration directory,
// one file per profile: <config dir>/folio/<profile>/preference.json.
func NewProfileFileStore(profile string) (*FileStore, error) {
	if profile == "" {
		return nil, ErrEmptyProfile
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}

	return NewFileStore(filepath.Join(dir, "folio", profile, "preference.json")), nil
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Get implements Store. A missing or undecodable file yields ErrNotFound.
func (s *FileStore) Get(ctx context.Context) (i18n.Locale, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", errors.Join(ErrFailedToRead, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", ErrNotFound
	}

	raw, _ := doc[Key].(string)
	return decode(raw)
}

// Set implements Store.
func (s *FileStore) Set(ctx context.Context, locale i18n.Locale) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(locale); err != nil {
		return err
	}

	data, err := json.Marshal(map[string]string{Key: string(locale)})
	if err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}

	tmp, err := os.CreateTemp(dir, ".preference-*.json")
	if err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}
