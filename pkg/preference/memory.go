package preference

import (
	"context"
	"sync"

	"github.com/patkim97/folio/pkg/i18n"
)

// MemoryStore keeps the preference in process memory.
type MemoryStore struct {
	mu  sync.RWMutex
	raw string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWithValue returns a store pre-filled with a raw value, as if it
// had been written by an earlier session. The value is validated on Get.
func NewMemoryStoreWithValue(raw string) *MemoryStore {
	return &MemoryStore{raw: raw}
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context) (i18n.Locale, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return decode(s.raw)
}

// Set implements Store.
func (s *MemoryStore) Set(ctx context.Context, locale i18n.Locale) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(locale); err != nil {
		return err
	}

	s.mu.Lock()
	s.raw = string(locale)
	s.mu.Unlock()
	return nil
}
