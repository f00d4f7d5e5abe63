package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed value per configuration type.
type configCache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	globalCache = &configCache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// LoadEnvFiles loads variables from the given dotenv files without overriding
// variables already present in the process environment. Missing files are an
// error; with no arguments ".env" is tried and silently skipped when absent.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load fills v from environment variables according to its `env` tags.
// The optional .env file in the working directory is read on first use.
// Each configuration type is parsed once; later calls receive a copy of the
// cached value.
//
//	type EmailConfig struct {
//		APIKey string `env:"RESEND_API_KEY"`
//		To     string `env:"CONTACT_TO_EMAIL" envDefault:"patkim97@gmail.com"`
//	}
//
//	var cfg EmailConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = LoadEnvFiles()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	parsed, err := Parse[T]()
	if err != nil {
		return err
	}

	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// Parse reads T from the current environment without caching.
func Parse[T any]() (T, error) {
	var v T
	if err := env.Parse(&v); err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
