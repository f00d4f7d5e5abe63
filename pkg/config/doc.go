// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with github.com/caarlos0/env tags. A .env
// file in the working directory, when present, is read once through
// github.com/joho/godotenv before the first Load; variables already set in the
// environment win.
//
// Load caches one value per type, so packages can call it freely. Parse skips
// the cache and is meant for tests and tools that change the environment
// between reads.
package config
