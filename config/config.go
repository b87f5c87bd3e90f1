package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of an environment variable, loading .env once.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

// ConfigDefault returns the env value or a fallback when the key is unset.
func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
