package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value for key from .env, or from the process
// environment when no .env file is present.
func Config(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}
