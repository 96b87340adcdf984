package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv populates the environment from .env, or from ENV_FILE when set.
// Variables already present in the environment win. A missing file is not
// fatal; callers log the returned error once a logger exists.
func LoadDotEnv() error {
	files := []string{}
	if path := os.Getenv("ENV_FILE"); path != "" {
		files = append(files, path)
	}
	return godotenv.Load(files...)
}
