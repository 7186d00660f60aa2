package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv exports the variables of a dotenv file into the process
// environment so that parseEnv sees them. Variables already set in the
// environment are left untouched. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading dotenv file %s: %w", path, err)
	}

	return nil
}
