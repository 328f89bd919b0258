// Package config loads tagpulse configuration from the environment.
//
// Credentials come from the environment (optionally seeded from a .env file),
// matching how the Browserbase dashboard hands them out. Each missing
// required value is a fatal configuration error reported before any browser
// session is opened.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIKey    = "BROWSERBASE_API_KEY"
	EnvProjectID = "BROWSERBASE_PROJECT_ID"
	EnvContextID = "BROWSERBASE_CONTEXT_ID"
)

// Defaults for the run parameters not covered by environment variables.
const (
	DefaultHashtag      = "Tariffs"
	DefaultLoginTimeout = 25 * time.Second
	DefaultTopThemes    = 2
)

// Config holds all settings for a single run.
type Config struct {
	// Browserbase credentials. APIKey and ProjectID are required;
	// ContextID is created via the API when empty.
	APIKey    string
	ProjectID string
	ContextID string

	// Run parameters, set from CLI flags.
	Hashtag      string
	LoginTimeout time.Duration
	TopThemes    int
	OutDir       string
	ThemesFile   string
	ArchivePath  string
}

// MissingVarError reports a required environment variable that is not set.
type MissingVarError struct {
	Name string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("[CONFIG] Missing %s. Put it in .env", e.Name)
}

// Load reads configuration from the environment, seeding it from a .env file
// if one exists in the working directory. It returns a MissingVarError for
// the first required variable that is absent.
func Load() (*Config, error) {
	// Best effort; a missing .env file just means the variables must
	// already be exported.
	_ = godotenv.Load()

	cfg := &Config{
		ContextID:    os.Getenv(EnvContextID),
		Hashtag:      DefaultHashtag,
		LoginTimeout: DefaultLoginTimeout,
		TopThemes:    DefaultTopThemes,
		OutDir:       ".",
	}

	var err error
	if cfg.APIKey, err = must(EnvAPIKey); err != nil {
		return nil, err
	}
	if cfg.ProjectID, err = must(EnvProjectID); err != nil {
		return nil, err
	}

	return cfg, nil
}

// must returns the value of a required environment variable.
func must(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", &MissingVarError{Name: name}
	}
	return v, nil
}
