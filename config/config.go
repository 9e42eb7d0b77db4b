// Package config is the process-wide configuration snapshot read once
// at startup, in the getEnv(key, default) idiom of the magda-api
// reference (internal/config), adapted to this service's smaller
// surface: no database, no auth, no persistence (spec.md §5, §6).
package config

import "os"

// Config holds the application's startup configuration.
type Config struct {
	Environment string
	Port        string

	// AIMusicAPIKey is the text-to-audio collaborator's credential,
	// resolved from the first present of a documented list of
	// environment variables (spec.md §6).
	AIMusicAPIKey string
	AIMusicAPIURL string

	// SentryDSN enables optional error reporting; empty disables it.
	SentryDSN string
}

// aiMusicKeyEnvVars is the documented, ordered list of environment
// variables that may carry the text-to-audio collaborator's credential.
var aiMusicKeyEnvVars = []string{
	"REPLICATE_API_TOKEN",
	"REPLICATE_API_KEY",
	"AI_MUSIC_API_KEY",
	"AI_MUSIC_API_TOKEN",
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		Port:          getEnv("PORT", "8080"),
		AIMusicAPIKey: firstPresent(aiMusicKeyEnvVars),
		AIMusicAPIURL: getEnv("AI_MUSIC_API_URL", "https://api.replicate.com/v1/predictions"),
		SentryDSN:     getEnv("SENTRY_DSN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func firstPresent(names []string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
