package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	AppEnv    string
	Debug     bool
	Version   string
	SentryDSN string

	MongoDBURI      string
	MongoDBDatabase string

	// Collection names are configurable so deployments can share a database.
	SuggestionCollection string
	UserCollection       string
	CategoryCollection   string
	StatusCollection     string

	SeedDefaults bool
}

// LoadConfig loads configuration from environment variables.
// It attempts to load a .env file if present but prioritizes
// actual environment variables set in the system (e.g., by Docker).
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	debug, _ := strconv.ParseBool(getEnv("DEBUG", "false"))
	seedDefaults, _ := strconv.ParseBool(getEnv("SEED_DEFAULTS", "false"))

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Debug:     debug,
		Version:   getEnv("VERSION", "dev"),
		SentryDSN: getEnv("SENTRY_DSN", ""),

		MongoDBURI:      getEnv("MONGODB_URI", ""),
		MongoDBDatabase: getEnv("MONGODB_DATABASE", ""),

		SuggestionCollection: getEnv("SUGGESTION_COLLECTION", "suggestions"),
		UserCollection:       getEnv("USER_COLLECTION", "users"),
		CategoryCollection:   getEnv("CATEGORY_COLLECTION", "categories"),
		StatusCollection:     getEnv("STATUS_COLLECTION", "statuses"),

		SeedDefaults: seedDefaults,
	}

	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.MongoDBDatabase == "" {
		return nil, fmt.Errorf("MONGODB_DATABASE is required")
	}
	if cfg.SentryDSN == "" {
		log.Println("Warning: SENTRY_DSN is not set. Error tracking disabled.")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
