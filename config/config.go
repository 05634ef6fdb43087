package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL string

	// Card metadata API configuration
	CardAPIBaseURL string

	// Probability defaults
	DefaultHandSize int // Opening hand size used when a command omits it

	// Card cache
	CardCacheTTLHours int // Cached metadata older than this is refetched; 0 disables expiry

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Card API
		CardAPIBaseURL: os.Getenv("CARD_API_BASE_URL"),

		// Probability defaults
		DefaultHandSize: 5,

		// Card cache
		CardCacheTTLHours: 720,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.CardAPIBaseURL == "" {
		config.CardAPIBaseURL = "https://db.ygoprodeck.com/api/v7"
	}

	// Override defaults if environment variables are set
	if handSize := os.Getenv("DEFAULT_HAND_SIZE"); handSize != "" {
		if parsed, err := strconv.Atoi(handSize); err == nil && parsed > 0 {
			config.DefaultHandSize = parsed
		}
	}

	if ttl := os.Getenv("CARD_CACHE_TTL_HOURS"); ttl != "" {
		if parsed, err := strconv.Atoi(ttl); err == nil && parsed >= 0 {
			config.CardCacheTTLHours = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
