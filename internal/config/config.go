package config

import (
	"os"
	"strconv"

	"github.com/danielholmes839/altart-e2e/internal/altart"
	"github.com/danielholmes839/altart-e2e/internal/scenario"
	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL  = "https://staging.alt.art"
	ViewportWidth   = 1920
	ViewportHeight  = 980
	defaultHeadless = true
)

type Config struct {
	BaseURL  string
	Email    string
	Password string
	Headless bool

	ArtworkFile     string
	VerifyPublished bool

	DiscordToken     string
	DiscordChannelID string
}

func getBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory when there is one.
func Load() Config {
	godotenv.Load()

	baseURL := os.Getenv("altart_base_url")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return Config{
		BaseURL:          baseURL,
		Email:            os.Getenv("altart_email"),
		Password:         os.Getenv("altart_password"),
		Headless:         getBool("altart_headless", defaultHeadless),
		ArtworkFile:      os.Getenv("altart_artwork_file"),
		VerifyPublished:  getBool("altart_verify_published", false),
		DiscordToken:     os.Getenv("discord_bot_token"),
		DiscordChannelID: os.Getenv("discord_channel_id"),
	}
}

func (c Config) SessionOptions() altart.SessionOptions {
	return altart.SessionOptions{
		BaseURL:  c.BaseURL,
		Headless: c.Headless,
		Width:    ViewportWidth,
		Height:   ViewportHeight,
	}
}

func (c Config) Credentials() scenario.Credentials {
	return scenario.Credentials{
		Email:    c.Email,
		Password: c.Password,
	}
}
