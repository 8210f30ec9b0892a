package telegram

import (
	"errors"
	"time"
)

// DefaultBaseURL is the public Bot API endpoint. Overridable for tests
// and for self-hosted Bot API servers.
const DefaultBaseURL = "https://api.telegram.org"

// Config represents the configuration for the Telegram Bot API client
type Config struct {
	// BotToken is the bot token issued by BotFather
	BotToken string

	// ChatID is the chat that receives merchant alerts
	ChatID string

	// BaseURL is the Bot API base URL
	BaseURL string

	// Timeout bounds a single API call
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("telegram: bot token is required")
	}
	if c.ChatID == "" {
		return errors.New("telegram: chat id is required")
	}
	return nil
}
