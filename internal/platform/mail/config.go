// Package mail provides a Notifier implementation backed by the Mailtrap send API.
package mail

import (
	"os"
	"time"
)

// Config holds configuration for the Mailtrap API client.
type Config struct {
	APIKey      string        // API token for authentication
	BaseURL     string        // Base URL for the API (e.g., "https://send.api.mailtrap.io")
	SenderEmail string        // From address for all outbound mail
	SenderName  string        // From display name for all outbound mail
	Timeout     time.Duration // HTTP request timeout
}

// LoadConfig loads Mailtrap configuration from environment variables.
func LoadConfig() Config {
	return Config{
		APIKey:      os.Getenv("MAILTRAP_API_KEY"),
		BaseURL:     os.Getenv("MAILTRAP_BASE_URL"),
		SenderEmail: os.Getenv("MAILTRAP_SENDER_EMAIL"),
		SenderName:  os.Getenv("MAILTRAP_SENDER_NAME"),
		Timeout:     10 * time.Second,
	}
}
