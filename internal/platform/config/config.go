package config

import (
	"os"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// MessagesPath points at a YAML message catalog. Empty means the
	// embedded default catalog.
	MessagesPath  string
	DefaultLocale string
	WatchMessages bool
	AutoMigrate   bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "apikit"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	locale := strings.TrimSpace(os.Getenv("DEFAULT_LOCALE"))
	if locale == "" {
		locale = "en"
	}

	messagesPath := strings.TrimSpace(os.Getenv("MESSAGES_PATH"))

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN")),

		MessagesPath:  messagesPath,
		DefaultLocale: locale,
		WatchMessages: messagesPath != "" && envBool("WATCH_MESSAGES", false),
		AutoMigrate:   envBool("AUTO_MIGRATE", false),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
