package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const defaultHistoryLimit = 20

var ErrDatabaseNotConfigured = errors.New("database connection string is not set in the environment (PHONE_DB_STRING)")

type Config struct {
	Debug              bool
	BotToken           string
	NotificationChatID string
	DbConnectionString string
	HistoryLimit       int
}

var config *Config

// GetConfig reads the configuration from the environment once and caches it
func GetConfig() *Config {
	if config != nil {
		return config
	}
	config = Load(os.Getenv)
	if config.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	return config
}

// Load builds the configuration using getenv as the variable source.
// Every value is optional, features without configuration are disabled.
func Load(getenv func(string) string) *Config {
	conf := &Config{HistoryLimit: defaultHistoryLimit}

	// Debug mode
	debug := getenv("PHONE_DEBUG")
	if strings.ToLower(debug) == "true" || debug == "1" {
		conf.Debug = true
	}

	// Telegram notifications
	conf.BotToken = getenv("PHONE_TELEGRAM_TOKEN")
	conf.NotificationChatID = getenv("PHONE_NOTIFICATION_CHAT_ID")
	if len(conf.BotToken) > 0 && len(conf.NotificationChatID) == 0 {
		slog.Warn("Telegram token is set but chat IDs are not (PHONE_NOTIFICATION_CHAT_ID), notifications disabled")
	}

	// Dial history database
	conf.DbConnectionString = getenv("PHONE_DB_STRING")

	if limit := getenv("PHONE_HISTORY_LIMIT"); len(limit) > 0 {
		if n, err := strconv.Atoi(limit); err != nil || n <= 0 {
			slog.Warn("invalid history limit, using default", "PHONE_HISTORY_LIMIT", limit, "default", defaultHistoryLimit)
		} else {
			conf.HistoryLimit = n
		}
	}

	slog.Debug("Configuration parameters",
		"PHONE_DEBUG", conf.Debug,
		"PHONE_TELEGRAM_TOKEN", mask(conf.BotToken),
		"PHONE_NOTIFICATION_CHAT_ID", conf.NotificationChatID,
		"PHONE_DB_STRING", mask(conf.DbConnectionString),
		"PHONE_HISTORY_LIMIT", conf.HistoryLimit)

	return conf
}

func (c *Config) TelegramEnabled() bool {
	return len(c.BotToken) > 0 && len(c.NotificationChatID) > 0
}

func (c *Config) HistoryEnabled() bool {
	return len(c.DbConnectionString) > 0
}

// RequireDatabase returns an error when the dial history database is not configured
func (c *Config) RequireDatabase() error {
	if !c.HistoryEnabled() {
		return ErrDatabaseNotConfigured
	}
	return nil
}

func mask(secret string) string {
	if len(secret) == 0 {
		return ""
	}
	return "***"
}
