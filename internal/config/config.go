// Package config provides file and environment based configuration for the bot.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Required credentials come from the environment only; the process must
// not start without them.
var (
	ErrMissingTelegramToken = errors.New("TELEGRAM_TOKEN is not set")
	ErrMissingGoogleAPIKey  = errors.New("GOOGLE_API_KEY is not set")
)

// Config is the root configuration, populated once at startup and passed
// into the components that need it.
type Config struct {
	TelegramToken string `yaml:"-"`
	GoogleAPIKey  string `yaml:"-"`

	Server ServerConfig `yaml:"server"`
	Bot    BotConfig    `yaml:"bot"`
	Gemini GeminiConfig `yaml:"gemini"`
	Limits LimitsConfig `yaml:"limits"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig contains liveness HTTP server settings.
type ServerConfig struct {
	Port         int    `yaml:"port"`
	BindAddress  string `yaml:"bindAddress"`
	ReadTimeout  int    `yaml:"readTimeoutSeconds"`
	WriteTimeout int    `yaml:"writeTimeoutSeconds"`
	IdleTimeout  int    `yaml:"idleTimeoutSeconds"`
}

// BotConfig contains Telegram polling settings.
type BotConfig struct {
	PollTimeout int  `yaml:"pollTimeoutSeconds"`
	Debug       bool `yaml:"debug"`
}

// GeminiConfig contains answer generation settings.
type GeminiConfig struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// LimitsConfig contains upload limits.
type LimitsConfig struct {
	MaxDocumentBytes int64 `yaml:"maxDocumentBytes"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Mode string `yaml:"mode"` // "production" or "development"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			BindAddress:  "0.0.0.0",
			ReadTimeout:  15,
			WriteTimeout: 15,
			IdleTimeout:  60,
		},
		Bot: BotConfig{
			PollTimeout: 60,
			Debug:       false,
		},
		Gemini: GeminiConfig{
			Model:       "gemini-1.5-flash",
			Temperature: 0.3,
		},
		Limits: LimitsConfig{
			// The Bot API refuses to hand out files above 20 MB anyway.
			MaxDocumentBytes: 20 * 1024 * 1024,
		},
		Log: LogConfig{
			Mode: "production",
		},
	}
}

// Load reads the optional YAML file at configPath, applies environment
// overrides on top of it and validates the result. A missing file is not
// an error; defaults are used.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	case os.IsNotExist(err):
		// fine, run on defaults
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvironmentOverrides allows environment variables to override config values.
func (c *Config) applyEnvironmentOverrides() {
	c.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	c.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")

	// PORT is injected by most hosting platforms
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		c.Gemini.Model = model
	}

	if mode := os.Getenv("LOG_MODE"); mode != "" {
		c.Log.Mode = mode
	}

	if debug := os.Getenv("BOT_DEBUG"); debug != "" {
		if d, err := strconv.ParseBool(debug); err == nil {
			c.Bot.Debug = d
		}
	}
}

func (c *Config) validate() error {
	if c.TelegramToken == "" {
		return ErrMissingTelegramToken
	}
	if c.GoogleAPIKey == "" {
		return ErrMissingGoogleAPIKey
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Limits.MaxDocumentBytes <= 0 {
		return fmt.Errorf("invalid max document size %d", c.Limits.MaxDocumentBytes)
	}
	return nil
}

// Addr returns the listen address for the liveness server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.BindAddress, s.Port)
}
