package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort     = 5000
	defaultEnv      = "development"
	defaultDSN      = "file:uzbek_news.db"
	defaultBaseURL  = "http://localhost:5000"
	defaultSiteName = "UzbekNews AI"
	defaultAIModel  = "gemini-2.5-flash"
	defaultTimezone = "Asia/Tashkent"
)

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variables taking precedence so a deployment can be
// configured entirely through the environment.
type AppConfig struct {
	Port      int    `yaml:"port"`
	Env       string `yaml:"env"` // "development" | "production"
	DSN       string `yaml:"dsn"` // MySQL DSN, or "file:..." for SQLite
	JWTSecret string `yaml:"jwt_secret"`
	Timezone  string `yaml:"timezone"`

	// AdminPassword seeds the default admin account on first boot.
	AdminPassword string `yaml:"admin_password"`

	Site     SiteConfig     `yaml:"site"`
	AI       AIConfig       `yaml:"ai"`
	Telegram TelegramConfig `yaml:"telegram"`

	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SiteConfig describes the public site identity used in SEO metadata,
// the sitemap and channel post links.
type SiteConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	BaseURL     string `yaml:"base_url"`
}

// AIConfig configures the generative-text provider.
type AIConfig struct {
	// Provider is "gemini" (default), "openai-compatible" or "anthropic".
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"` // openai-compatible only
}

// TelegramConfig configures the channel publisher. Either field empty
// means the publisher runs in its unconfigured state.
type TelegramConfig struct {
	BotToken  string `yaml:"bot_token"`
	ChannelID string `yaml:"channel_id"` // "@channel" or numeric chat id
}

// Load reads the YAML config file (if present) and applies environment
// overrides and defaults. A missing file is not an error: the whole
// config can come from the environment.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env/defaults
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	overrideString(&c.Env, "APP_ENV")
	overrideInt(&c.Port, "PORT")
	overrideString(&c.DSN, "DATABASE_URL")
	overrideString(&c.JWTSecret, "SESSION_SECRET")
	overrideString(&c.Timezone, "TZ")
	overrideString(&c.AdminPassword, "ADMIN_PASSWORD")

	overrideString(&c.Site.Name, "SITE_NAME")
	overrideString(&c.Site.Description, "SITE_DESCRIPTION")
	overrideString(&c.Site.BaseURL, "SITE_BASE_URL")

	overrideString(&c.AI.Provider, "AI_PROVIDER")
	overrideString(&c.AI.APIKey, "GEMINI_API_KEY")
	overrideString(&c.AI.APIKey, "AI_API_KEY")
	overrideString(&c.AI.Model, "AI_MODEL")
	overrideString(&c.AI.Endpoint, "AI_ENDPOINT")

	overrideString(&c.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	overrideString(&c.Telegram.ChannelID, "TELEGRAM_CHANNEL_ID")

	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		c.AllowedOrigins = origins
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.DSN == "" {
		c.DSN = defaultDSN
	}
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	if c.Site.Name == "" {
		c.Site.Name = defaultSiteName
	}
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = defaultBaseURL
	}
	c.Site.BaseURL = strings.TrimRight(c.Site.BaseURL, "/")
	if c.AI.Provider == "" {
		c.AI.Provider = "gemini"
	}
	if c.AI.Model == "" {
		c.AI.Model = defaultAIModel
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// UsesSQLite reports whether the DSN points at a SQLite file.
func (c *AppConfig) UsesSQLite() bool {
	return strings.HasPrefix(c.DSN, "file:") || strings.HasSuffix(c.DSN, ".db")
}

func overrideString(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
