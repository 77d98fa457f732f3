package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var notionIDPattern = regexp.MustCompile(`^[a-f0-9]{32}$`)

type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	AppEnv  string `mapstructure:"APP_ENV"`

	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	// AdminPassword is stored and compared as plain configuration
	// text. Known weakness inherited from the original deployment;
	// hashing it would change the credential contract.
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	SessionSecret   string        `mapstructure:"SESSION_SECRET"`
	SessionDuration time.Duration `mapstructure:"SESSION_DURATION"`

	NotionAPIKey          string `mapstructure:"NOTION_API_KEY"`
	NotionDatabaseID      string `mapstructure:"NOTION_DATABASE_ID"`
	NotionItemsDatabaseID string `mapstructure:"NOTION_ITEMS_DATABASE_ID"`

	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	InvoiceCacheTTL time.Duration `mapstructure:"INVOICE_CACHE_TTL"`
}

// Load reads the environment (plus an optional .env file) and validates
// the result. Every violation here is a startup failure, never a
// per-request error path.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // missing .env is fine (CI, production)

	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_DURATION", "24h")
	v.SetDefault("NOTION_API_KEY", "")
	v.SetDefault("NOTION_DATABASE_ID", "")
	v.SetDefault("NOTION_ITEMS_DATABASE_ID", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("INVOICE_CACHE_TTL", "5m")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.AppEnv != EnvDevelopment && c.AppEnv != EnvProduction {
		return fmt.Errorf("config: APP_ENV must be %q or %q", EnvDevelopment, EnvProduction)
	}
	if len(c.AdminUsername) < 3 {
		return fmt.Errorf("config: ADMIN_USERNAME must be at least 3 characters")
	}
	if len(c.AdminPassword) < 8 {
		return fmt.Errorf("config: ADMIN_PASSWORD must be at least 8 characters")
	}
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("config: SESSION_SECRET must be at least 32 characters")
	}
	if c.SessionDuration <= 0 {
		return fmt.Errorf("config: SESSION_DURATION must be positive")
	}
	if c.NotionAPIKey == "" {
		return fmt.Errorf("config: NOTION_API_KEY is required")
	}
	if !notionIDPattern.MatchString(c.NotionDatabaseID) {
		return fmt.Errorf("config: NOTION_DATABASE_ID must be a 32-char hex ID")
	}
	if !notionIDPattern.MatchString(c.NotionItemsDatabaseID) {
		return fmt.Errorf("config: NOTION_ITEMS_DATABASE_ID must be a 32-char hex ID")
	}
	if c.InvoiceCacheTTL <= 0 {
		return fmt.Errorf("config: INVOICE_CACHE_TTL must be positive")
	}
	return nil
}

// IsProduction reports whether production hardening applies
// (Secure cookies, gin release mode).
func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// CacheEnabled reports whether the redis invoice cache is configured.
func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
