package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string        `mapstructure:"PORT"`
	Env            string        `mapstructure:"ENV"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	MongoURI       string        `mapstructure:"MONGO_URI"`
	MongoDatabase  string        `mapstructure:"MONGO_DATABASE"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	TokenTTL       time.Duration `mapstructure:"TOKEN_TTL"`
	CORSOrigins    []string      `mapstructure:"CORS_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	NotifySMS      bool          `mapstructure:"NOTIFY_SMS"`
	TextbeltURL    string        `mapstructure:"TEXTBELT_URL"`
	TextbeltAPIKey string        `mapstructure:"TEXTBELT_API_KEY"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "MONGO_URI", "MONGO_DATABASE", "JWT_SECRET",
	"TOKEN_TTL", "CORS_ORIGINS", "REQUEST_TIMEOUT", "NOTIFY_SMS",
	"TEXTBELT_URL", "TEXTBELT_API_KEY",
}

// Load reads .env (if present) into the process environment and then builds
// the configuration from environment variables and defaults.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MONGO_DATABASE", "doctors_portal")
	v.SetDefault("TOKEN_TTL", time.Hour)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("NOTIFY_SMS", false)
	v.SetDefault("TEXTBELT_URL", "https://textbelt.com/text")

	// Bind env vars explicitly so Unmarshal picks them up
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.NotifySMS && c.TextbeltAPIKey == "" {
		return fmt.Errorf("TEXTBELT_API_KEY is required when NOTIFY_SMS is true")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
