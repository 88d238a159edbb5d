package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	DatabaseURL string `yaml:"database_url"`
	JWTSecret   string `yaml:"jwt_secret"`
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
	// Security configuration
	AllowedOrigins  string  `yaml:"allowed_origins"`
	TrustedProxies  string  `yaml:"trusted_proxies"`
	EnableRateLimit bool    `yaml:"enable_rate_limit"`
	RateLimitRPS    float64 `yaml:"rate_limit_rps"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	MaxRequestSize  int64   `yaml:"max_request_size"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		DatabaseURL:     "sqlite://somenerts.db",
		Port:            "8080",
		Environment:     "development",
		LogLevel:        "info",
		EnableRateLimit: true,
		RateLimitRPS:    5,
		RateLimitBurst:  20,
		MaxRequestSize:  1 << 20, // 1MB
	}
}

// Load reads the optional YAML file at path and then applies environment
// overrides. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.Port = getEnv("PORT", c.Port)
	c.Environment = getEnv("ENV", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.AllowedOrigins = getEnv("ALLOWED_ORIGINS", c.AllowedOrigins)
	c.TrustedProxies = getEnv("TRUSTED_PROXIES", c.TrustedProxies)
	c.EnableRateLimit = getEnvAsBool("ENABLE_RATE_LIMIT", c.EnableRateLimit)
	c.RateLimitRPS = getEnvAsFloat("RATE_LIMIT_RPS", c.RateLimitRPS)
	c.RateLimitBurst = getEnvAsInt("RATE_LIMIT_BURST", c.RateLimitBurst)
	c.MaxRequestSize = getEnvAsInt64("MAX_REQUEST_SIZE", c.MaxRequestSize)
}

// Validate checks settings that cannot be defaulted
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	if c.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		c.JWTSecret = "development-only-secret"
	}
	if c.EnableRateLimit && (c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0) {
		return fmt.Errorf("rate limit needs positive RATE_LIMIT_RPS and RATE_LIMIT_BURST")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// GetAllowedOrigins returns a slice of allowed CORS origins
func (c *Config) GetAllowedOrigins() []string {
	return splitList(c.AllowedOrigins)
}

// GetTrustedProxies returns a slice of trusted proxy IPs
func (c *Config) GetTrustedProxies() []string {
	return splitList(c.TrustedProxies)
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
