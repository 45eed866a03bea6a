package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"GO_ENV"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFormat   string `mapstructure:"LOG_FORMAT"`

	// MongoDB
	MongoURI      string        `mapstructure:"MONGODB_URI"`
	MongoDatabase string        `mapstructure:"MONGODB_DATABASE"`
	MongoTimeout  time.Duration `mapstructure:"MONGODB_TIMEOUT"`

	// Redis
	RedisAddress         string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword        string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB              int           `mapstructure:"REDIS_DB"`
	ReportLimitPrefix    string        `mapstructure:"REDIS_QUEUE_FOR_REPORT_LIMIT"`
	ReportDailyLimit     int           `mapstructure:"REPORT_DAILY_LIMIT"`
	MunicipalityCacheTTL time.Duration `mapstructure:"MUNICIPALITY_LIST_CACHE_TTL"`

	// JWT
	JWTSecret  string        `mapstructure:"JWT_SECRET"`
	AccessTTL  time.Duration `mapstructure:"JWT_ACCESS_TTL"`
	RefreshTTL time.Duration `mapstructure:"JWT_REFRESH_TTL"`
	BcryptCost int           `mapstructure:"BCRYPT_COST"`

	// SMTP
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PWD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	// Media
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`
	UploadTempDir string `mapstructure:"UPLOAD_TEMP_DIR"`

	// CORS
	AllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Bootstrap system admin
	DefaultAdminEmail    string `mapstructure:"DEFAULT_ADMIN_EMAIL"`
	DefaultAdminPassword string `mapstructure:"DEFAULT_ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables (and .env, loaded by main).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// ENVIRONMENT is accepted as an alias of GO_ENV.
	if env := os.Getenv("ENVIRONMENT"); env != "" && os.Getenv("GO_ENV") == "" {
		v.Set("GO_ENV", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if len(config.AllowedOrigins) == 1 && strings.Contains(config.AllowedOrigins[0], ",") {
		config.AllowedOrigins = splitList(config.AllowedOrigins[0])
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GO_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "nagaralert")
	v.SetDefault("MONGODB_TIMEOUT", 10*time.Second)

	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_QUEUE_FOR_REPORT_LIMIT", "report_limit")
	v.SetDefault("REPORT_DAILY_LIMIT", 10)
	v.SetDefault("MUNICIPALITY_LIST_CACHE_TTL", 5*time.Minute)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ACCESS_TTL", 10*time.Hour)
	v.SetDefault("JWT_REFRESH_TTL", 15*24*time.Hour)
	v.SetDefault("BCRYPT_COST", 12)

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PWD", "")
	v.SetDefault("SMTP_FROM", "no-reply@nagaralert.local")

	v.SetDefault("CLOUDINARY_URL", "")
	v.SetDefault("UPLOAD_TEMP_DIR", filepath.Join(os.TempDir(), "nagaralert"))

	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	v.SetDefault("DEFAULT_ADMIN_EMAIL", "")
	v.SetDefault("DEFAULT_ADMIN_PASSWORD", "")
}

func validate(config *Config) error {
	if config.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if config.IsProduction() && config.CloudinaryURL == "" {
		return fmt.Errorf("CLOUDINARY_URL is required in production")
	}
	if config.ReportDailyLimit < 1 {
		return fmt.Errorf("REPORT_DAILY_LIMIT must be positive")
	}
	if config.BcryptCost < 4 || config.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if config.AccessTTL <= 0 || config.RefreshTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
