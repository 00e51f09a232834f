package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAccessTokenSecret  = "a-very-secret-access-key-should-be-longer-and-random"
	defaultRefreshTokenSecret = "default_insecure_refresh_secret_please_change_this_!@#$"
)

// Config holds application configuration.
type Config struct {
	Port           string `validate:"required"`
	IsProduction   bool
	LogLevel       string `validate:"oneof=debug info warn error"`
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string `validate:"required"`

	// Token Config
	AccessTokenSecret  string        `validate:"required,min=16"`
	AccessTokenExpiry  time.Duration `validate:"gt=0"`
	RefreshTokenSecret string        `validate:"required,min=16,nefield=AccessTokenSecret"`
	RefreshTokenExpiry time.Duration `validate:"gt=0,gtfield=AccessTokenExpiry"`
	JWTIssuer          string        `validate:"required"`
	CookieSecure       bool

	CORSOrigin     string
	UploadTempDir  string `validate:"required"`
	MaxUploadBytes int64  `validate:"gt=0"`
	ObjectStore    ObjectStoreConfig

	RedisURL       string
	LoginRateLimit string `validate:"required"`
}

// ObjectStoreConfig holds the S3-compatible bucket used for avatars and cover images.
type ObjectStoreConfig struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("ACCESS_TOKEN_SECRET", defaultAccessTokenSecret)
	v.SetDefault("ACCESS_TOKEN_EXPIRY", "1h")
	v.SetDefault("REFRESH_TOKEN_SECRET", defaultRefreshTokenSecret)
	v.SetDefault("REFRESH_TOKEN_EXPIRY", "240h")
	v.SetDefault("JWT_ISSUER", "mytube")
	v.SetDefault("COOKIE_SECURE", true)
	v.SetDefault("CORS_ORIGIN", "")
	v.SetDefault("UPLOAD_TEMP_DIR", "./public/temp")
	v.SetDefault("MAX_UPLOAD_BYTES", 8<<20)
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),

		AccessTokenSecret:  v.GetString("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: v.GetString("REFRESH_TOKEN_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		CookieSecure:       v.GetBool("COOKIE_SECURE"),

		CORSOrigin:     v.GetString("CORS_ORIGIN"),
		UploadTempDir:  v.GetString("UPLOAD_TEMP_DIR"),
		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		ObjectStore: ObjectStoreConfig{
			Bucket:          v.GetString("S3_BUCKET"),
			Region:          v.GetString("S3_REGION"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			PublicBaseURL:   v.GetString("S3_PUBLIC_BASE_URL"),
		},

		RedisURL:       v.GetString("REDIS_URL"),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
	}

	var err error
	if cfg.AccessTokenExpiry, err = parseDuration(v, "ACCESS_TOKEN_EXPIRY"); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenExpiry, err = parseDuration(v, "REFRESH_TOKEN_EXPIRY"); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.AccessTokenSecret == defaultAccessTokenSecret || cfg.RefreshTokenSecret == defaultRefreshTokenSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set in production")
		}
		log.Println("Warning: using default insecure token secrets. THIS IS NOT FOR PRODUCTION.")
	}
	if cfg.ObjectStore.Bucket == "" {
		log.Println("Warning: S3_BUCKET not set. Avatar and cover image uploads will fail.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s ('%s'): %w", key, raw, err)
	}
	return d, nil
}

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
