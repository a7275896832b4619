package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the whole runtime configuration of the service.
// It is built once at startup and handed to every component that needs it.
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	JWT     JWTConfig
	Storage StorageConfig
	Upload  UploadConfig
	Limits  RateLimitConfig
}

// AppConfig describes the HTTP server.
type AppConfig struct {
	Host         string
	Port         string
	LogLevel     string
	CORSOrigins  []string
	CookieSecure bool
}

// MongoConfig describes the document store connection.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// RedisConfig describes the cache connection.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
	StatsTTL     time.Duration
}

// KafkaConfig describes the event sink. Empty Brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// JWTConfig holds secrets and lifetimes for access and refresh tokens.
type JWTConfig struct {
	AccessSecret  string
	AccessExpiry  time.Duration
	RefreshSecret string
	RefreshExpiry time.Duration
}

// StorageConfig describes the remote object store used for images and videos.
type StorageConfig struct {
	Backend   string // "s3" or "minio"
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PublicURL string
}

// UploadConfig describes local staging of multipart uploads.
type UploadConfig struct {
	TempDir  string
	MaxBytes int64
}

// RateLimitConfig applies to the unauthenticated auth endpoints.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load reads an optional env file at path and then the process environment.
// Missing keys fall back to development defaults; malformed values are errors.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	cfg.App = AppConfig{
		Host:        getEnv("APP_HOST", "localhost"),
		Port:        getEnv("APP_PORT", "8000"),
		LogLevel:    getEnv("APP_LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnv("CORS_ORIGIN", "*")),
	}
	if cfg.App.CookieSecure, err = getBool("COOKIE_SECURE", true); err != nil {
		return nil, err
	}

	cfg.Mongo = MongoConfig{
		URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGODB_DB", "videotube"),
	}
	if cfg.Mongo.Timeout, err = getDuration("MONGODB_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.Redis.StatsTTL, err = getDuration("STATS_CACHE_TTL", time.Minute); err != nil {
		return nil, err
	}

	cfg.Kafka = KafkaConfig{
		Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
		Topic:   getEnv("KAFKA_TOPIC", "videotube.events"),
	}

	cfg.JWT.AccessSecret = getEnv("ACCESS_TOKEN_SECRET", "access_secret")
	cfg.JWT.RefreshSecret = getEnv("REFRESH_TOKEN_SECRET", "refresh_secret")
	if cfg.JWT.AccessExpiry, err = getDuration("ACCESS_TOKEN_EXPIRY", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.JWT.RefreshExpiry, err = getDuration("REFRESH_TOKEN_EXPIRY", 240*time.Hour); err != nil {
		return nil, err
	}

	cfg.Storage = StorageConfig{
		Backend:   strings.ToLower(getEnv("STORAGE_BACKEND", "s3")),
		Bucket:    getEnv("STORAGE_BUCKET", "videotube"),
		Region:    getEnv("STORAGE_REGION", "us-east-1"),
		Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
		AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		PublicURL: getEnv("STORAGE_PUBLIC_URL", ""),
	}
	if cfg.Storage.UseSSL, err = getBool("STORAGE_USE_SSL", true); err != nil {
		return nil, err
	}
	if cfg.Storage.Backend != "s3" && cfg.Storage.Backend != "minio" {
		return nil, fmt.Errorf("STORAGE_BACKEND: unsupported backend %q", cfg.Storage.Backend)
	}

	cfg.Upload.TempDir = getEnv("UPLOAD_TEMP_DIR", "./public/temp")
	maxBytes, err := getInt("UPLOAD_MAX_BYTES", 100<<20)
	if err != nil {
		return nil, err
	}
	cfg.Upload.MaxBytes = int64(maxBytes)

	if cfg.Limits.Requests, err = getInt("RATE_LIMIT_REQUESTS", 20); err != nil {
		return nil, err
	}
	if cfg.Limits.Window, err = getDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// RedisAddr returns host:port of the cache.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// ListenAddr returns host:port of the HTTP server.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%s", c.App.Host, c.App.Port)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
