package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - вся конфигурация сервиса из переменных окружения
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Storage   StorageConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Host    string // Адрес хоста (по умолчанию 0.0.0.0)
	Port    string // PORT имеет приоритет над SERVER_PORT, по умолчанию 5000
	GinMode string
}

type LogConfig struct {
	Level        string
	LogstashAddr string // Пусто - только stdout
}

// MongoDBConfig - подключение к MongoDB
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig - пустой Addr отключает Redis: кэш не используется, лимитер в памяти
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// KafkaConfig - пустой список брокеров отключает публикацию событий
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// AuthConfig - проверка JWT провайдера идентификации
type AuthConfig struct {
	JWTSecret   string // Секрет проекта Supabase для HS256
	JWTAudience string
}

// RateLimitConfig - лимит создания отзывов
type RateLimitConfig struct {
	ReviewLimit  int
	ReviewWindow time.Duration
	SweepEvery   string // Расписание cron для очистки окон лимитера в памяти
}

// StorageConfig - хранилище картинок отзывов
type StorageConfig struct {
	CloudinaryURL    string // Пусто - картинки отзывов получают локальные URL
	CloudinaryFolder string
	LocalBaseURL     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	reviewLimit, err := getEnvInt("REVIEW_RATE_LIMIT", 5)
	if err != nil {
		return nil, err
	}
	reviewWindow, err := getEnvDuration("REVIEW_RATE_WINDOW", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnv("PORT", getEnv("SERVER_PORT", "5000")),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Log: LogConfig{
			Level:        getEnv("LOG_LEVEL", "info"),
			LogstashAddr: getEnv("LOGSTASH_ADDR", ""),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "aussie-edu"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "site_events"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("SUPABASE_JWT_SECRET", ""),
			JWTAudience: getEnv("SUPABASE_JWT_AUDIENCE", "authenticated"),
		},
		RateLimit: RateLimitConfig{
			ReviewLimit:  reviewLimit,
			ReviewWindow: reviewWindow,
			SweepEvery:   getEnv("RATE_LIMIT_SWEEP", "@every 1h"),
		},
		Storage: StorageConfig{
			CloudinaryURL:    getEnv("CLOUDINARY_URL", ""),
			CloudinaryFolder: getEnv("CLOUDINARY_FOLDER", "reviews"),
			LocalBaseURL:     strings.TrimRight(getEnv("UPLOADS_BASE_URL", "/uploads"), "/"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		},
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("SUPABASE_JWT_SECRET is required")
	}
	if cfg.RateLimit.ReviewLimit <= 0 {
		return nil, fmt.Errorf("REVIEW_RATE_LIMIT must be positive, got %d", cfg.RateLimit.ReviewLimit)
	}
	if cfg.RateLimit.ReviewWindow <= 0 {
		return nil, fmt.Errorf("REVIEW_RATE_WINDOW must be positive, got %s", cfg.RateLimit.ReviewWindow)
	}

	return cfg, nil
}

// Address возвращает адрес для http.Server
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

// getEnvList разбирает список через запятую, пустые элементы отбрасываются
func getEnvList(key string) []string {
	var result []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
