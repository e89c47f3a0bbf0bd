package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	TMDB      TMDBConfig
	Hero      HeroConfig
	Session   SessionConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type TMDBConfig struct {
	APIKey    string
	BaseURL   string
	Language  string
	Timeout   time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

type HeroConfig struct {
	Limit     int
	CacheTTL  time.Duration
	CacheSize int
}

type SessionConfig struct {
	Secret       string
	ExpiryHours  int
	BcryptCost   int
	SecureCookie bool
	PurgeEvery   time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillInterval time.Duration
	Prefix         string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinetrack")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_LANGUAGE", "en-US")
	viper.SetDefault("TMDB_TIMEOUT", "10s")
	viper.SetDefault("TMDB_CACHE_TTL", "5m")
	viper.SetDefault("TMDB_CACHE_SIZE", 1000)
	viper.SetDefault("HERO_LIMIT", 8)
	viper.SetDefault("HERO_CACHE_TTL", "1h")
	viper.SetDefault("HERO_CACHE_SIZE", 200)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24*7)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("SESSION_SECURE_COOKIE", false)
	viper.SetDefault("SESSION_PURGE_INTERVAL", "1h")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_CAPACITY", 60)
	viper.SetDefault("RATE_LIMIT_REFILL_INTERVAL", "1s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// .env is optional, the environment wins anyway
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		TMDB: TMDBConfig{
			APIKey:    viper.GetString("TMDB_API_KEY"),
			BaseURL:   viper.GetString("TMDB_BASE_URL"),
			Language:  viper.GetString("TMDB_LANGUAGE"),
			Timeout:   viper.GetDuration("TMDB_TIMEOUT"),
			CacheTTL:  viper.GetDuration("TMDB_CACHE_TTL"),
			CacheSize: viper.GetInt("TMDB_CACHE_SIZE"),
		},
		Hero: HeroConfig{
			Limit:     viper.GetInt("HERO_LIMIT"),
			CacheTTL:  viper.GetDuration("HERO_CACHE_TTL"),
			CacheSize: viper.GetInt("HERO_CACHE_SIZE"),
		},
		Session: SessionConfig{
			Secret:       viper.GetString("SESSION_SECRET"),
			ExpiryHours:  viper.GetInt("SESSION_EXPIRY_HOURS"),
			BcryptCost:   viper.GetInt("BCRYPT_COST"),
			SecureCookie: viper.GetBool("SESSION_SECURE_COOKIE"),
			PurgeEvery:   viper.GetDuration("SESSION_PURGE_INTERVAL"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:        viper.GetBool("RATE_LIMIT_ENABLED"),
			Capacity:       viper.GetInt("RATE_LIMIT_CAPACITY"),
			RefillInterval: viper.GetDuration("RATE_LIMIT_REFILL_INTERVAL"),
			Prefix:         "rl",
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if config.TMDB.APIKey == "" {
		return nil, errors.New("TMDB_API_KEY is required")
	}
	if config.Session.Secret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	return config, nil
}
