package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Config holds environment-based settings
type Config struct {
	Environment   string
	ServerAddress string
	LogLevel      string
	Location      *time.Location
	SeasonYear    int

	DataDir        string
	HolidaySource  string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string
	CacheTTL      time.Duration

	MQTTBrokerURL     string
	MQTTTopic         string
	BroadcastInterval time.Duration

	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string
	SpacesDataPath  string

	JWTSecret         string
	AdminPasswordHash string
}

const (
	HolidaySourceFile = "file"
	HolidaySourceDB   = "db"
)

// AdminEnabled reports whether the admin API can issue and verify tokens.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Environment:    getEnv("APP_ENV", "production"),
		ServerAddress:  getEnv("SERVER_ADDRESS", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		HolidaySource:  strings.ToLower(getEnv("HOLIDAY_SOURCE", HolidaySourceFile)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		MQTTTopic:     getEnv("MQTT_TOPIC", "calendar/today"),

		UseSpaces:       os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),
		SpacesDataPath:  getEnv("SPACES_DATA_PATH", "data"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	var err error
	tz := getEnv("TIMEZONE", "Indian/Maldives")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", tz, err)
	}
	if cfg.SeasonYear, err = strconv.Atoi(getEnv("SEASON_YEAR", "2026")); err != nil {
		return nil, fmt.Errorf("SEASON_YEAR must be a year: %w", err)
	}
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "10m")); err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if cfg.BroadcastInterval, err = time.ParseDuration(getEnv("BROADCAST_INTERVAL", "1m")); err != nil {
		return nil, fmt.Errorf("BROADCAST_INTERVAL: %w", err)
	}
	if cfg.BroadcastInterval <= 0 {
		return nil, fmt.Errorf("BROADCAST_INTERVAL must be positive, got %s", cfg.BroadcastInterval)
	}

	switch cfg.HolidaySource {
	case HolidaySourceFile:
	case HolidaySourceDB:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when HOLIDAY_SOURCE=db")
		}
	default:
		return nil, fmt.Errorf("HOLIDAY_SOURCE must be %q or %q", HolidaySourceFile, HolidaySourceDB)
	}

	if cfg.UseSpaces && (cfg.SpacesBucket == "" || cfg.SpacesEndpoint == "") {
		return nil, fmt.Errorf("SPACES_BUCKET and SPACES_ENDPOINT are required when USE_SPACES=true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
