package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	SessionStore           string
	RedisAddr              string
	SessionKeyPrefix       string
	SessionTTLMinutes      int
	SessionCookieName      string
	SessionCookieSecure    bool
	UploadDir              string
	LogDir                 string
	LogFile                string
	LogLevel               slog.Level
	LogDev                 bool
	TraceStdout            bool
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "3000")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_SECOND", 10),
		SessionStore:           strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		SessionKeyPrefix:       getEnv("SESSION_KEY_PREFIX", "task-tracker:session:"),
		SessionTTLMinutes:      getEnvAsInt("SESSION_TTL_MINUTES", 120),
		SessionCookieName:      getEnv("SESSION_COOKIE_NAME", "task_tracker_sid"),
		SessionCookieSecure:    getEnvAsBool("SESSION_COOKIE_SECURE", false),
		UploadDir:              getEnv("UPLOAD_DIR", "public/uploads/tasks"),
		LogDir:                 getEnv("LOG_DIR", "./logs"),
		LogFile:                getEnv("LOG_FILE", "app.log"),
		LogLevel:               getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
		LogDev:                 getEnvAsBool("LOG_DEV", true),
		TraceStdout:            getEnvAsBool("TRACE_STDOUT", false),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_SECOND must be greater than 0")
	}
	if cfg.SessionStore != SessionStoreMemory && cfg.SessionStore != SessionStoreRedis {
		log.Fatalf("SESSION_STORE must be %q or %q", SessionStoreMemory, SessionStoreRedis)
	}
	if cfg.SessionTTLMinutes <= 0 {
		log.Fatal("SESSION_TTL_MINUTES must be greater than 0")
	}
	if cfg.SessionCookieName == "" {
		log.Fatal("SESSION_COOKIE_NAME must not be empty")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}

func getEnvAsLevel(key string, defaultVal slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			log.Fatalf("invalid log level for %s", key)
		}
		return level
	}
	return defaultVal
}
