package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"librarygateway/internal/httpx"
)

type config struct {
	Addr            string
	LogLevel        logrus.Level
	LogFormat       string
	RateLimitRPS    float64
	RateLimitBurst  int
	MaxBodyBytes    int64
	CORSOrigins     []string
	EnableHSTS      bool
	JWTSecret       string
	UsersSOAPURL    string
	ShutdownTimeout time.Duration
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func loadConfig() (config, error) {
	cfg := config{
		Addr:         getEnv("APP_ADDR", ":8080"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
		CORSOrigins:  httpx.SplitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		JWTSecret:    os.Getenv("AUTH_JWT_SECRET"),
		UsersSOAPURL: getEnv("USERS_SOAP_URL", ""),
	}

	var err error
	if cfg.LogLevel, err = logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return config{}, fmt.Errorf("LOG_FORMAT: must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64); err != nil || cfg.RateLimitRPS <= 0 {
		return config{}, fmt.Errorf("RATE_LIMIT_RPS: must be a positive number")
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40")); err != nil || cfg.RateLimitBurst <= 0 {
		return config{}, fmt.Errorf("RATE_LIMIT_BURST: must be a positive integer")
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		return config{}, fmt.Errorf("MAX_BODY_BYTES: must be a positive integer")
	}
	if cfg.EnableHSTS, err = strconv.ParseBool(getEnv("ENABLE_HSTS", "false")); err != nil {
		return config{}, fmt.Errorf("ENABLE_HSTS: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
