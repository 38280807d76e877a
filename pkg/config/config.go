package config

import (
	"fmt"
	"go-botadmin/pkg/e"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultScheme          = "https"
	defaultRefreshInterval = 5 * time.Second
	defaultLogLevel        = "info"
)

type Config struct {
	APIScheme       string
	APIHost         string
	APIKey          string
	RefreshInterval time.Duration
	LogLevel        string
}

// LoadConfig reads the given .env files (if any exist) into the process
// environment and builds a Config from it. Variables already set in the
// environment win over the file.
func LoadConfig(filenames ...string) (Config, error) {
	var existing []string

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}

	if len(existing) > 0 {
		if errLoadEnv := godotenv.Load(existing...); errLoadEnv != nil {
			slog.Error(e.ErrLoadEnvFile.Error(),
				slog.String("error", errLoadEnv.Error()))

			return Config{}, e.With(e.ErrLoadEnvFile, errLoadEnv)
		}
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	var errs []string

	get := func(key string) string {
		val := os.Getenv(key)
		if val == "" {
			errs = append(errs, fmt.Sprintf("missing env: %s", key))
		}

		return val
	}

	getOr := func(key, fallback string) string {
		if val := os.Getenv(key); val != "" {
			return val
		}

		return fallback
	}

	config := Config{
		APIScheme:       getOr("ADMIN_API_SCHEME", defaultScheme),
		APIHost:         get("ADMIN_API_HOST"),
		APIKey:          os.Getenv("ADMIN_API_KEY"),
		RefreshInterval: defaultRefreshInterval,
		LogLevel:        getOr("LOG_LEVEL", defaultLogLevel),
	}

	if intervalStr := os.Getenv("REFRESH_INTERVAL_SECONDS"); intervalStr != "" {
		seconds, err := strconv.Atoi(intervalStr)
		if err != nil || seconds <= 0 {
			errs = append(errs, fmt.Sprintf("%s: REFRESH_INTERVAL_SECONDS=%q", e.ErrInvalidEnv, intervalStr))
		} else {
			config.RefreshInterval = time.Duration(seconds) * time.Second
		}
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config errors:\n%s", strings.Join(errs, "\n"))
	}

	return config, nil
}
