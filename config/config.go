package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/mempirate/scrapetool/scrape"
)

const (
	ENV_API_URL   = "SCRAPE_API_URL"
	ENV_TIMEOUT   = "SCRAPE_TIMEOUT"
	ENV_LOG_LEVEL = "LOG_LEVEL"
)

// Config holds settings that don't come from the scrape arguments themselves.
// Command line flags override these.
type Config struct {
	APIURL   string
	Timeout  time.Duration
	LogLevel string
}

// Load reads the optional env file at path (".env" if empty), then the
// environment. Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}

	timeout, err := getEnvAsDuration(ENV_TIMEOUT, 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		APIURL:   getEnv(ENV_API_URL, scrape.FIRECRAWL_API),
		Timeout:  timeout,
		LogLevel: getEnv(ENV_LOG_LEVEL, "warn"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}

	return d, nil
}
