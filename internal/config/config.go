// Package config reads the configuration for pennyplan from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pennyplan/backend/internal/recurrence"
)

// DefaultReminderInterval is the time between two reminder runs.
const DefaultReminderInterval = 24 * time.Hour

type Config struct {
	// HTTP Server
	APIURL           *url.URL
	Port             string
	GinMode          string
	LogFormat        string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Database
	DataDir    string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string

	// Recurrence
	MonthEnd recurrence.MonthEndPolicy

	// AMQP
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Reminders
	ReminderInterval  time.Duration
	ReminderLookahead int
}

// Load reads the configuration from the environment and validates it.
// All problems found are reported in a single error.
func Load() (Config, error) {
	var problems []string

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogFormat:        getEnv("LOG_FORMAT", ""),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),

		DataDir:    getEnv("DATA_DIR", "data"),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "pennyplan"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "pennyplan"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "reminders"),

		ReminderInterval:  DefaultReminderInterval,
		ReminderLookahead: 1,
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		problems = append(problems, "environment variable API_URL must be set")
	} else if u, err := url.Parse(apiURL); err != nil {
		problems = append(problems, fmt.Sprintf("environment variable API_URL must be a valid URL: %v", err))
	} else {
		cfg.APIURL = u
	}

	policy, err := recurrence.ParseMonthEndPolicy(os.Getenv("RECURRENCE_MONTH_END"))
	if err != nil {
		problems = append(problems, err.Error())
	}
	cfg.MonthEnd = policy

	if value := os.Getenv("REMINDER_INTERVAL"); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid reminder interval '%s': %v", value, err))
		} else {
			cfg.ReminderInterval = d
		}
	}

	if value := os.Getenv("REMINDER_LOOKAHEAD_DAYS"); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid reminder lookahead '%s': must be a number", value))
		} else {
			cfg.ReminderLookahead = i
		}
	}

	if err := cfg.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return cfg, fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("invalid gin mode '%s': must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of human, json", c.LogFormat))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}

		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.ReminderInterval < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid reminder interval %v: must be at least 1 minute", c.ReminderInterval))
	}

	if c.ReminderLookahead < 0 || c.ReminderLookahead > 366 {
		problems = append(problems, fmt.Sprintf("invalid reminder lookahead %d: must be between 0 and 366 days", c.ReminderLookahead))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "\n- "))
	}

	return nil
}

// UsePostgres reports if a PostgreSQL database is configured.
func (c Config) UsePostgres() bool {
	return c.DBHost != ""
}

// SQLitePath is the path of the SQLite database file.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "pennyplan.db")
}

// Resolver returns the occurrence resolver for the configured month end policy.
func (c Config) Resolver() recurrence.Resolver {
	return recurrence.Resolver{MonthEnd: c.MonthEnd}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
