// Package cli contains the commands of the pennyplan binary.
package cli

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pennyplan/backend/internal/config"
	"github.com/pennyplan/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pennyplan",
	Short: "Plan recurring incomes, expenses, subscriptions and installments",
	Long: `pennyplan resolves when recurring incomes, expenses, subscriptions
and installment payments occur and serves them through an HTTP API.`,
	SilenceUsage: true,
}

// Execute runs the command given on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and configures logging.
func setup() (config.Config, error) {
	// A .env file is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return cfg, nil
}

// connect opens PostgreSQL when a database host is configured, SQLite otherwise.
func connect(cfg config.Config) error {
	if cfg.UsePostgres() {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("using PostgreSQL")
		return models.ConnectPostgres(models.PostgresDSN(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName))
	}

	err := os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		return err
	}

	log.Info().Str("path", cfg.SQLitePath()).Msg("using SQLite")
	return models.Connect(cfg.SQLitePath())
}

func disconnect() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
