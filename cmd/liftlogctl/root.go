package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFlag     string
	configFlag  string
	envFileFlag string
	logLevel    string

	dbPool *pgxpool.Pool
)

var rootCmd = &cobra.Command{
	Use:   "liftlogctl",
	Short: "Liftlog admin tool",
	Long: `Admin tool for the liftlog backend.

All commands talk to the same Postgres database the service uses. The
database password is read from LIFTLOG_DB_PASSWORD (an .env file is
loaded first if present).

  $ liftlogctl migrate
  $ liftlogctl user add --username serj --password secret
  $ liftlogctl exercise add-global --name "Bench Press" --muscle-group chest
  $ liftlogctl mcp --username serj`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		if err := godotenv.Load(envFileFlag); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file: %w", err)
		}

		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		// stdout is reserved for command output and the stdio MCP transport
		log.SetOutput(os.Stderr)
		log.SetLevel(level)

		cfg, err := config.Load(envFlag, configFlag)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPool, err = openDB(cmd.Context(), cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dbPool != nil {
			dbPool.Close()
		}
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", ".env", "optional dotenv file with secrets")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "log level")
}

func openDB(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("LIFTLOG_DB_PASSWORD"),
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}
