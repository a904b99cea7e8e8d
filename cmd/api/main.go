package main

import (
	"log"

	"kitty-registry/internal/platform/config"
	"kitty-registry/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	cfg config.Config
	lg  logger.Logger

	rootCmd = &cobra.Command{
		Use:   "kitty-registry",
		Short: "Registro de kitties respaldado por un ledger de stakes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			lg = logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.LogLevel),
				Format: logger.ParseFormat(cfg.LogFormat),
				App:    cfg.AppName,
			})
			return nil
		},
		SilenceUsage: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE:  runServe,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Crea las tablas de Postgres (requiere DB_DSN)",
		RunE:  runMigrate,
	}
)

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("error: %v", err)
	}
}
