package commands

import (
	"fmt"
	"os"

	"darasa/config"
	"darasa/database"
	"darasa/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "darasa",
	Short: "Course catalog API server",
	Long: `darasa serves the course catalog API: users register and log in,
create courses grouped into categories, and comment on and rate them.

Configuration is read from the environment (and an optional .env file).

Examples:
  darasa serve                       # Run migrations and start the HTTP server
  darasa migrate                     # Create or update the database schema
  darasa promote alice               # Give alice the ADMIN role`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, sets up logging and opens the database.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	utils.InitLogger(cfg.LogLevel)

	db, err := database.ConnectDb(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
