package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"darasa/database"
	"darasa/routers"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Start without running schema migrations")
}

func runServe() error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db)

	if !skipMigrations {
		if err := database.RunMigrations(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	app := routers.NewApp(cfg, db)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		logrus.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logrus.WithError(err).Error("server shutdown failed")
		}
	}()

	logrus.Infof("Server is running on port %s", cfg.Port)
	return app.Listen(":" + cfg.Port)
}
