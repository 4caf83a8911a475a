package main

import (
	"os"

	"hospital-management-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-api",
		Short: "Hospital management REST API",
		// Running without a subcommand starts the server
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("Command failed: %v", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap.Migrate()
		},
	}
}

func serve() error {
	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		return err
	}

	// Run the application
	app.Run()
	return nil
}
