package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/smart-records/internal/database"
	"github.com/frahmantamala/smart-records/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Create or update the database schema without touching any data`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(config.Environment)
		lg := logger.L()

		gateway := database.NewGateway(config.Database, lg)
		defer gateway.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := gateway.Migrate(ctx); err != nil {
			lg.Error("migration failed", "error", err)
			os.Exit(1)
		}
		lg.Info("migrations applied")
	},
}
