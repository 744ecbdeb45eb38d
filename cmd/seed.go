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

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate and seed the database",
	Long:  `Apply migrations and populate empty tables with starter records. Tables that already hold data are left untouched.`,
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

		if err := gateway.InitializeSchema(ctx); err != nil {
			lg.Error("seeding failed", "error", err)
			os.Exit(1)
		}
		lg.Info("database ready")
	},
}
