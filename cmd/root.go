// Package cmd holds the foodorder command line.
package cmd

import (
	"os"

	"food-order/config"
	"food-order/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foodorder",
	Short: "Food ordering web application",
	Long:  "foodorder serves the food ordering site and manages its database.",
	// running without a subcommand starts the server
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads config, sets up logging and opens a migrated store.
func bootstrap() (*config.Config, *store.Store, error) {
	cfg := config.Load()
	config.SetupLogger(cfg.LogLevel, cfg.GinMode == gin.DebugMode)
	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Migrate(db); err != nil {
		return nil, nil, err
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("database connected and migrated")
	return cfg, store.New(db), nil
}
