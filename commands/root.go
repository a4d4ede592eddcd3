package commands

import (
	"fmt"
	"os"

	"github.com/Antdol/LittleLemonAPI/configs"
	"github.com/Antdol/LittleLemonAPI/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "littlelemon",
	Short: "Little Lemon restaurant ordering API",
	Long: `Little Lemon serves the menu, cart and order endpoints of the restaurant.

Configuration comes from the environment (and an optional .env file):
  DB_DRIVER, DB_SOURCE, PORT, JWT_SECRET, JWT_TTL, ADMIN_*, LOG_LEVEL,
  LOG_FORMAT, THROTTLE_USER_PER_MIN, THROTTLE_ANON_PER_MIN, CORS_ORIGINS`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads config, installs the logger and opens a migrated store.
func bootstrap() (*configs.Config, *logger.Logger, *gorm.DB, error) {
	cfg := configs.LoadConfig()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := configs.SetupDatabase(db); err != nil {
		return nil, nil, nil, err
	}
	log.Info("database ready", "driver", db.Dialector.Name())
	return cfg, log, db, nil
}
