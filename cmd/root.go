package cmd

import (
	"fmt"
	"log"

	"katalog/internal/config"
	"katalog/internal/database"
	"katalog/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "katalog",
	Short: "Product catalog API server",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file loaded, using environment only")
		}
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err.Error())
	}
}

// deps holds what every subcommand needs.
type deps struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

// bootstrap loads configuration, builds the logger and opens a migrated database.
func bootstrap() (*deps, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	zapLog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "katalog")
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	return &deps{cfg: cfg, log: zapLog, db: db}, nil
}

func (r *deps) close() {
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = r.log.Sync()
}
