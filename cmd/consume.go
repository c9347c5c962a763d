package cmd

import (
	"fmt"

	"katalog/internal/config"
	"katalog/internal/logger"
	"katalog/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var consumeCmd = &cobra.Command{
	Use:   "consume-events",
	Short: "Log catalog events from RabbitMQ until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.New())
		if err != nil {
			return err
		}
		if cfg.RabbitMQURL == "" {
			return fmt.Errorf("RABBITMQ_URL must be set to consume events")
		}
		zapLog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "katalog-events")
		if err != nil {
			return err
		}
		defer zapLog.Sync()

		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, zapLog)
		if err != nil {
			return err
		}
		defer mqClient.Close()

		zapLog.Info("waiting for catalog events", zap.String("queue", rabbitmq.QueueName))
		return mqClient.Consume(func(event rabbitmq.Event) error {
			zapLog.Info("catalog event",
				zap.String("type", event.Type),
				zap.String("owner_id", event.OwnerID),
				zap.String("resource_id", event.ResourceID),
				zap.Time("occurred_at", event.OccurredAt),
				zap.Any("data", event.Data),
			)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}
