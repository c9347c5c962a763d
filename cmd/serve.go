package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"katalog/internal/app"
	"katalog/internal/services"
	"katalog/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		var events services.EventPublisher
		if rt.cfg.RabbitMQURL != "" {
			mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rt.cfg.RabbitMQURL}, rt.log)
			if err != nil {
				return err
			}
			defer mqClient.Close()
			events = mqClient
		} else {
			rt.log.Info("RABBITMQ_URL not set, catalog events disabled")
		}

		fiberApp, err := app.New(rt.cfg, rt.db, rt.log, events)
		if err != nil {
			return err
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		serverErr := make(chan error, 1)
		go func() {
			rt.log.Info("starting server", zap.String("addr", rt.cfg.AppPort))
			serverErr <- fiberApp.Listen(rt.cfg.AppPort)
		}()

		select {
		case err := <-serverErr:
			return err
		case <-quit:
		}

		rt.log.Info("shutting down server")
		if err := fiberApp.Shutdown(); err != nil {
			rt.log.Error("error during shutdown", zap.Error(err))
		}
		rt.log.Info("server gracefully stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
