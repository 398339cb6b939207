package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	procurementmessaging "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/messaging"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/messaging/rabbitmq"
	platformobservability "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/observability"
)

const queueName = "zenofuel.notifier"

// notifier consumes procurement events from RabbitMQ and logs a notice for each.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	instruments, shutdown, err := platformobservability.Init(ctx, "zenofuel-notifier")
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	}()
	logger := instruments.Logger

	url := strings.TrimSpace(os.Getenv("AMQP_URL"))
	if url == "" {
		logger.Error("AMQP_URL not set; nothing to consume")
		os.Exit(1)
	}
	broker, err := rabbitmq.Connect(ctx, rabbitmq.Config{URL: url, Exchange: os.Getenv("AMQP_EXCHANGE"), Logger: logger})
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	notifier := procurementmessaging.NewNotifier(logger)
	subscriber := rabbitmq.NewSubscriber(broker, logger)
	if err := subscriber.Subscribe(ctx, queueName, procurementmessaging.RoutingPattern, notifier.Handle); err != nil {
		logger.Error("failed to subscribe", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("notifier consuming", slog.String("queue", queueName), slog.String("exchange", broker.Exchange()))
	<-ctx.Done()
	logger.Info("notifier stopped")
}
