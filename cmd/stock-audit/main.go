package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/app/api"
	platformobservability "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/observability"
)

// stock-audit scans inventory once and publishes StockLow for every item under its threshold.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, "zenofuel-stock-audit")
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	}()
	logger := instruments.Logger

	components, cleanup, err := api.NewComponents(ctx, cfg, instruments)
	if err != nil {
		log.Fatalf("failed to wire components: %v", err)
	}
	defer cleanup()

	workflows := components.Workflows(nil)
	if temporalClient, err := api.ConnectTemporal(cfg, instruments); err != nil {
		logger.Warn("Temporal unavailable, auditing inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		workflows = components.Workflows(temporalClient)
	}

	low, err := workflows.AuditStock(ctx)
	if err != nil {
		log.Fatalf("stock audit failed: %v", err)
	}
	logger.Info("stock audit completed", slog.Int("lowStockItems", low))
}
