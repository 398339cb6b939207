package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/app/api"
	procurementactivities "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/durable/temporal/activities/procurement"
	procurementworkflows "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/durable/temporal/workflows/procurement"
	platformobservability "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/observability"
)

func main() {
	ctx := context.Background()
	const serviceName = "zenofuel-worker"
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	components, cleanup, err := api.NewComponents(ctx, cfg, instruments)
	if err != nil {
		logger.Error("failed to wire components", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()
	activities := procurementactivities.NewActivities(components.Procurement)

	temporalClient, err := api.ConnectTemporal(cfg, instruments)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, procurementworkflows.TaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(procurementworkflows.ReconciliationWorkflow, workflow.RegisterOptions{Name: procurementworkflows.ReconciliationWorkflowName})
	w.RegisterWorkflowWithOptions(procurementworkflows.StockAuditWorkflow, workflow.RegisterOptions{Name: procurementworkflows.StockAuditWorkflowName})
	w.RegisterActivityWithOptions(activities.AddToInventory, activity.RegisterOptions{Name: procurementactivities.AddToInventoryActivityName})
	w.RegisterActivityWithOptions(activities.AuditStock, activity.RegisterOptions{Name: procurementactivities.AuditStockActivityName})

	logger.Info("worker listening", slog.String("taskQueue", procurementworkflows.TaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
