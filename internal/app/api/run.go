package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	stationserver "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/go"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
	platformobservability "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/observability"
)

const serviceName = "zenofuel-api"

// Run boots the station HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	components, cleanup, err := NewComponents(ctx, cfg, instruments)
	if err != nil {
		return fmt.Errorf("failed to wire components: %w", err)
	}
	defer cleanup()

	var workflows ports.WorkflowOrchestrator
	if temporalClient, err := ConnectTemporal(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, reconciling inline", slog.String("error", err.Error()))
		workflows = components.Workflows(nil)
	} else {
		defer temporalClient.Close()
		workflows = components.Workflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	router := NewRouter(components, workflows, cfg)
	addr := ":" + cfg.Port
	logger.Info("station API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("station API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// NewRouter builds the gin engine serving every station route.
func NewRouter(components *Components, workflows ports.WorkflowOrchestrator, cfg Config) *gin.Engine {
	handlers := stationserver.ApiHandleFunctions{
		OrdersAPI:    stationserver.NewOrdersAPI(components.Procurement, workflows, cfg.Policies),
		SupplierAPI:  stationserver.NewSupplierAPI(components.Procurement),
		InventoryAPI: stationserver.NewInventoryAPI(components.Procurement, cfg.Policies),
		SuppliersAPI: stationserver.NewSuppliersAPI(components.Suppliers),
		AuthAPI:      stationserver.NewAuthAPI(components.Users),
		Tokens:       components.Tokens,
	}
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	return stationserver.NewRouterWithGinEngine(router, handlers)
}
