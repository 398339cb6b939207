package api

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	procurementmemory "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/memory"
	procurementmessaging "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/messaging"
	procurementobs "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/observability"
	procurementpostgres "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/persistence/postgres"
	procurementworkflows "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/workflows"
	procurementapp "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application"
	procurementports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
	suppliercache "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/adapters/cache/redis"
	suppliermemory "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/adapters/memory"
	supplierobs "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/adapters/observability"
	supplierpostgres "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/adapters/persistence/postgres"
	suppliersapp "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/application"
	supplierports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/ports"
	usermemory "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/adapters/memory"
	userobs "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/adapters/observability"
	userpostgres "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/adapters/persistence/postgres"
	usersapp "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/application"
	userports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/ports"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/auth"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/messaging/rabbitmq"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/migrations"
	platformobservability "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/observability"
	platformpostgres "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/postgres"
	platformredis "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/redis"
)

// Components holds the wired services shared by the API, worker and job processes.
type Components struct {
	Logger      *slog.Logger
	Tokens      *auth.Manager
	Procurement procurementports.Service
	Suppliers   supplierports.Service
	Users       userports.Service
	// Broker is nil when AMQP_URL is unset or unreachable.
	Broker *rabbitmq.Broker
}

// NewComponents wires repositories, caches, publishers and decorated services.
// Missing infrastructure falls back to in-memory or noop collaborators with a warning.
// The returned cleanup releases every connection that was opened.
func NewComponents(ctx context.Context, cfg Config, instruments *platformobservability.Instruments) (*Components, func(), error) {
	logger := effectiveLogger(instruments)
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	tokens, err := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, cleanup, err
	}

	db, closeDB := platformpostgres.ConnectDSN(ctx, cfg.PostgresDSN, logger)
	cleanups = append(cleanups, closeDB)
	if db != nil {
		if err := migrations.Run(db); err != nil {
			cleanup()
			return nil, func() {}, err
		}
	}

	supplierRepo := buildSupplierRepository(db)
	var directory supplierports.Directory = suppliersapp.RepositoryDirectory(supplierRepo)
	redisClient, closeRedis := platformredis.ConnectAddr(ctx, cfg.RedisAddr, logger)
	cleanups = append(cleanups, closeRedis)
	if redisClient != nil {
		directory = suppliercache.NewDirectory(redisClient, directory,
			suppliercache.WithTTL(cfg.SupplierCacheTTL),
			suppliercache.WithLogger(logger),
		)
		logger.Info("supplier directory cached in redis", slog.Duration("ttl", cfg.SupplierCacheTTL))
	}
	suppliers := supplierobs.New(
		suppliersapp.NewService(supplierRepo, tokens, suppliersapp.WithDirectory(directory)),
		supplierobs.WithLogger(logger),
		supplierobs.WithTracer(instruments.Tracer("internal.suppliers.application")),
		supplierobs.WithMeter(instruments.Meter("internal.suppliers.application")),
	)

	users := userobs.New(
		usersapp.NewService(buildUserRepository(db), tokens),
		userobs.WithLogger(logger),
		userobs.WithTracer(instruments.Tracer("internal.users.application")),
		userobs.WithMeter(instruments.Meter("internal.users.application")),
	)

	publishers := procurementmessaging.Fanout{procurementmessaging.NewLogPublisher(logger)}
	broker := connectBroker(ctx, cfg, logger)
	if broker != nil {
		cleanups = append(cleanups, func() { _ = broker.Close() })
		publishers = append(publishers, procurementmessaging.NewEventPublisher(rabbitmq.NewPublisher(broker)))
	}
	core := procurementapp.NewService(
		buildProcurementStore(db),
		suppliers,
		procurementapp.WithEventPublisher(publishers),
		procurementapp.WithPolicies(cfg.Policies),
		procurementapp.WithLogger(logger),
	)
	procurement := procurementobs.New(
		core,
		procurementobs.WithLogger(logger),
		procurementobs.WithTracer(instruments.Tracer("internal.procurement.application")),
		procurementobs.WithMeter(instruments.Meter("internal.procurement.application")),
	)

	if cfg.AdminEmail != "" {
		if _, err := users.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			cleanup()
			return nil, func() {}, err
		}
	}

	return &Components{
		Logger:      logger,
		Tokens:      tokens,
		Procurement: procurement,
		Suppliers:   suppliers,
		Users:       users,
		Broker:      broker,
	}, cleanup, nil
}

// Workflows returns the Temporal orchestrator when a client is available, else the inline one.
func (c *Components) Workflows(temporalClient client.Client) procurementports.WorkflowOrchestrator {
	if temporalClient == nil {
		return procurementworkflows.NewInlineProcurementWorkflows(c.Procurement)
	}
	return procurementworkflows.NewTemporalProcurementWorkflows(temporalClient)
}

func buildProcurementStore(db *gorm.DB) procurementports.UnitOfWork {
	if db == nil {
		return procurementmemory.NewStore()
	}
	return procurementpostgres.NewStore(db)
}

func buildSupplierRepository(db *gorm.DB) supplierports.Repository {
	if db == nil {
		return suppliermemory.NewRepository()
	}
	return supplierpostgres.NewRepository(db)
}

func buildUserRepository(db *gorm.DB) userports.Repository {
	if db == nil {
		return usermemory.NewRepository()
	}
	return userpostgres.NewRepository(db)
}

func connectBroker(ctx context.Context, cfg Config, logger *slog.Logger) *rabbitmq.Broker {
	if cfg.AMQPURL == "" {
		logger.Warn("AMQP_URL not set, domain events are only logged")
		return nil
	}
	broker, err := rabbitmq.Connect(ctx, rabbitmq.Config{URL: cfg.AMQPURL, Exchange: cfg.AMQPExchange, Logger: logger})
	if err != nil {
		logger.Warn("failed to connect to rabbitmq, domain events are only logged", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("domain events published to rabbitmq", slog.String("exchange", broker.Exchange()))
	return broker
}

// ConnectTemporal dials Temporal with tracing and structured logging.
func ConnectTemporal(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
