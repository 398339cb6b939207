package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/application/types"
	supplierdomain "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"
	supplierports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/ports"
)

const tracerName = "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/adapters/observability/service"

// Service decorates the supplier service with tracing, logging, and metrics.
type Service struct {
	inner   supplierports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core supplier service.
func New(inner supplierports.Service, opts ...Option) supplierports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) Register(ctx context.Context, input types.RegisterSupplierInput) (*supplierdomain.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "SupplierService.Register")
	defer span.End()

	s.logger.InfoContext(ctx, "registering supplier", slog.String("supplier.name", input.Name))
	supplier, err := s.inner.Register(ctx, input)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to register supplier")
	}
	span.SetAttributes(attribute.Int64("supplier.id", supplier.ID))
	s.metrics.recordRegistered(ctx)
	s.logger.InfoContext(ctx, "supplier registered", slog.Int64("supplier.id", supplier.ID))
	return supplier, nil
}

func (s *Service) Login(ctx context.Context, input types.LoginInput) (*types.LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "SupplierService.Login")
	defer span.End()

	result, err := s.inner.Login(ctx, input)
	if err != nil {
		s.metrics.recordLogin(ctx, false)
		return nil, s.fail(ctx, span, err, "supplier login failed")
	}
	s.metrics.recordLogin(ctx, true)
	span.SetAttributes(attribute.Int64("supplier.id", result.Supplier.ID))
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*supplierdomain.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "SupplierService.List")
	defer span.End()

	list, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to list suppliers")
	}
	span.SetAttributes(attribute.Int("suppliers.count", len(list)))
	return list, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*supplierdomain.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "SupplierService.GetByEmail")
	defer span.End()

	supplier, err := s.inner.GetByEmail(ctx, email)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to get supplier")
	}
	return supplier, nil
}

func (s *Service) Exists(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "SupplierService.Exists")
	defer span.End()

	known, err := s.inner.Exists(ctx, email)
	if err != nil {
		return false, s.fail(ctx, span, err, "supplier lookup failed")
	}
	span.SetAttributes(attribute.Bool("supplier.known", known))
	return known, nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.ErrorContext(ctx, msg, slog.String("error", err.Error()))
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	registered metric.Int64Counter
	logins     metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	registered, _ := m.Int64Counter("suppliers.service.registered", metric.WithDescription("Number of suppliers registered"))
	logins, _ := m.Int64Counter("suppliers.service.logins", metric.WithDescription("Supplier login attempts by outcome"))
	return serviceMetrics{registered: registered, logins: logins}
}

func (m serviceMetrics) recordRegistered(ctx context.Context) {
	if m.registered != nil {
		m.registered.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordLogin(ctx context.Context, ok bool) {
	if m.logins != nil {
		m.logins.Add(ctx, 1, metric.WithAttributes(attribute.Bool("login.success", ok)))
	}
}

var _ supplierports.Service = (*Service)(nil)
