package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/memory"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
)

type allowAll struct{}

func (allowAll) Exists(context.Context, string) (bool, error) { return true, nil }

func newDecorated(t *testing.T) (*memory.Store, *tracetest.SpanRecorder, *sdkmetric.ManualReader, *bytes.Buffer, *Service) {
	t.Helper()
	store := memory.NewStore()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	var logs bytes.Buffer

	svc := New(application.NewService(store, allowAll{}),
		WithTracer(tp.Tracer(tracerName)),
		WithMeter(mp.Meter(tracerName)),
		WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))),
	)
	return store, spans, reader, &logs, svc.(*Service)
}

func TestService_RecordsSpansAndCounters(t *testing.T) {
	ctx := context.Background()
	store, spans, reader, logs, svc := newDecorated(t)
	item, err := domain.NewInventoryItem(domain.KindShop, "Soap", 20, 1, time.Now())
	require.NoError(t, err)
	_, err = store.Repositories().Inventory.Create(ctx, item)
	require.NoError(t, err)

	_, err = svc.PlaceLowStockOrder(ctx, types.PlaceLowStockOrderInput{
		Kind: domain.KindShop, ItemName: "Soap", Quantity: 5, SupplierEmail: "goods@wholesale.lk",
	})
	require.NoError(t, err)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "ProcurementService.PlaceLowStockOrder", ended[0].Name())
	require.Contains(t, logs.String(), "low stock order placed")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Equal(t, int64(1), counterTotal(rm, "procurement.service.orders_placed"))
}

func TestService_MarksSpanOnError(t *testing.T) {
	ctx := context.Background()
	_, spans, _, logs, svc := newDecorated(t)

	_, err := svc.AddToInventory(ctx, types.AddToInventoryInput{Kind: domain.KindFuel, ReceivedOrderID: 42, Quantity: 1})
	require.Error(t, err)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, codes.Error, ended[0].Status().Code)
	require.Contains(t, logs.String(), "failed to add to inventory")
}

func TestNew_DefaultsAreSafe(t *testing.T) {
	svc := New(application.NewService(memory.NewStore(), allowAll{}))
	items, err := svc.ListInventory(context.Background(), domain.KindFuel)
	require.NoError(t, err)
	require.Empty(t, items)
}

func counterTotal(rm metricdata.ResourceMetrics, name string) int64 {
	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, point := range sum.DataPoints {
					total += point.Value
				}
			}
		}
	}
	return total
}
