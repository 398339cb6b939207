package procurement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/memory"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	procurementactivities "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/durable/temporal/activities/procurement"
)

type allowAll struct{}

func (allowAll) Exists(context.Context, string) (bool, error) { return true, nil }

func newEnvironment(t *testing.T, svc *application.Service) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	acts := procurementactivities.NewActivities(svc)
	env.RegisterWorkflowWithOptions(ReconciliationWorkflow, workflow.RegisterOptions{Name: ReconciliationWorkflowName})
	env.RegisterWorkflowWithOptions(StockAuditWorkflow, workflow.RegisterOptions{Name: StockAuditWorkflowName})
	env.RegisterActivityWithOptions(acts.AddToInventory, activity.RegisterOptions{Name: procurementactivities.AddToInventoryActivityName})
	env.RegisterActivityWithOptions(acts.AuditStock, activity.RegisterOptions{Name: procurementactivities.AuditStockActivityName})
	return env
}

func acceptedDelivery(t *testing.T, svc *application.Service, kind domain.ItemKind, name string, quantity int64) *domain.ReceivedOrder {
	t.Helper()
	ctx := context.Background()
	order, err := svc.PlaceNewItemOrder(ctx, types.PlaceNewItemOrderInput{
		Kind: kind, ItemName: name, Quantity: quantity, SupplierEmail: "fuel@lanka-petro.lk",
	})
	require.NoError(t, err)
	received, err := svc.AcceptOrder(ctx, types.AcceptOrderInput{
		OrderRef:       types.OrderRef{Kind: kind, ID: order.ID},
		Supplier:       types.SupplierIdentity{Email: "fuel@lanka-petro.lk"},
		WholesalePrice: 10,
	})
	require.NoError(t, err)
	return received
}

func TestReconciliationWorkflow_OverwritesFuel(t *testing.T) {
	store := memory.NewStore()
	svc := application.NewService(store, allowAll{})
	item, err := domain.NewInventoryItem(domain.KindFuel, "Diesel", 100, 9, time.Now())
	require.NoError(t, err)
	_, err = store.Repositories().Inventory.Create(context.Background(), item)
	require.NoError(t, err)
	received := acceptedDelivery(t, svc, domain.KindFuel, "Diesel", 500)

	env := newEnvironment(t, svc)
	env.ExecuteWorkflow(ReconciliationWorkflow, ReconciliationWorkflowInput{
		Command: types.AddToInventoryInput{Kind: domain.KindFuel, ReceivedOrderID: received.ID, Quantity: 500},
	})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var result types.ReconciliationResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.Equal(t, int64(500), result.Item.Available)
	require.Equal(t, 5000.0, result.ReceivedOrder.TotalAmount)
	require.Equal(t, domain.ReceivedAddedToInventory, result.ReceivedOrder.Status)
}

func TestReconciliationWorkflow_ConflictIsNotRetried(t *testing.T) {
	store := memory.NewStore()
	svc := application.NewService(store, allowAll{})
	received := acceptedDelivery(t, svc, domain.KindShop, "Soap", 10)
	input := types.AddToInventoryInput{Kind: domain.KindShop, ReceivedOrderID: received.ID, Quantity: 10}
	_, err := svc.AddToInventory(context.Background(), input)
	require.NoError(t, err)

	env := newEnvironment(t, svc)
	env.ExecuteWorkflow(ReconciliationWorkflow, ReconciliationWorkflowInput{Command: input})

	require.True(t, env.IsWorkflowCompleted())
	werr := env.GetWorkflowError()
	require.Error(t, werr)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(werr, &appErr))
	require.Equal(t, procurementactivities.ErrTypeAlreadyReconciled, appErr.Type())
	require.True(t, appErr.NonRetryable())

	item, err := store.Repositories().Inventory.GetByName(context.Background(), domain.KindShop, "Soap")
	require.NoError(t, err)
	require.Equal(t, int64(10), item.Available)
}

func TestStockAuditWorkflow(t *testing.T) {
	store := memory.NewStore()
	svc := application.NewService(store, allowAll{})
	item, err := domain.NewInventoryItem(domain.KindShop, "Tea", 3, 1, time.Now())
	require.NoError(t, err)
	_, err = store.Repositories().Inventory.Create(context.Background(), item)
	require.NoError(t, err)

	env := newEnvironment(t, svc)
	env.ExecuteWorkflow(StockAuditWorkflow)

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var low int
	require.NoError(t, env.GetWorkflowResult(&low))
	require.Equal(t, 1, low)
}
