package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/memory"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

const (
	fuelSupplier = "fuel@lanka-petro.lk"
	shopSupplier = "goods@wholesale.lk"
)

var fixedNow = time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)

type fakeSupplierDirectory struct {
	emails map[string]bool
	err    error
}

func newFakeSupplierDirectory(emails ...string) *fakeSupplierDirectory {
	d := &fakeSupplierDirectory{emails: map[string]bool{}}
	for _, email := range emails {
		d.emails[email] = true
	}
	return d
}

func (f *fakeSupplierDirectory) Exists(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.emails[email], nil
}

type testEnv struct {
	svc    *Service
	store  *memory.Store
	events *memory.EventRecorder
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	store := memory.NewStore()
	events := memory.NewEventRecorder()
	base := []Option{WithEventPublisher(events), WithClock(func() time.Time { return fixedNow })}
	svc := NewService(store, newFakeSupplierDirectory(fuelSupplier, shopSupplier), append(base, opts...)...)
	return &testEnv{svc: svc, store: store, events: events}
}

func (e *testEnv) seedItem(t *testing.T, kind domain.ItemKind, name string, available int64, price float64) *domain.InventoryItem {
	t.Helper()
	item, err := domain.NewInventoryItem(kind, name, available, price, fixedNow)
	require.NoError(t, err)
	saved, err := e.store.Repositories().Inventory.Create(context.Background(), item)
	require.NoError(t, err)
	return saved
}

func fuelIdentity() types.SupplierIdentity {
	return types.SupplierIdentity{SupplierID: 1, Email: fuelSupplier}
}

func TestFuelScenario_OverwritesInventory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	diesel := env.seedItem(t, domain.KindFuel, "Diesel", 100, 9)

	order, err := env.svc.PlaceLowStockOrder(ctx, types.PlaceLowStockOrderInput{
		Kind:           domain.KindFuel,
		ItemName:       "Diesel",
		Quantity:       500,
		SupplierEmail:  fuelSupplier,
		WholesalePrice: 10,
	})
	require.NoError(t, err)
	require.Equal(t, domain.OrderPending, order.Status)
	require.Equal(t, 5000.0, order.TotalAmount)
	require.NotNil(t, order.InventoryItemID)
	require.Equal(t, diesel.ID, *order.InventoryItemID)

	received, err := env.svc.AcceptOrder(ctx, types.AcceptOrderInput{
		OrderRef:       types.OrderRef{Kind: domain.KindFuel, ID: order.ID},
		Supplier:       fuelIdentity(),
		Quantity:       500,
		WholesalePrice: 10,
		OrderDate:      fixedNow,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ReceivedPending, received.Status)
	require.Equal(t, int64(500), received.Quantity)
	require.Equal(t, 10.0, received.WholesalePrice)

	accepted, err := env.store.Repositories().Orders.GetByID(ctx, domain.KindFuel, order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderAccepted, accepted.Status)
	require.Equal(t, 5000.0, accepted.TotalAmount)

	result, err := env.svc.AddToInventory(ctx, types.AddToInventoryInput{
		Kind:            domain.KindFuel,
		ReceivedOrderID: received.ID,
		Quantity:        500,
	})
	require.NoError(t, err)
	require.False(t, result.ItemCreated)
	require.Equal(t, diesel.ID, result.Item.ID)
	require.Equal(t, int64(500), result.Item.Available)
	require.Equal(t, int64(500), result.Item.TotalReceived)
	require.Equal(t, domain.ReceivedAddedToInventory, result.ReceivedOrder.Status)
	require.Equal(t, 5000.0, result.ReceivedOrder.TotalAmount)
	require.NotNil(t, result.ReceivedOrder.DateReceived)
	require.Equal(t, fixedNow, *result.ReceivedOrder.DateReceived)
	require.True(t, result.LowStock)

	require.Equal(t, []string{
		"procurement.order.placed",
		"procurement.order.accepted",
		"procurement.received_order.created",
		"procurement.inventory.reconciled",
		"procurement.inventory.stock_low",
	}, env.events.Names())
}

func TestShopScenario_AddsToInventory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	soap := env.seedItem(t, domain.KindShop, "Soap", 20, 1.2)

	order, err := env.svc.PlaceNewItemOrder(ctx, types.PlaceNewItemOrderInput{
		Kind:          domain.KindShop,
		ItemName:      "Soap",
		Quantity:      50,
		SupplierEmail: shopSupplier,
	})
	require.NoError(t, err)
	require.Zero(t, order.TotalAmount)
	require.Equal(t, fixedNow, order.OrderDate)
	require.NotNil(t, order.InventoryItemID)

	received, err := env.svc.AcceptOrder(ctx, types.AcceptOrderInput{
		OrderRef:       types.OrderRef{Kind: domain.KindShop, ID: order.ID},
		Supplier:       types.SupplierIdentity{Email: shopSupplier},
		WholesalePrice: 1.5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(50), received.Quantity)
	require.Equal(t, 75.0, received.TotalAmount)

	result, err := env.svc.AddToInventory(ctx, types.AddToInventoryInput{Kind: domain.KindShop, ReceivedOrderID: received.ID, Quantity: 50})
	require.NoError(t, err)
	require.Equal(t, soap.ID, result.Item.ID)
	require.Equal(t, int64(70), result.Item.Available)
	require.False(t, result.LowStock)
}

func TestAddToInventory_SecondCallIsRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedItem(t, domain.KindShop, "Soap", 20, 1)
	received := placeAndAccept(t, env, domain.KindShop, "Soap", 50, shopSupplier)

	input := types.AddToInventoryInput{Kind: domain.KindShop, ReceivedOrderID: received.ID, Quantity: 50}
	_, err := env.svc.AddToInventory(ctx, input)
	require.NoError(t, err)

	_, err = env.svc.AddToInventory(ctx, input)
	require.ErrorIs(t, err, ErrConflict)
	require.ErrorIs(t, err, domain.ErrAlreadyReconciled)

	item, err := env.store.Repositories().Inventory.GetByName(ctx, domain.KindShop, "Soap")
	require.NoError(t, err)
	require.Equal(t, int64(70), item.Available)
}

func TestAddToInventory_ConcurrentCallsApplyOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedItem(t, domain.KindShop, "Soap", 20, 1)
	received := placeAndAccept(t, env, domain.KindShop, "Soap", 50, shopSupplier)
	input := types.AddToInventoryInput{Kind: domain.KindShop, ReceivedOrderID: received.ID, Quantity: 50}

	const callers = 32
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.svc.AddToInventory(ctx, input)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		require.ErrorIs(t, err, ErrConflict)
	}
	require.Equal(t, 1, successes)

	item, err := env.store.Repositories().Inventory.GetByName(ctx, domain.KindShop, "Soap")
	require.NoError(t, err)
	require.Equal(t, int64(70), item.Available)

	_, err = env.svc.AddToInventory(ctx, types.AddToInventoryInput{Kind: domain.KindFuel, ReceivedOrderID: received.ID, Quantity: 50})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestAddToInventory_CreatesMissingItem(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	received := placeAndAccept(t, env, domain.KindShop, "Biscuits", 40, shopSupplier)

	result, err := env.svc.AddToInventory(ctx, types.AddToInventoryInput{Kind: domain.KindShop, ReceivedOrderID: received.ID, Quantity: 40})
	require.NoError(t, err)
	require.True(t, result.ItemCreated)
	require.Equal(t, "Biscuits", result.Item.ItemName)
	require.Equal(t, int64(40), result.Item.Available)
	require.Equal(t, int64(40), result.Item.TotalReceived)
	require.Equal(t, 2.0, result.Item.UnitPrice)
	require.NotNil(t, result.ReceivedOrder.InventoryItemID)
	require.Equal(t, result.Item.ID, *result.ReceivedOrder.InventoryItemID)
}

func TestAddToInventory_FollowsIDReferenceAfterRename(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	item := env.seedItem(t, domain.KindFuel, "Diesel", 100, 9)
	order, err := env.svc.PlaceLowStockOrder(ctx, types.PlaceLowStockOrderInput{
		Kind: domain.KindFuel, InventoryItemID: item.ID, Quantity: 300, SupplierEmail: fuelSupplier,
	})
	require.NoError(t, err)
	require.Equal(t, 2700.0, order.TotalAmount)
	received, err := env.svc.AcceptOrder(ctx, types.AcceptOrderInput{
		OrderRef: types.OrderRef{Kind: domain.KindFuel, ID: order.ID}, Supplier: fuelIdentity(), WholesalePrice: 9,
	})
	require.NoError(t, err)

	renamed := *item
	renamed.ItemName = "Auto Diesel"
	_, err = env.store.Repositories().Inventory.Update(ctx, &renamed)
	require.NoError(t, err)

	result, err := env.svc.AddToInventory(ctx, types.AddToInventoryInput{Kind: domain.KindFuel, ReceivedOrderID: received.ID, Quantity: 300})
	require.NoError(t, err)
	require.False(t, result.ItemCreated)
	require.Equal(t, item.ID, result.Item.ID)
	require.Equal(t, int64(300), result.Item.Available)
}

func TestAddToInventory_ConfigurablePolicy(t *testing.T) {
	ctx := context.Background()
	policies := domain.DefaultPolicies()
	fuel := policies[domain.KindFuel]
	fuel.Reconcile = domain.PolicyAdditive
	policies[domain.KindFuel] = fuel
	env := newTestEnv(t, WithPolicies(policies))
	env.seedItem(t, domain.KindFuel, "Diesel", 100, 9)
	received := placeAndAccept(t, env, domain.KindFuel, "Diesel", 500, fuelSupplier)

	result, err := env.svc.AddToInventory(ctx, types.AddToInventoryInput{Kind: domain.KindFuel, ReceivedOrderID: received.ID, Quantity: 500})
	require.NoError(t, err)
	require.Equal(t, int64(600), result.Item.Available)
}

func TestAddToInventory_Validation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.AddToInventory(ctx, types.AddToInventoryInput{Kind: domain.KindShop, ReceivedOrderID: 1, Quantity: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Contains(t, validation.Fields, "quantity")

	_, err = env.svc.AddToInventory(ctx, types.AddToInventoryInput{Kind: domain.KindShop, ReceivedOrderID: 99, Quantity: 1})
	require.ErrorIs(t, err, ports.ErrNotFound)

	received := placeAndAccept(t, env, domain.KindShop, "Soap", 5, shopSupplier)
	_, err = env.svc.AddToInventory(ctx, types.AddToInventoryInput{Kind: domain.KindFuel, ReceivedOrderID: received.ID, Quantity: 5})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPlaceLowStockOrder_RejectsUnknownSupplier(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedItem(t, domain.KindFuel, "Petrol", 50, 3)

	_, err := env.svc.PlaceLowStockOrder(ctx, types.PlaceLowStockOrderInput{
		Kind: domain.KindFuel, ItemName: "Petrol", Quantity: 10, SupplierEmail: "stranger@nowhere.lk", WholesalePrice: 3,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrUnknownSupplier)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, ErrUnknownSupplier.Error(), validation.Fields["supplierEmail"])

	orders, err := env.svc.ListOrders(ctx, domain.KindFuel)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestPlaceLowStockOrder_RequiresStockedItem(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.PlaceLowStockOrder(context.Background(), types.PlaceLowStockOrderInput{
		Kind: domain.KindFuel, ItemName: "Kerosene", Quantity: 10, SupplierEmail: fuelSupplier,
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPlaceLowStockOrder_DefaultsPriceToUnitPrice(t *testing.T) {
	env := newTestEnv(t)
	env.seedItem(t, domain.KindShop, "Tea", 3, 2.5)
	order, err := env.svc.PlaceLowStockOrder(context.Background(), types.PlaceLowStockOrderInput{
		Kind: domain.KindShop, ItemName: "Tea", Quantity: 4, SupplierEmail: shopSupplier,
	})
	require.NoError(t, err)
	require.Equal(t, 10.0, order.TotalAmount)
}

func TestPlaceOrders_EnumerateMissingFields(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.PlaceNewItemOrder(context.Background(), types.PlaceNewItemOrderInput{Kind: domain.KindShop})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Contains(t, validation.Fields, "itemName")
	require.Contains(t, validation.Fields, "quantity")
	require.Contains(t, validation.Fields, "supplierEmail")
}

func TestPlaceNewItemOrder_SkipsSupplierCatalog(t *testing.T) {
	env := newTestEnv(t)
	order, err := env.svc.PlaceNewItemOrder(context.Background(), types.PlaceNewItemOrderInput{
		Kind: domain.KindShop, ItemName: "Candles", Quantity: 12, SupplierEmail: "new@vendor.lk",
	})
	require.NoError(t, err)
	require.Nil(t, order.InventoryItemID)
	require.Equal(t, "new@vendor.lk", order.SupplierEmail)
}

func TestAcceptOrder_ForbiddenForOtherSupplier(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	order, err := env.svc.PlaceNewItemOrder(ctx, types.PlaceNewItemOrderInput{
		Kind: domain.KindFuel, ItemName: "Diesel", Quantity: 10, SupplierEmail: fuelSupplier,
	})
	require.NoError(t, err)

	_, err = env.svc.AcceptOrder(ctx, types.AcceptOrderInput{
		OrderRef:       types.OrderRef{Kind: domain.KindFuel, ID: order.ID},
		Supplier:       types.SupplierIdentity{Email: shopSupplier},
		WholesalePrice: 10,
	})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = env.svc.RejectOrder(ctx, types.RejectOrderInput{
		OrderRef: types.OrderRef{Kind: domain.KindFuel, ID: order.ID},
		Supplier: types.SupplierIdentity{Email: shopSupplier},
	})
	require.ErrorIs(t, err, ErrForbidden)

	unchanged, err := env.store.Repositories().Orders.GetByID(ctx, domain.KindFuel, order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderPending, unchanged.Status)
	received, err := env.svc.ListReceivedOrders(ctx, domain.KindFuel)
	require.NoError(t, err)
	require.Empty(t, received)
}

func TestAcceptAndReject_OnlyFromPending(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	order, err := env.svc.PlaceNewItemOrder(ctx, types.PlaceNewItemOrderInput{
		Kind: domain.KindFuel, ItemName: "Diesel", Quantity: 10, SupplierEmail: fuelSupplier,
	})
	require.NoError(t, err)
	ref := types.OrderRef{Kind: domain.KindFuel, ID: order.ID}

	rejected, err := env.svc.RejectOrder(ctx, types.RejectOrderInput{OrderRef: ref, Supplier: fuelIdentity()})
	require.NoError(t, err)
	require.Equal(t, domain.OrderRejected, rejected.Status)

	_, err = env.svc.AcceptOrder(ctx, types.AcceptOrderInput{OrderRef: ref, Supplier: fuelIdentity(), WholesalePrice: 5})
	require.ErrorIs(t, err, ErrConflict)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = env.svc.RejectOrder(ctx, types.RejectOrderInput{OrderRef: ref, Supplier: fuelIdentity()})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	received, err := env.svc.ListReceivedOrders(ctx, domain.KindFuel)
	require.NoError(t, err)
	require.Empty(t, received)
}

func TestAcceptOrder_ExactlyOneReceivedOrder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	received := placeAndAccept(t, env, domain.KindFuel, "Petrol", 800, fuelSupplier)

	_, err := env.svc.AcceptOrder(ctx, types.AcceptOrderInput{
		OrderRef: types.OrderRef{Kind: domain.KindFuel, ID: received.OrderID}, Supplier: fuelIdentity(), WholesalePrice: 2,
	})
	require.ErrorIs(t, err, ErrConflict)

	list, err := env.svc.ListReceivedOrders(ctx, domain.KindFuel)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Petrol", list[0].ItemName)
	require.Equal(t, int64(800), list[0].Quantity)
	require.Equal(t, fuelSupplier, list[0].SupplierEmail)
	require.Equal(t, domain.ReceivedPending, list[0].Status)
}

// failingReceivedStore makes the received order insert fail inside the transaction.
type failingReceivedStore struct {
	*memory.Store
}

type failingReceivedRepo struct {
	ports.ReceivedOrderRepository
}

var errInsertFailed = errors.New("insert failed")

func (failingReceivedRepo) Create(context.Context, *domain.ReceivedOrder) (*domain.ReceivedOrder, error) {
	return nil, errInsertFailed
}

func (s failingReceivedStore) Do(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	return s.Store.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		repos.ReceivedOrders = failingReceivedRepo{repos.ReceivedOrders}
		return fn(ctx, repos)
	})
}

func TestAcceptOrder_RollsBackWhenReceivedOrderInsertFails(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(failingReceivedStore{store}, newFakeSupplierDirectory(fuelSupplier))

	order, err := svc.PlaceNewItemOrder(ctx, types.PlaceNewItemOrderInput{
		Kind: domain.KindFuel, ItemName: "Diesel", Quantity: 10, SupplierEmail: fuelSupplier,
	})
	require.NoError(t, err)

	_, err = svc.AcceptOrder(ctx, types.AcceptOrderInput{
		OrderRef: types.OrderRef{Kind: domain.KindFuel, ID: order.ID}, Supplier: fuelIdentity(), WholesalePrice: 10,
	})
	require.ErrorIs(t, err, errInsertFailed)

	reloaded, err := store.Repositories().Orders.GetByID(ctx, domain.KindFuel, order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderPending, reloaded.Status)
	require.Zero(t, reloaded.TotalAmount)
}

func TestListSupplierOrders_ScopesByEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	for _, email := range []string{fuelSupplier, fuelSupplier, shopSupplier} {
		_, err := env.svc.PlaceNewItemOrder(ctx, types.PlaceNewItemOrderInput{
			Kind: domain.KindFuel, ItemName: "Diesel", Quantity: 1, SupplierEmail: email,
		})
		require.NoError(t, err)
	}

	mine, err := env.svc.ListSupplierOrders(ctx, domain.KindFuel, types.SupplierIdentity{Email: "FUEL@lanka-petro.lk"})
	require.NoError(t, err)
	require.Len(t, mine, 2)

	none, err := env.svc.ListSupplierOrders(ctx, domain.KindShop, fuelIdentity())
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	_, err = env.svc.ListSupplierOrders(ctx, domain.KindFuel, types.SupplierIdentity{})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestRecordSale_GuardsStockAndSignalsLowStock(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	soap := env.seedItem(t, domain.KindShop, "Soap", 12, 1)

	result, err := env.svc.RecordSale(ctx, types.RecordSaleInput{Kind: domain.KindShop, InventoryItemID: soap.ID, Quantity: 3})
	require.NoError(t, err)
	require.Equal(t, int64(9), result.Item.Available)
	require.Equal(t, int64(3), result.Item.Sold)
	require.True(t, result.LowStock)

	_, err = env.svc.RecordSale(ctx, types.RecordSaleInput{Kind: domain.KindShop, InventoryItemID: soap.ID, Quantity: 10})
	require.ErrorIs(t, err, ErrConflict)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = env.svc.RecordSale(ctx, types.RecordSaleInput{Kind: domain.KindShop, InventoryItemID: soap.ID, Quantity: 1})
	require.NoError(t, err)

	require.Equal(t, []string{
		"procurement.inventory.sale_recorded",
		"procurement.inventory.stock_low",
		"procurement.inventory.sale_recorded",
	}, env.events.Names())
}

func TestLowStockAndAudit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedItem(t, domain.KindFuel, "Diesel", 20000, 9)
	env.seedItem(t, domain.KindFuel, "Petrol", 25000, 9)
	env.seedItem(t, domain.KindShop, "Soap", 9, 1)
	env.seedItem(t, domain.KindShop, "Tea", 10, 1)

	fuel, err := env.svc.LowStock(ctx, domain.KindFuel)
	require.NoError(t, err)
	require.Len(t, fuel, 1)
	require.Equal(t, "Diesel", fuel[0].ItemName)

	low, err := env.svc.AuditStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	require.Equal(t, []string{"procurement.inventory.stock_low", "procurement.inventory.stock_low"}, env.events.Names())
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	order, err := env.svc.PlaceNewItemOrder(ctx, types.PlaceNewItemOrderInput{
		Kind: domain.KindShop, ItemName: "Soap", Quantity: 1, SupplierEmail: shopSupplier,
	})
	require.NoError(t, err)

	require.ErrorIs(t, env.svc.DeleteOrder(ctx, types.OrderRef{Kind: domain.KindFuel, ID: order.ID}), ports.ErrNotFound)
	require.NoError(t, env.svc.DeleteOrder(ctx, types.OrderRef{Kind: domain.KindShop, ID: order.ID}))
	require.ErrorIs(t, env.svc.DeleteOrder(ctx, types.OrderRef{Kind: domain.KindShop, ID: order.ID}), ports.ErrNotFound)
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, ...domain.Event) error {
	return errors.New("broker down")
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	env := newTestEnv(t, WithEventPublisher(failingPublisher{}))
	_, err := env.svc.PlaceNewItemOrder(context.Background(), types.PlaceNewItemOrderInput{
		Kind: domain.KindShop, ItemName: "Soap", Quantity: 1, SupplierEmail: shopSupplier,
	})
	require.NoError(t, err)
}

func placeAndAccept(t *testing.T, env *testEnv, kind domain.ItemKind, name string, quantity int64, supplier string) *domain.ReceivedOrder {
	t.Helper()
	ctx := context.Background()
	order, err := env.svc.PlaceNewItemOrder(ctx, types.PlaceNewItemOrderInput{
		Kind: kind, ItemName: name, Quantity: quantity, SupplierEmail: supplier,
	})
	require.NoError(t, err)
	received, err := env.svc.AcceptOrder(ctx, types.AcceptOrderInput{
		OrderRef:       types.OrderRef{Kind: kind, ID: order.ID},
		Supplier:       types.SupplierIdentity{Email: supplier},
		WholesalePrice: 2,
	})
	require.NoError(t, err)
	return received
}
