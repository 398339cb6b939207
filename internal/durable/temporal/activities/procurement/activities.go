package procurement

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	procurementports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

const (
	// AddToInventoryActivityName applies a received order to live stock in one transaction.
	AddToInventoryActivityName = "procurement.activities.AddToInventory"
	// AuditStockActivityName publishes StockLow for every item under its threshold.
	AuditStockActivityName = "procurement.activities.AuditStock"
)

// Application error types carried across the workflow boundary.
const (
	ErrTypeInvalidInput      = "procurement.InvalidInput"
	ErrTypeConflict          = "procurement.Conflict"
	ErrTypeAlreadyReconciled = "procurement.AlreadyReconciled"
	ErrTypeForbidden         = "procurement.Forbidden"
	ErrTypeNotFound          = "procurement.NotFound"
)

// Activities groups activities that operate on the procurement bounded context.
type Activities struct {
	service procurementports.Service
}

// NewActivities wires the procurement service into the Temporal activities bundle.
func NewActivities(service procurementports.Service) *Activities {
	return &Activities{service: service}
}

// AddToInventory reconciles a received order. Business failures are returned
// as non-retryable so the retry policy only covers infrastructure errors.
func (a *Activities) AddToInventory(ctx context.Context, input types.AddToInventoryInput) (*types.ReconciliationResult, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("reconciliation activity not initialized", "receivedOrderId", input.ReceivedOrderID)
		return nil, errors.New("reconciliation activity not initialized")
	}
	logger.Info("AddToInventory activity started", "kind", input.Kind, "receivedOrderId", input.ReceivedOrderID)
	result, err := a.service.AddToInventory(ctx, input)
	if err != nil {
		logger.Error("AddToInventory activity failed", "receivedOrderId", input.ReceivedOrderID, "error", err)
		return nil, Classify(err)
	}
	logger.Info("AddToInventory activity completed", "inventoryItemId", result.Item.ID, "available", result.Item.Available)
	return result, nil
}

// AuditStock scans inventory and returns the number of low stock items.
func (a *Activities) AuditStock(ctx context.Context) (int, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		return 0, errors.New("stock audit activity not initialized")
	}
	low, err := a.service.AuditStock(ctx)
	if err != nil {
		logger.Error("AuditStock activity failed", "error", err)
		return 0, err
	}
	logger.Info("AuditStock activity completed", "lowStock", len(low))
	return len(low), nil
}

// Classify converts business errors into non-retryable application errors.
func Classify(err error) error {
	var validation *application.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &validation):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidInput, nil, validation.Fields)
	case errors.Is(err, application.ErrInvalidInput):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidInput, nil)
	case errors.Is(err, domain.ErrAlreadyReconciled):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeAlreadyReconciled, nil)
	case errors.Is(err, application.ErrConflict):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeConflict, nil)
	case errors.Is(err, application.ErrForbidden):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeForbidden, nil)
	case errors.Is(err, procurementports.ErrNotFound):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeNotFound, nil)
	default:
		return err
	}
}
