package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	procurementactivities "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/durable/temporal/activities/procurement"
)

func activityOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
}

// RunReconciliationSequence applies a received order to inventory.
func RunReconciliationSequence(ctx workflow.Context, input types.AddToInventoryInput) (*types.ReconciliationResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("reconciliation sequence started", "kind", input.Kind, "receivedOrderId", input.ReceivedOrderID)
	ctx = workflow.WithActivityOptions(ctx, activityOptions())

	var result types.ReconciliationResult
	err := workflow.ExecuteActivity(ctx, procurementactivities.AddToInventoryActivityName, input).Get(ctx, &result)
	if err != nil {
		logger.Error("reconciliation sequence failed", "receivedOrderId", input.ReceivedOrderID, "error", err)
		return nil, err
	}
	logger.Info("reconciliation sequence completed", "receivedOrderId", input.ReceivedOrderID)
	return &result, nil
}

// RunStockAuditSequence runs one stock audit pass and returns the low stock count.
func RunStockAuditSequence(ctx workflow.Context) (int, error) {
	ctx = workflow.WithActivityOptions(ctx, activityOptions())
	var low int
	if err := workflow.ExecuteActivity(ctx, procurementactivities.AuditStockActivityName).Get(ctx, &low); err != nil {
		workflow.GetLogger(ctx).Error("stock audit sequence failed", "error", err)
		return 0, err
	}
	return low, nil
}
