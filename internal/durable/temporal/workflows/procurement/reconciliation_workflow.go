package procurement

import (
	"go.temporal.io/sdk/workflow"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/durable/temporal/sequences"
)

const (
	// ReconciliationWorkflowName is the public identifier for registering the workflow.
	ReconciliationWorkflowName = "procurement.workflows.Reconciliation"
	// StockAuditWorkflowName identifies the periodic stock audit workflow.
	StockAuditWorkflowName = "procurement.workflows.StockAudit"
	// TaskQueue is the queue consumed by the worker processing procurement workflows.
	TaskQueue = "PROCUREMENT"
)

// ReconciliationWorkflowInput captures the payload needed to add a received order to inventory.
type ReconciliationWorkflowInput struct {
	Command types.AddToInventoryInput
	TraceID string
}

// ReconciliationWorkflow durably applies a received order to inventory.
func ReconciliationWorkflow(ctx workflow.Context, input ReconciliationWorkflowInput) (*types.ReconciliationResult, error) {
	logger := workflow.GetLogger(ctx)
	id := input.Command.ReceivedOrderID
	logger.Info("ReconciliationWorkflow started", withTraceID(input.TraceID, "receivedOrderId", id)...)
	result, err := sequences.RunReconciliationSequence(ctx, input.Command)
	if err != nil {
		logger.Error("ReconciliationWorkflow failed", withTraceID(input.TraceID, "receivedOrderId", id, "error", err)...)
		return nil, err
	}
	logger.Info("ReconciliationWorkflow completed", withTraceID(input.TraceID, "receivedOrderId", id)...)
	return result, nil
}

// StockAuditWorkflow publishes StockLow for every item under its reorder threshold.
func StockAuditWorkflow(ctx workflow.Context) (int, error) {
	low, err := sequences.RunStockAuditSequence(ctx)
	if err != nil {
		return 0, err
	}
	workflow.GetLogger(ctx).Info("StockAuditWorkflow completed", "lowStock", low)
	return low, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
