package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
	procurementactivities "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/durable/temporal/activities/procurement"
	procurementworkflows "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/durable/temporal/workflows/procurement"
)

// ErrReconciliationInProgress is returned when the same delivery is already being reconciled.
var ErrReconciliationInProgress = errors.New("received order is already being added to inventory")

var (
	_ ports.WorkflowOrchestrator = (*TemporalProcurementWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineProcurementWorkflows)(nil)
)

// TemporalProcurementWorkflows starts procurement workflows on a Temporal cluster.
type TemporalProcurementWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalProcurementWorkflows wires a Temporal client into the orchestrator.
func NewTemporalProcurementWorkflows(c client.Client) *TemporalProcurementWorkflows {
	return &TemporalProcurementWorkflows{client: c, taskQueue: procurementworkflows.TaskQueue}
}

// AddToInventory runs reconciliation as a workflow keyed by the received order.
// A request that arrives while that workflow is still running is rejected with
// a conflict, matching the losers of the inline transaction.
func (o *TemporalProcurementWorkflows) AddToInventory(ctx context.Context, input types.AddToInventoryInput) (*types.ReconciliationResult, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal procurement workflows not configured")
	}
	options := client.StartWorkflowOptions{
		ID:                                       buildReconciliationWorkflowID(input),
		TaskQueue:                                o.taskQueue,
		WorkflowIDReusePolicy:                    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		procurementworkflows.ReconciliationWorkflowName,
		procurementworkflows.ReconciliationWorkflowInput{Command: input, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil, fmt.Errorf("%w: %w", application.ErrConflict, ErrReconciliationInProgress)
		}
		return nil, err
	}
	var result types.ReconciliationResult
	if err := run.Get(ctx, &result); err != nil {
		return nil, fromWorkflowError(err)
	}
	return &result, nil
}

// AuditStock runs one stock audit workflow and waits for it.
func (o *TemporalProcurementWorkflows) AuditStock(ctx context.Context) (int, error) {
	if o == nil || o.client == nil {
		return 0, errors.New("temporal procurement workflows not configured")
	}
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("stock-audit-%d", time.Now().UTC().Unix()),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(ctx, options, procurementworkflows.StockAuditWorkflowName)
	if err != nil {
		return 0, err
	}
	var low int
	if err := run.Get(ctx, &low); err != nil {
		return 0, err
	}
	return low, nil
}

// InlineProcurementWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineProcurementWorkflows struct {
	service ports.Service
}

// NewInlineProcurementWorkflows wraps the procurement service for synchronous execution.
func NewInlineProcurementWorkflows(service ports.Service) *InlineProcurementWorkflows {
	return &InlineProcurementWorkflows{service: service}
}

// AddToInventory delegates to the application service without durable orchestration.
func (o *InlineProcurementWorkflows) AddToInventory(ctx context.Context, input types.AddToInventoryInput) (*types.ReconciliationResult, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline procurement workflows not configured")
	}
	return o.service.AddToInventory(ctx, input)
}

// AuditStock delegates to the application service.
func (o *InlineProcurementWorkflows) AuditStock(ctx context.Context) (int, error) {
	if o == nil || o.service == nil {
		return 0, errors.New("inline procurement workflows not configured")
	}
	low, err := o.service.AuditStock(ctx)
	if err != nil {
		return 0, err
	}
	return len(low), nil
}

func buildReconciliationWorkflowID(input types.AddToInventoryInput) string {
	return fmt.Sprintf("reconcile-%s-%d", input.Kind, input.ReceivedOrderID)
}

// fromWorkflowError restores the application error classes flattened by the activity.
func fromWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type() {
	case procurementactivities.ErrTypeInvalidInput:
		var fields map[string]string
		if appErr.HasDetails() && appErr.Details(&fields) == nil && len(fields) > 0 {
			return &application.ValidationError{Fields: fields}
		}
		return fmt.Errorf("%w: %s", application.ErrInvalidInput, appErr.Error())
	case procurementactivities.ErrTypeAlreadyReconciled:
		return fmt.Errorf("%w: %w", application.ErrConflict, domain.ErrAlreadyReconciled)
	case procurementactivities.ErrTypeConflict:
		return fmt.Errorf("%w: %s", application.ErrConflict, appErr.Error())
	case procurementactivities.ErrTypeForbidden:
		return fmt.Errorf("%w: %s", application.ErrForbidden, appErr.Error())
	case procurementactivities.ErrTypeNotFound:
		return fmt.Errorf("%w: %s", ports.ErrNotFound, appErr.Error())
	default:
		return err
	}
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
