package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/temporal"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/memory"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
	procurementactivities "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/durable/temporal/activities/procurement"
	procurementworkflows "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/durable/temporal/workflows/procurement"
)

func TestFromWorkflowError_RestoresApplicationErrors(t *testing.T) {
	cases := []struct {
		errType string
		want    error
	}{
		{procurementactivities.ErrTypeConflict, application.ErrConflict},
		{procurementactivities.ErrTypeAlreadyReconciled, domain.ErrAlreadyReconciled},
		{procurementactivities.ErrTypeForbidden, application.ErrForbidden},
		{procurementactivities.ErrTypeNotFound, ports.ErrNotFound},
		{procurementactivities.ErrTypeInvalidInput, application.ErrInvalidInput},
	}
	for _, tc := range cases {
		err := fromWorkflowError(temporal.NewNonRetryableApplicationError("boom", tc.errType, nil))
		require.ErrorIs(t, err, tc.want, tc.errType)
	}

	plain := errors.New("network down")
	require.Equal(t, plain, fromWorkflowError(plain))
}

func TestFromWorkflowError_KeepsValidationFields(t *testing.T) {
	wrapped := procurementactivities.Classify(&application.ValidationError{Fields: map[string]string{"quantity": "quantity must be greater than zero"}})
	err := fromWorkflowError(wrapped)
	var validation *application.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "quantity must be greater than zero", validation.Fields["quantity"])
}

func TestBuildReconciliationWorkflowID(t *testing.T) {
	id := buildReconciliationWorkflowID(types.AddToInventoryInput{Kind: domain.KindFuel, ReceivedOrderID: 7, Quantity: 1})
	require.Equal(t, "reconcile-fuel-7", id)
}

func TestInlineProcurementWorkflows(t *testing.T) {
	inline := NewInlineProcurementWorkflows(application.NewService(memory.NewStore(), nil))
	_, err := inline.AddToInventory(context.Background(), types.AddToInventoryInput{Kind: domain.KindFuel, ReceivedOrderID: 1, Quantity: 1})
	require.ErrorIs(t, err, ports.ErrNotFound)

	low, err := inline.AuditStock(context.Background())
	require.NoError(t, err)
	require.Zero(t, low)

	var missing *InlineProcurementWorkflows
	_, err = missing.AuditStock(context.Background())
	require.Error(t, err)
}

func reconcileOptions(id string) interface{} {
	return mock.MatchedBy(func(options client.StartWorkflowOptions) bool {
		return options.ID == id &&
			options.TaskQueue == procurementworkflows.TaskQueue &&
			options.WorkflowExecutionErrorWhenAlreadyStarted
	})
}

func TestTemporalAddToInventory_ReturnsWorkflowResult(t *testing.T) {
	temporalClient := mocks.NewClient(t)
	run := mocks.NewWorkflowRun(t)
	input := types.AddToInventoryInput{Kind: domain.KindShop, ReceivedOrderID: 7, Quantity: 50}

	temporalClient.On("ExecuteWorkflow", mock.Anything, reconcileOptions("reconcile-shop-7"),
		procurementworkflows.ReconciliationWorkflowName, mock.Anything).Return(run, nil).Once()
	run.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		result := args.Get(1).(*types.ReconciliationResult)
		result.Item = &domain.InventoryItem{ID: 3, Kind: domain.KindShop, ItemName: "Soap", Available: 70}
	}).Return(nil).Once()

	result, err := NewTemporalProcurementWorkflows(temporalClient).AddToInventory(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, int64(70), result.Item.Available)
}

func TestTemporalAddToInventory_RunningReconciliationIsConflict(t *testing.T) {
	temporalClient := mocks.NewClient(t)
	input := types.AddToInventoryInput{Kind: domain.KindFuel, ReceivedOrderID: 4, Quantity: 500}
	alreadyStarted := serviceerror.NewWorkflowExecutionAlreadyStarted("workflow execution already started", "", "run-1")

	temporalClient.On("ExecuteWorkflow", mock.Anything, reconcileOptions("reconcile-fuel-4"),
		procurementworkflows.ReconciliationWorkflowName, mock.Anything).Return(nil, alreadyStarted).Once()

	_, err := NewTemporalProcurementWorkflows(temporalClient).AddToInventory(context.Background(), input)
	require.ErrorIs(t, err, application.ErrConflict)
	require.ErrorIs(t, err, ErrReconciliationInProgress)
	temporalClient.AssertNotCalled(t, "GetWorkflow", mock.Anything, mock.Anything, mock.Anything)
}

func TestTemporalAddToInventory_RestoresReconciledConflict(t *testing.T) {
	temporalClient := mocks.NewClient(t)
	run := mocks.NewWorkflowRun(t)
	input := types.AddToInventoryInput{Kind: domain.KindShop, ReceivedOrderID: 9, Quantity: 5}

	temporalClient.On("ExecuteWorkflow", mock.Anything, reconcileOptions("reconcile-shop-9"),
		procurementworkflows.ReconciliationWorkflowName, mock.Anything).Return(run, nil).Once()
	run.On("Get", mock.Anything, mock.Anything).
		Return(temporal.NewNonRetryableApplicationError("already added", procurementactivities.ErrTypeAlreadyReconciled, nil)).Once()

	_, err := NewTemporalProcurementWorkflows(temporalClient).AddToInventory(context.Background(), input)
	require.ErrorIs(t, err, application.ErrConflict)
	require.ErrorIs(t, err, domain.ErrAlreadyReconciled)
}
