package stationserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	procurementmapper "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/http/mapper"
	procurementapp "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	procurementports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
	apierrors "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/shared/errors"
)

// OrdersAPI serves the station side of procurement: placement, listings and reconciliation.
type OrdersAPI struct {
	service   procurementports.Service
	workflows procurementports.WorkflowOrchestrator
	policies  domain.Policies
}

// NewOrdersAPI creates an OrdersAPI. workflows may be nil, in which case
// reconciliation runs on the service directly.
func NewOrdersAPI(service procurementports.Service, workflows procurementports.WorkflowOrchestrator, policies domain.Policies) OrdersAPI {
	if policies == nil {
		policies = domain.DefaultPolicies()
	}
	return OrdersAPI{service: service, workflows: workflows, policies: policies}
}

// Post /api/orders/place-order
// Reorders a stocked item that ran low.
func (api *OrdersAPI) PlaceLowStockOrder(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload procurementmapper.PlaceOrder
		if !bindJSON(c, &payload) {
			return
		}
		order, err := api.service.PlaceLowStockOrder(c.Request.Context(), procurementmapper.ToLowStockInput(kind, payload))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, procurementmapper.FromOrder(order))
	}
}

// Post /api/orders/place-new-item-order
// Orders an item that is not stocked yet.
func (api *OrdersAPI) PlaceNewItemOrder(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload procurementmapper.PlaceOrder
		if !bindJSON(c, &payload) {
			return
		}
		order, err := api.service.PlaceNewItemOrder(c.Request.Context(), procurementmapper.ToNewItemInput(kind, payload))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, procurementmapper.FromOrder(order))
	}
}

// Post /api/ordersShop/place-order
// Shop placement takes both entry modes on one route: a payload naming an
// inventory item reorders it, anything else is a new-item order.
func (api *OrdersAPI) PlaceShopOrder(c *gin.Context) {
	var payload procurementmapper.PlaceOrder
	if !bindJSON(c, &payload) {
		return
	}
	var (
		order *domain.Order
		err   error
	)
	if payload.IsLowStock() {
		order, err = api.service.PlaceLowStockOrder(c.Request.Context(), procurementmapper.ToLowStockInput(domain.KindShop, payload))
	} else {
		order, err = api.service.PlaceNewItemOrder(c.Request.Context(), procurementmapper.ToNewItemInput(domain.KindShop, payload))
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, procurementmapper.FromOrder(order))
}

// Get /api/orders
func (api *OrdersAPI) ListOrders(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := api.service.ListOrders(c.Request.Context(), kind)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, procurementmapper.FromOrderList(orders, "No orders placed yet"))
	}
}

// Delete /api/orders/:id
func (api *OrdersAPI) DeleteOrder(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		if err := api.service.DeleteOrder(c.Request.Context(), types.OrderRef{Kind: kind, ID: id}); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Get /api/orders/received-orders
func (api *OrdersAPI) ListReceivedOrders(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		received, err := api.service.ListReceivedOrders(c.Request.Context(), kind)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, procurementmapper.FromReceivedOrders(received))
	}
}

// Post /api/orders/received-orders/:id/addToInventory
// Applies a delivery to live stock under the kind's reconcile policy.
func (api *OrdersAPI) AddToInventory(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		var payload procurementmapper.AddToInventory
		if !bindJSON(c, &payload) {
			return
		}
		input := types.AddToInventoryInput{Kind: kind, ReceivedOrderID: id, Quantity: payload.Quantity}
		result, err := api.reconcile(c.Request.Context(), input)
		if err != nil {
			if errors.Is(err, procurementapp.ErrConflict) {
				respondProblem(c, apierrors.NewConflictProblem(conflictTemplate(err), "receivedOrder", id, err.Error()))
				return
			}
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, procurementmapper.FromReconciliation(result, api.policies))
	}
}

func (api *OrdersAPI) reconcile(ctx context.Context, input types.AddToInventoryInput) (*types.ReconciliationResult, error) {
	if api.workflows != nil {
		return api.workflows.AddToInventory(ctx, input)
	}
	return api.service.AddToInventory(ctx, input)
}
