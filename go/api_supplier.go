package stationserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	procurementmapper "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/http/mapper"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	procurementports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/auth"
	apierrors "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/shared/errors"
)

// SupplierAPI is the supplier portal: orders addressed to the caller and their decisions.
type SupplierAPI struct {
	service procurementports.Service
}

// NewSupplierAPI creates a SupplierAPI backed by the procurement service.
func NewSupplierAPI(service procurementports.Service) SupplierAPI {
	return SupplierAPI{service: service}
}

// Get /api/supplierRoutes/orders
// Lists orders addressed to the authenticated supplier.
func (api *SupplierAPI) ListOrders(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplier, ok := supplierIdentity(c)
		if !ok {
			return
		}
		orders, err := api.service.ListSupplierOrders(c.Request.Context(), kind, supplier)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, procurementmapper.FromOrderList(orders, "No orders found for this supplier"))
	}
}

// Post /api/supplierRoutes/orders/:id/accept
// Confirms an order and records the delivery awaiting reconciliation.
func (api *SupplierAPI) AcceptOrder(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplier, ok := supplierIdentity(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		var payload procurementmapper.AcceptOrder
		if !bindJSON(c, &payload) {
			return
		}
		input := procurementmapper.ToAcceptInput(types.OrderRef{Kind: kind, ID: id}, supplier, payload)
		received, err := api.service.AcceptOrder(c.Request.Context(), input)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, procurementmapper.FromReceivedOrder(received))
	}
}

// Put /api/supplierRoutes/orders/:id/reject
func (api *SupplierAPI) RejectOrder(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplier, ok := supplierIdentity(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		input := types.RejectOrderInput{OrderRef: types.OrderRef{Kind: kind, ID: id}, Supplier: supplier}
		order, err := api.service.RejectOrder(c.Request.Context(), input)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, procurementmapper.FromOrder(order))
	}
}

func supplierIdentity(c *gin.Context) (types.SupplierIdentity, bool) {
	identity, ok := auth.IdentityFrom(c)
	if !ok || identity.Role != auth.RoleSupplier {
		respondProblem(c, apierrors.ErrUnauthorized.WithDetail("supplier session required"))
		return types.SupplierIdentity{}, false
	}
	return types.SupplierIdentity{SupplierID: identity.Subject, Email: identity.Email}, true
}
