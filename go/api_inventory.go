package stationserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	procurementmapper "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/adapters/http/mapper"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	procurementports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

// InventoryAPI exposes live stock per kind.
type InventoryAPI struct {
	service  procurementports.Service
	policies domain.Policies
}

// NewInventoryAPI creates an InventoryAPI.
func NewInventoryAPI(service procurementports.Service, policies domain.Policies) InventoryAPI {
	if policies == nil {
		policies = domain.DefaultPolicies()
	}
	return InventoryAPI{service: service, policies: policies}
}

// Get /api/inventory/fuel
func (api *InventoryAPI) List(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := api.service.ListInventory(c.Request.Context(), kind)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, procurementmapper.FromInventoryItems(items, api.policies))
	}
}

// Get /api/orders/low-stock
// Lists items at or under the kind's reorder threshold.
func (api *InventoryAPI) LowStock(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := api.service.LowStock(c.Request.Context(), kind)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, procurementmapper.FromInventoryItems(items, api.policies))
	}
}

// Post /api/inventory/fuel/:id/sales
func (api *InventoryAPI) RecordSale(kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		var payload procurementmapper.RecordSale
		if !bindJSON(c, &payload) {
			return
		}
		input := types.RecordSaleInput{Kind: kind, InventoryItemID: id, Quantity: payload.Quantity}
		result, err := api.service.RecordSale(c.Request.Context(), input)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, procurementmapper.FromSale(result, api.policies))
	}
}
