package stationserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	suppliermapper "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/adapters/http/mapper"
	supplierports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/ports"
)

// SuppliersAPI manages the supplier catalog and supplier sessions.
type SuppliersAPI struct {
	service supplierports.Service
}

// NewSuppliersAPI creates a SuppliersAPI backed by the supplier service.
func NewSuppliersAPI(service supplierports.Service) SuppliersAPI {
	return SuppliersAPI{service: service}
}

// Post /api/suppliers
// Registers a supplier together with its portal credential.
func (api *SuppliersAPI) Register(c *gin.Context) {
	var payload suppliermapper.RegisterSupplier
	if !bindJSON(c, &payload) {
		return
	}
	supplier, err := api.service.Register(c.Request.Context(), suppliermapper.ToRegisterInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, suppliermapper.FromDomainSupplier(supplier))
}

// Get /api/suppliers
func (api *SuppliersAPI) List(c *gin.Context) {
	suppliers, err := api.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliermapper.FromDomainSuppliers(suppliers))
}

// Post /api/supplierRoutes/login
func (api *SuppliersAPI) Login(c *gin.Context) {
	var payload suppliermapper.Credentials
	if !bindJSON(c, &payload) {
		return
	}
	result, err := api.service.Login(c.Request.Context(), suppliermapper.ToLoginInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliermapper.FromLoginResult(result))
}
