package stationserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/auth"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
	// Roles lists the roles allowed through. Empty means public.
	Roles []auth.Role
}

// ApiHandleFunctions groups the handlers of every API area.
type ApiHandleFunctions struct {
	OrdersAPI    OrdersAPI
	SupplierAPI  SupplierAPI
	InventoryAPI InventoryAPI
	SuppliersAPI SuppliersAPI
	AuthAPI      AuthAPI
	// Tokens verifies bearer tokens on protected routes.
	Tokens *auth.Manager
}

var (
	staffRoles    = []auth.Role{auth.RoleAdmin, auth.RoleManager, auth.RoleWorker}
	orderingRoles = []auth.Role{auth.RoleAdmin, auth.RoleManager}
	adminRoles    = []auth.Role{auth.RoleAdmin}
	supplierRoles = []auth.Role{auth.RoleSupplier}
)

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		chain := []gin.HandlerFunc{}
		if len(route.Roles) > 0 {
			chain = append(chain, auth.Authenticate(handleFunctions.Tokens), auth.RequireRole(route.Roles...))
		}
		chain = append(chain, route.HandlerFunc)
		router.Handle(route.Method, route.Pattern, chain...)
	}
	return router
}

// DefaultHandleFunc is the default handler for routes without an implementation.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(h ApiHandleFunctions) []Route {
	fuel, shop := domain.KindFuel, domain.KindShop
	return []Route{
		{"Healthz", http.MethodGet, "/healthz", Healthz, nil},

		{"StaffLogin", http.MethodPost, "/api/auth/login", h.AuthAPI.Login, nil},
		{"CreateStaffUser", http.MethodPost, "/api/auth/users", h.AuthAPI.CreateUser, adminRoles},
		{"ListStaffUsers", http.MethodGet, "/api/auth/users", h.AuthAPI.ListUsers, adminRoles},
		{"DeleteStaffUser", http.MethodDelete, "/api/auth/users/:id", h.AuthAPI.DeleteUser, adminRoles},

		{"RegisterSupplier", http.MethodPost, "/api/suppliers", h.SuppliersAPI.Register, adminRoles},
		{"ListSuppliers", http.MethodGet, "/api/suppliers", h.SuppliersAPI.List, staffRoles},
		{"SupplierLogin", http.MethodPost, "/api/supplierRoutes/login", h.SuppliersAPI.Login, nil},

		{"PlaceFuelOrder", http.MethodPost, "/api/orders/place-order", h.OrdersAPI.PlaceLowStockOrder(fuel), orderingRoles},
		{"PlaceFuelNewItemOrder", http.MethodPost, "/api/orders/place-new-item-order", h.OrdersAPI.PlaceNewItemOrder(fuel), orderingRoles},
		{"ListFuelOrders", http.MethodGet, "/api/orders", h.OrdersAPI.ListOrders(fuel), staffRoles},
		{"FuelLowStock", http.MethodGet, "/api/orders/low-stock", h.InventoryAPI.LowStock(fuel), staffRoles},
		{"ListFuelReceivedOrders", http.MethodGet, "/api/orders/received-orders", h.OrdersAPI.ListReceivedOrders(fuel), staffRoles},
		{"AddFuelToInventory", http.MethodPost, "/api/orders/received-orders/:id/addToInventory", h.OrdersAPI.AddToInventory(fuel), orderingRoles},
		{"DeleteFuelOrder", http.MethodDelete, "/api/orders/:id", h.OrdersAPI.DeleteOrder(fuel), adminRoles},

		{"PlaceShopOrder", http.MethodPost, "/api/ordersShop/place-order", h.OrdersAPI.PlaceShopOrder, orderingRoles},
		{"ListShopOrders", http.MethodGet, "/api/ordersShop", h.OrdersAPI.ListOrders(shop), staffRoles},
		{"ShopLowStock", http.MethodGet, "/api/ordersShop/low-stock", h.InventoryAPI.LowStock(shop), staffRoles},
		{"ListShopReceivedOrders", http.MethodGet, "/api/ordersShop/received-orders", h.OrdersAPI.ListReceivedOrders(shop), staffRoles},
		{"AddShopToInventory", http.MethodPost, "/api/ordersShop/received-orders/:id/add-to-inventory", h.OrdersAPI.AddToInventory(shop), orderingRoles},
		{"DeleteShopOrder", http.MethodDelete, "/api/ordersShop/:id", h.OrdersAPI.DeleteOrder(shop), adminRoles},

		{"ListSupplierFuelOrders", http.MethodGet, "/api/supplierRoutes/orders", h.SupplierAPI.ListOrders(fuel), supplierRoles},
		{"ListSupplierShopOrders", http.MethodGet, "/api/supplierRoutes/shop-orders", h.SupplierAPI.ListOrders(shop), supplierRoles},
		{"AcceptFuelOrder", http.MethodPost, "/api/supplierRoutes/orders/:id/accept", h.SupplierAPI.AcceptOrder(fuel), supplierRoles},
		{"AcceptShopOrder", http.MethodPost, "/api/supplierRoutes/shop-orders/:id/accept", h.SupplierAPI.AcceptOrder(shop), supplierRoles},
		{"RejectFuelOrder", http.MethodPut, "/api/supplierRoutes/orders/:id/reject", h.SupplierAPI.RejectOrder(fuel), supplierRoles},
		{"RejectShopOrder", http.MethodPut, "/api/supplierRoutes/shop-orders/:id/reject", h.SupplierAPI.RejectOrder(shop), supplierRoles},

		{"ListFuelInventory", http.MethodGet, "/api/inventory/fuel", h.InventoryAPI.List(fuel), staffRoles},
		{"ListShopInventory", http.MethodGet, "/api/inventory/shop", h.InventoryAPI.List(shop), staffRoles},
		{"RecordFuelSale", http.MethodPost, "/api/inventory/fuel/:id/sales", h.InventoryAPI.RecordSale(fuel), staffRoles},
		{"RecordShopSale", http.MethodPost, "/api/inventory/shop/:id/sales", h.InventoryAPI.RecordSale(shop), staffRoles},
	}
}

// Healthz reports liveness.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
