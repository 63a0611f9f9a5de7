// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foamstock/internal/delivery/http/middleware"
	"foamstock/internal/delivery/http/router/handler"
	"foamstock/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	ProductHandler   *handler.ProductHandler
	SupplierHandler  *handler.SupplierHandler
	CustomerHandler  *handler.CustomerHandler
	SaleHandler      *handler.SaleHandler
	InventoryHandler *handler.InventoryHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	productHandler   *handler.ProductHandler
	supplierHandler  *handler.SupplierHandler
	customerHandler  *handler.CustomerHandler
	saleHandler      *handler.SaleHandler
	inventoryHandler *handler.InventoryHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		userHandler:      params.UserHandler,
		productHandler:   params.ProductHandler,
		supplierHandler:  params.SupplierHandler,
		customerHandler:  params.CustomerHandler,
		saleHandler:      params.SaleHandler,
		inventoryHandler: params.InventoryHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// All business routes require authentication. Permission and role
	// checks are applied per group below.
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	manageInventory := r.authMiddleware.RequirePermission(entity.PermissionManageInventory)
	viewReports := r.authMiddleware.RequirePermission(entity.PermissionViewReports)
	ownerOnly := r.authMiddleware.RequireRole(entity.RoleBusinessOwner)

	// Staff administration is reserved for the business owner.
	userGroup := api.Group("/users")
	userGroup.Use(ownerOnly)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.PATCH("/:id/permissions", r.userHandler.PatchPermissions)
	}

	// Catalog reads are open to any authenticated staff. Writes require
	// inventory management; soft-deletion stays with the owner.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/categories/all", r.productHandler.Categories)
		productGroup.GET("/mattress/thickness-options", r.productHandler.MattressThicknessOptions)
		productGroup.GET("/mattress/density-options", r.productHandler.MattressDensityOptions)
		productGroup.GET("/:id", r.productHandler.GetProduct)

		productGroup.POST("", r.productHandler.CreateProduct, manageInventory)
		productGroup.PATCH("/:id", r.productHandler.UpdateProduct, manageInventory)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, ownerOnly)
		productGroup.PATCH("/:id/inventory", r.productHandler.UpdateThresholds, manageInventory)
	}

	supplierGroup := api.Group("/suppliers")
	supplierGroup.Use(r.authMiddleware.RequirePermission(entity.PermissionManageSuppliers))
	{
		supplierGroup.GET("", r.supplierHandler.ListSuppliers)
		supplierGroup.POST("", r.supplierHandler.CreateSupplier)
		supplierGroup.GET("/:id", r.supplierHandler.GetSupplier)
		supplierGroup.PATCH("/:id", r.supplierHandler.UpdateSupplier)
		supplierGroup.DELETE("/:id", r.supplierHandler.DeleteSupplier)
	}

	customerGroup := api.Group("/customers")
	customerGroup.Use(r.authMiddleware.RequirePermission(entity.PermissionManageCustomers))
	{
		customerGroup.GET("", r.customerHandler.ListCustomers)
		customerGroup.POST("", r.customerHandler.CreateCustomer)
		customerGroup.GET("/top", r.customerHandler.TopCustomers)
		customerGroup.GET("/:id", r.customerHandler.GetCustomer)
		customerGroup.PATCH("/:id", r.customerHandler.UpdateCustomer)
		customerGroup.DELETE("/:id", r.customerHandler.DeleteCustomer)
		customerGroup.GET("/:id/purchases", r.customerHandler.PurchaseHistory)
	}

	// The daily summary is a reporting read, gated separately from the
	// sale-writing permission.
	api.GET("/sales/summary/daily", r.saleHandler.GetDailySummary, viewReports)

	saleGroup := api.Group("/sales")
	saleGroup.Use(r.authMiddleware.RequirePermission(entity.PermissionManageSales))
	{
		saleGroup.POST("", r.saleHandler.CreateSale)
		saleGroup.GET("", r.saleHandler.ListSales)
		saleGroup.GET("/:id", r.saleHandler.GetSale)
		saleGroup.PATCH("/:id", r.saleHandler.ReviseSale)
		saleGroup.PATCH("/:id/status", r.saleHandler.ChangeStatus)
	}

	inventoryGroup := api.Group("/inventory")
	inventoryGroup.Use(manageInventory)
	{
		inventoryGroup.GET("", r.inventoryHandler.ListInventory)
		inventoryGroup.GET("/alerts/low-stock", r.inventoryHandler.LowStockAlerts)
		inventoryGroup.GET("/:id", r.inventoryHandler.GetStock)
		inventoryGroup.PATCH("/:id/stock", r.inventoryHandler.SetStock)
		inventoryGroup.PATCH("/:id/adjust", r.inventoryHandler.AdjustStock)
		inventoryGroup.GET("/:id/adjustments", r.inventoryHandler.ListAdjustments)
	}

	dashboardGroup := api.Group("/dashboard")
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.GetStats, viewReports)
		dashboardGroup.GET("/sales-chart", r.dashboardHandler.GetSalesChart, viewReports)
		dashboardGroup.GET("/inventory-chart", r.dashboardHandler.GetInventoryChart, manageInventory)
	}
}
