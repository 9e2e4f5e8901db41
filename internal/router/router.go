package router

import (
	"github.com/gin-gonic/gin"

	"shiprecon/internal/handler"
	"shiprecon/internal/middleware"
	"shiprecon/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	mappingH *handler.MappingHandler,
	shipmentH *handler.ShipmentHandler,
	invoiceH *handler.InvoiceHandler,
	reconH *handler.ReconHandler,
	dashboardH *handler.DashboardHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	v1.POST("/auth/login", authH.Login)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Reference schema
	mappings := protected.Group("/mappings")
	mappings.POST("/upload", mappingH.Upload)
	mappings.GET("", mappingH.List)
	mappings.GET("/status", mappingH.Status)

	// Shipments
	shipments := protected.Group("/shipments")
	shipments.POST("/upload", shipmentH.Upload)
	shipments.GET("", shipmentH.List)
	shipments.GET("/stats", shipmentH.Stats)
	shipments.GET("/:orderCode", shipmentH.GetByOrderCode)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("/upload", invoiceH.Upload)
	invoices.GET("", invoiceH.List)
	invoices.GET("/stats", invoiceH.Stats)
	invoices.GET("/:id/orders", invoiceH.GetOrders)
	invoices.DELETE("/:id", invoiceH.Delete)

	// Reconciliation
	recon := protected.Group("/reconciliation")
	recon.GET("/report", reconH.Report)
	recon.GET("/missing", reconH.MissingOrders)
	recon.GET("/missing/export", reconH.ExportMissingOrders)

	// Dashboard
	protected.GET("/dashboard", dashboardH.Get)

	return r
}
