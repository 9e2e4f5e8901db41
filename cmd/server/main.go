package main

import (
	"fmt"
	"log"

	"shiprecon/internal/config"
	"shiprecon/internal/handler"
	"shiprecon/internal/repository/postgres"
	"shiprecon/internal/router"
	"shiprecon/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	mappingRepo := postgres.NewMappingRepo(db)
	shipmentRepo := postgres.NewShipmentRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	userRepo := postgres.NewUserRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	mappingSvc := service.NewMappingService(mappingRepo)
	shipmentSvc := service.NewShipmentService(shipmentRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo)
	reconSvc := service.NewReconService(shipmentRepo, invoiceRepo)
	importSvc := service.NewImportService(mappingRepo, mappingSvc, shipmentSvc, invoiceSvc, &cfg.Upload)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	mappingH := handler.NewMappingHandler(mappingSvc, importSvc)
	shipmentH := handler.NewShipmentHandler(shipmentSvc, importSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, importSvc)
	reconH := handler.NewReconHandler(reconSvc)
	dashboardH := handler.NewDashboardHandler(shipmentSvc, invoiceSvc, reconSvc, mappingSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, authH, mappingH, shipmentH, invoiceH, reconH, dashboardH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
