package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/audit"
	"github.com/BruksfildServices01/salon-erp/internal/config"
	"github.com/BruksfildServices01/salon-erp/internal/handlers"
	"github.com/BruksfildServices01/salon-erp/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/salon-erp/internal/infra/repository"
	"github.com/BruksfildServices01/salon-erp/internal/infra/storage"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-erp/internal/usecase/appointment"
	ucInventory "github.com/BruksfildServices01/salon-erp/internal/usecase/inventory"
	ucSale "github.com/BruksfildServices01/salon-erp/internal/usecase/sale"
)

// Deps carries the singletons built in main. Cache, Store and Payments are
// optional: a nil Cache means no caching, nil Store and Payments disable
// image uploads and payment links.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Audit    audit.Sink
	Cache    cache.Cache
	Store    storage.Store
	Payments ucSale.PaymentGateway
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	db, cfg := d.DB, d.Config

	if d.Audit == nil {
		d.Audit = audit.Discard{}
	}
	if d.Cache == nil {
		d.Cache = cache.Noop{}
	}

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	inventoryRepo := infraRepo.NewInventoryGormRepository(db)
	saleRepo := infraRepo.NewSaleGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit),
		ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, d.Audit),
		ucAppointment.NewListAppointments(appointmentRepo),
		ucAppointment.NewGetAppointment(appointmentRepo),
	)

	inventoryHandler := handlers.NewInventoryHandler(
		ucInventory.NewAdjustStock(inventoryRepo, d.Audit),
		ucInventory.NewTransferStock(inventoryRepo, d.Audit),
		ucInventory.NewListStock(inventoryRepo),
		cfg.LowStockThreshold,
	)

	saleHandler := handlers.NewSaleHandler(
		ucSale.NewCreateSale(saleRepo, d.Audit),
		ucSale.NewListSales(saleRepo),
		ucSale.NewCreatePaymentLink(saleRepo, d.Payments, d.Audit),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	locationHandler := handlers.NewLocationHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db, d.Cache)
	productHandler := handlers.NewProductHandler(db, d.Store)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	operatorHandler := handlers.NewOperatorHandler(db, d.Audit)

	r.GET("/health", operatorHandler.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/status", operatorHandler.Status)
		api.POST("/reset-locations", operatorHandler.ResetLocations)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, db))
		{
			secured.GET("/me", authHandler.Me)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.GET("/inventory", inventoryHandler.List)
			secured.GET("/inventory/low-stock", inventoryHandler.LowStock)
			secured.GET("/inventory/movements", inventoryHandler.Movements)
			secured.POST("/inventory/adjust", inventoryHandler.Adjust)
			secured.POST("/inventory/transfer", inventoryHandler.Transfer)

			secured.GET("/sales", saleHandler.List)
			secured.POST("/sales", saleHandler.Create)
			secured.GET("/sales/:id", saleHandler.Get)
			secured.POST("/sales/:id/payment-link", saleHandler.PaymentLink)
			secured.GET("/reports/sales-summary", saleHandler.Summary)

			secured.GET("/locations", locationHandler.List)
			secured.GET("/staff", staffHandler.List)
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/service-categories", catalogHandler.ListCategories)
			secured.GET("/services", catalogHandler.ListServices)
			secured.GET("/products", productHandler.List)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				admin.POST("/locations", locationHandler.Create)
				admin.POST("/staff", staffHandler.Create)
				admin.POST("/service-categories", catalogHandler.CreateCategory)
				admin.POST("/services", catalogHandler.CreateService)
				admin.POST("/products", productHandler.Create)
				admin.POST("/products/:id/image", productHandler.UploadImage)

				admin.GET("/audit-logs", auditLogsHandler.List)
				admin.GET("/test-db", operatorHandler.TestDB)
				admin.POST("/delete-duplicates", operatorHandler.DeleteDuplicates)
			}
		}
	}
}
