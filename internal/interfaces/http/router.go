package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vapetrack/kiosk-api/internal/application/auth"
	"github.com/vapetrack/kiosk-api/internal/application/inventory"
	"github.com/vapetrack/kiosk-api/internal/application/sales"
	"github.com/vapetrack/kiosk-api/internal/application/usecase"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
)

// RouterDeps everything the router wires into handlers.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	KioskUC     *usecase.KioskUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *inventory.SessionUseCase
	SaleUC      *sales.UseCase
	ExpenseUC   *usecase.ExpenseUseCase
	ShiftUC     *usecase.ShiftUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registers the API routes. Everything except auth requires a Bearer
// token; kiosk management, schedule writes and the dashboard are admin only.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Kiosks
	kiosks := protected.Group("/kiosks")
	kioskHandler := NewKioskHandler(deps.KioskUC)
	kiosks.Get("/", kioskHandler.List)
	kiosks.Get("/:id", kioskHandler.GetByID)
	kiosks.Post("/", adminOnly, kioskHandler.Create)
	kiosks.Put("/:id", adminOnly, kioskHandler.Update)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Post("/import", adminOnly, productHandler.ImportCSV)
	products.Get("/export", productHandler.ExportCSV)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventory sessions
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Put("/:id/items/:itemId", inventoryHandler.RecordCount)
	invGroup.Post("/:id/complete", inventoryHandler.Complete)
	invGroup.Post("/:id/cancel", inventoryHandler.Cancel)
	invGroup.Delete("/:id", inventoryHandler.Delete)

	// Sales
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Expenses
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", adminOnly, expenseHandler.Delete)

	// Shifts
	shifts := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Get("/", shiftHandler.List)
	shifts.Post("/", adminOnly, shiftHandler.Create)
	shifts.Put("/:id", adminOnly, shiftHandler.Update)
	shifts.Delete("/:id", adminOnly, shiftHandler.Delete)

	// Dashboard (admin)
	dashboard := protected.Group("/dashboard", adminOnly)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Overview)
}
