package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khakhra/business-manager/internal/application/auth"
	"github.com/khakhra/business-manager/internal/application/usecase"
	"github.com/khakhra/business-manager/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *usecase.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
	RawMaterialUC *usecase.RawMaterialUseCase
	OrderUC       *usecase.OrderUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	ProfitLossUC  *usecase.ProfitLossUseCase
	AnalyticsUC   *usecase.AnalyticsUseCase
	ReportUC      *usecase.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Cada grupo protegido exige además la
// pestaña correspondiente en la tabla de acceso por rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login y session públicos; logout requiere token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders
	orders := protected.Group("/orders", RequireTab(access.TabOrders))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Patch("/:id/payment", orderHandler.UpdatePayment)
	orders.Delete("/:id", orderHandler.Delete)

	// Inventory: productos e insumos comparten pestaña
	products := protected.Group("/products", RequireTab(access.TabInventory))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	materials := protected.Group("/raw-materials", RequireTab(access.TabInventory))
	materialHandler := NewRawMaterialHandler(deps.RawMaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Post("/", materialHandler.Create)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Customers
	customers := protected.Group("/customers", RequireTab(access.TabCustomers))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Expenses
	expenses := protected.Group("/expenses", RequireTab(access.TabExpenses))
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/categories", expenseHandler.Categories)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Profit & Loss
	plHandler := NewProfitLossHandler(deps.ProfitLossUC)
	protected.Get("/profit-loss", RequireTab(access.TabProfitLoss), plHandler.Statement)

	// Analytics y tablero. El tablero no tiene pestaña propia: lo ve
	// cualquier usuario autenticado.
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/analytics", RequireTab(access.TabAnalytics), analyticsHandler.Analytics)
	protected.Get("/dashboard", analyticsHandler.Dashboard)

	// Reports: cada descarga exige la pestaña de su dato de origen
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reports.Get("/orders/:id/invoice", RequireTab(access.TabOrders), reportHandler.OrderInvoice)
	reports.Get("/profit-loss", RequireTab(access.TabProfitLoss), reportHandler.ProfitLoss)
	reports.Get("/orders.xlsx", RequireTab(access.TabOrders), reportHandler.Orders)
	reports.Get("/inventory.xlsx", RequireTab(access.TabInventory), reportHandler.Inventory)
	reports.Get("/expenses.xlsx", RequireTab(access.TabExpenses), reportHandler.Expenses)
}
