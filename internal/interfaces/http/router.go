package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comandaki/comanda-api/internal/application/auth"
	"github.com/comandaki/comanda-api/internal/application/billing"
	"github.com/comandaki/comanda-api/internal/application/orders"
	"github.com/comandaki/comanda-api/internal/application/reporting"
	"github.com/comandaki/comanda-api/internal/application/stock"
	"github.com/comandaki/comanda-api/internal/application/usecase"
	"github.com/comandaki/comanda-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	MenuUC      *usecase.MenuUseCase
	TableUC     *usecase.TableUseCase
	PromotionUC *usecase.PromotionUseCase
	SettingsUC  *usecase.SettingsUseCase
	OrdersUC    *orders.UseCase
	CheckoutUC  *billing.CheckoutUseCase
	ImportUC    *billing.ImportInvoiceUseCase
	StockUC     *stock.UseCase
	ReportUC    *reporting.UseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Carrossel de promoções (público: consumido pelo cardápio digital)
	promotionHandler := NewPromotionHandler(deps.PromotionUC)
	api.Get("/promotions/active", promotionHandler.ListActive)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)
	caixa := RequireRole(entity.RoleAdmin, entity.RoleCaixa)

	// Cardápio
	menu := protected.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Post("/categories", admin, menuHandler.CreateCategory)
	menu.Get("/categories", menuHandler.ListCategories)
	menu.Delete("/categories/:id", admin, menuHandler.DeleteCategory)
	menu.Post("/items", admin, menuHandler.CreateItem)
	menu.Get("/items", menuHandler.ListItems)
	menu.Get("/items/:id", menuHandler.GetItem)
	menu.Put("/items/:id", admin, menuHandler.UpdateItem)
	menu.Delete("/items/:id", admin, menuHandler.DeleteItem)

	// Mesas
	tables := protected.Group("/tables")
	tableHandler := NewTableHandler(deps.TableUC)
	tables.Post("/", admin, tableHandler.Create)
	tables.Get("/", tableHandler.List)
	tables.Post("/:id/closing", tableHandler.MarkClosing)

	// Comandas
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrdersUC, deps.CheckoutUC)
	ordersGroup.Post("/", orderHandler.Open)
	ordersGroup.Get("/", orderHandler.ListOpen)
	ordersGroup.Get("/:id", orderHandler.Get)
	ordersGroup.Post("/:id/items", orderHandler.AddItem)
	ordersGroup.Delete("/:id/items/:itemId", orderHandler.RemoveItem)
	ordersGroup.Post("/:id/cancel", caixa, orderHandler.Cancel)
	ordersGroup.Post("/:id/close", caixa, orderHandler.Close)

	// Estoque
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/items", admin, stockHandler.CreateItem)
	stockGroup.Get("/items", stockHandler.ListItems)
	stockGroup.Get("/items/alerts", stockHandler.ListBelowMinimum)
	stockGroup.Get("/items/:id", stockHandler.GetItem)
	stockGroup.Put("/items/:id", admin, stockHandler.UpdateItem)
	stockGroup.Delete("/items/:id", admin, stockHandler.DeleteItem)
	stockGroup.Get("/items/:id/movements", stockHandler.ListMovements)
	stockGroup.Post("/movements", caixa, stockHandler.RegisterMovement)

	// Notas de compra (NF-e)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.ImportUC)
	invoices.Post("/import", admin, invoiceHandler.Import)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.Get)

	// Promoções (gestão)
	promotions := protected.Group("/promotions")
	promotions.Post("/", admin, promotionHandler.Create)
	promotions.Get("/", promotionHandler.List)
	promotions.Put("/:id", admin, promotionHandler.Update)
	promotions.Delete("/:id", admin, promotionHandler.Delete)

	// Configurações
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/discount-limit", settingsHandler.GetDiscountLimit)
	settings.Put("/discount-limit", admin, settingsHandler.SetDiscountLimit)

	// Relatórios
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", caixa, reportHandler.Sales)
	reports.Get("/sales/pdf", caixa, reportHandler.SalesPDF)
}
