package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acrilico-stock-api/internal/application/auth"
	"github.com/jhoicas/acrilico-stock-api/internal/application/chat"
	"github.com/jhoicas/acrilico-stock-api/internal/application/inventory"
	"github.com/jhoicas/acrilico-stock-api/internal/application/live"
	"github.com/jhoicas/acrilico-stock-api/internal/application/reporting"
	"github.com/jhoicas/acrilico-stock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SheetUC     *usecase.SheetUseCase
	ReconcileUC *inventory.ReconcileStockUseCase
	ChatUC      *chat.ChatUseCase
	ReportUC    *reporting.ReportUseCase
	ReportPDF   MonthlyReportPDFGenerator
	Hub         *WSHub
	Mirror      *live.Mirror
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/anonymous", authHandler.Anonymous)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Láminas: CRUD + reconciliación de stock
	sheets := protected.Group("/sheets")
	sheetHandler := NewSheetHandler(deps.SheetUC, deps.ReconcileUC)
	sheets.Get("/", sheetHandler.List)
	sheets.Post("/receive", sheetHandler.Receive)
	sheets.Get("/:id", sheetHandler.GetByID)
	sheets.Post("/:id/adjust", sheetHandler.Adjust)
	sheets.Put("/:id/location", sheetHandler.UpdateLocation)
	sheets.Delete("/:id", sheetHandler.Delete)

	// Chat
	chatGroup := protected.Group("/chat")
	chatHandler := NewChatHandler(deps.ChatUC)
	chatGroup.Get("/messages", chatHandler.History)
	chatGroup.Post("/messages", chatHandler.Post)

	// Historial de movimientos y reportes
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDF)
	protected.Get("/movements", reportHandler.Movements)
	reports := protected.Group("/reports")
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/monthly/pdf", reportHandler.MonthlyPDF)

	// Export CSV
	exportGroup := protected.Group("/export")
	exportHandler := NewExportHandler(deps.SheetUC)
	exportGroup.Get("/csv", exportHandler.CSV)

	// Espejo en vivo (token por query param)
	wsHandler := NewWSHandler(deps.Hub, deps.Mirror, deps.JWTSecret)
	app.Get("/ws", wsHandler.Upgrade)
}
