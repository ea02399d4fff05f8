package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nvdekay/stock-master-sub000/internal/application/auth"
	"github.com/nvdekay/stock-master-sub000/internal/application/orders"
	"github.com/nvdekay/stock-master-sub000/internal/application/reconcile"
	"github.com/nvdekay/stock-master-sub000/internal/application/reports"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	EnrichUC     *orders.EnrichUseCase
	TransitionUC *orders.TransitionUseCase
	ReconcileUC  *reconcile.UseCase
	OverviewUC   *reports.OverviewUseCase
	PDFUC        *reports.PDFUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders (protegido). La validación fina por rol y estado vive en la
	// tabla del ciclo de vida; aquí solo se excluye al comprador de la
	// reconciliación.
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.EnrichUC, deps.TransitionUC, deps.ReconcileUC)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Post("/:id/transition", orderHandler.Transition)
	ordersGroup.Post("/:id/reconcile",
		RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff),
		orderHandler.Reconcile)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.OverviewUC, deps.PDFUC)
	reportsGroup.Get("/overview", reportHandler.GetOverview)
	reportsGroup.Get("/overview/pdf", reportHandler.GetOverviewPDF)
}
