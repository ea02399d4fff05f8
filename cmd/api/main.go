package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nvdekay/stock-master-sub000/internal/application/auth"
	"github.com/nvdekay/stock-master-sub000/internal/application/orders"
	"github.com/nvdekay/stock-master-sub000/internal/application/reconcile"
	"github.com/nvdekay/stock-master-sub000/internal/application/reports"
	infrapdf "github.com/nvdekay/stock-master-sub000/internal/infrastructure/pdf"
	"github.com/nvdekay/stock-master-sub000/internal/infrastructure/rest"
	httpRouter "github.com/nvdekay/stock-master-sub000/internal/interfaces/http"
	"github.com/nvdekay/stock-master-sub000/pkg/config"
	"github.com/nvdekay/stock-master-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.BaseURL).
		Msg("iniciando aplicación")

	// Cliente del almacén de colecciones y adaptadores de repositorio
	storeClient := rest.NewClient(cfg.Store.BaseURL, cfg.Store.Timeout())
	orderRepo := rest.NewOrderRepository(storeClient)
	detailRepo := rest.NewOrderDetailRepository(storeClient)
	inventoryRepo := rest.NewInventoryRepository(storeClient)
	shipmentRepo := rest.NewShipmentRepository(storeClient)
	productRepo := rest.NewProductRepository(storeClient)
	warehouseRepo := rest.NewWarehouseRepository(storeClient)
	userRepo := rest.NewUserRepository(storeClient)
	enterpriseRepo := rest.NewEnterpriseRepository(storeClient)
	auditRepo := rest.NewAuditLogRepository(storeClient)

	// Casos de uso
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	enrichUC := orders.NewEnrichUseCase(orderRepo, detailRepo, userRepo, warehouseRepo, productRepo, shipmentRepo, enterpriseRepo)
	transitionUC := orders.NewTransitionUseCase(orderRepo, shipmentRepo, auditRepo)
	reconcileUC := reconcile.NewUseCase(orderRepo, detailRepo, inventoryRepo, auditRepo)
	overviewUC := reports.NewOverviewUseCase(orderRepo, inventoryRepo, productRepo)
	pdfUC := reports.NewPDFUseCase(overviewUC, warehouseRepo, infrapdf.NewMarotoOverviewGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Master API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EnrichUC:     enrichUC,
		TransitionUC: transitionUC,
		ReconcileUC:  reconcileUC,
		OverviewUC:   overviewUC,
		PDFUC:        pdfUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
