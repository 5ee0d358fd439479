package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/acrilico-stock-api/internal/application/auth"
	"github.com/jhoicas/acrilico-stock-api/internal/application/chat"
	"github.com/jhoicas/acrilico-stock-api/internal/application/inventory"
	"github.com/jhoicas/acrilico-stock-api/internal/application/live"
	"github.com/jhoicas/acrilico-stock-api/internal/application/reporting"
	"github.com/jhoicas/acrilico-stock-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/acrilico-stock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/acrilico-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/acrilico-stock-api/internal/interfaces/http"
	"github.com/jhoicas/acrilico-stock-api/pkg/config"
	"github.com/jhoicas/acrilico-stock-api/pkg/logger"
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
		Str("namespace", cfg.DB.Schema).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, cfg.DB.Schema); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	sheetRepo := postgres.NewSheetRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Hub websocket + espejo en vivo: cada escritura confirmada republica el
	// snapshot de su colección a todos los clientes conectados.
	hub := httpRouter.NewWSHub(log)
	go hub.Run()
	mirror := live.NewMirror(hub, sheetRepo, movRepo, chatRepo, log)

	reconcileUC := inventory.NewReconcileStockUseCase(txRunner, mirror)
	sheetUC := usecase.NewSheetUseCase(sheetRepo, mirror)
	chatUC := chat.NewChatUseCase(chatRepo, mirror)
	reportUC := reporting.NewReportUseCase(movRepo, sheetRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SheetUC:     sheetUC,
		ReconcileUC: reconcileUC,
		ChatUC:      chatUC,
		ReportUC:    reportUC,
		ReportPDF:   infrapdf.NewMarotoReportGenerator(),
		Hub:         hub,
		Mirror:      mirror,
		JWTSecret:   cfg.JWT.Secret,
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
	hub.Shutdown()

	log.Info().Msg("aplicación detenida")
}
