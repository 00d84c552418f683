package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Granja-api/internal/application/lifecycle"
	"github.com/jhoicas/Granja-api/internal/application/reporting"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
	"github.com/jhoicas/Granja-api/internal/domain/costing"
	infrapdf "github.com/jhoicas/Granja-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Granja-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Granja-api/internal/interfaces/http"
	"github.com/jhoicas/Granja-api/pkg/config"
	"github.com/jhoicas/Granja-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	loteRepo := postgres.NewLoteRepository(pool)
	corralRepo := postgres.NewCorralRepository(pool)
	asignacionRepo := postgres.NewAsignacionCorralRepository(pool)
	alimentoRepo := postgres.NewAlimentoRepository(pool)
	consumoRepo := postgres.NewConsumoAlimentoRepository(pool)
	mortalidadRepo := postgres.NewMortalidadRepository(pool)
	cosechaRepo := postgres.NewCosechaRepository(pool)
	gastoDirectoRepo := postgres.NewGastoDirectoRepository(pool)
	gastoMensualRepo := postgres.NewGastoMensualRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	loteUC := lifecycle.NewLoteUseCase(txRunner, loteRepo, corralRepo, alimentoRepo)
	corralUC := usecase.NewCorralUseCase(corralRepo)
	alimentoUC := usecase.NewAlimentoUseCase(alimentoRepo)
	gastoUC := usecase.NewGastoUseCase(gastoDirectoRepo, gastoMensualRepo, loteRepo)

	// Motor de costos: prorrateo con las fórmulas de peso por defecto
	calculadora := costing.NewCalculadora(nil)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reporteUC := reporting.NewReporteUseCase(
		loteRepo, asignacionRepo, alimentoRepo, consumoRepo,
		mortalidadRepo, cosechaRepo, gastoDirectoRepo, gastoMensualRepo,
		calculadora, pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LoteUC:     loteUC,
		CorralUC:   corralUC,
		AlimentoUC: alimentoUC,
		GastoUC:    gastoUC,
		ReporteUC:  reporteUC,
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
