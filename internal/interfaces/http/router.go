package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/lifecycle"
	"github.com/jhoicas/Granja-api/internal/application/reporting"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LoteUC     *lifecycle.LoteUseCase
	CorralUC   *usecase.CorralUseCase
	AlimentoUC *usecase.AlimentoUseCase
	GastoUC    *usecase.GastoUseCase
	ReporteUC  *reporting.ReporteUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Lotes: ciclo de vida y registros
	lotes := api.Group("/lotes")
	loteHandler := NewLoteHandler(deps.LoteUC)
	lotes.Post("/", loteHandler.Create)
	lotes.Get("/", loteHandler.List)
	lotes.Get("/:id", loteHandler.GetByID)
	lotes.Put("/:id", loteHandler.Update)
	lotes.Post("/:id/cerrar", loteHandler.Cerrar)
	lotes.Post("/:id/consumos", loteHandler.RegistrarConsumo)
	lotes.Post("/:id/mortalidad", loteHandler.RegistrarMortalidad)
	lotes.Post("/:id/cosechas", loteHandler.RegistrarCosecha)

	// Borrado de registros del ledger, solo mientras el lote sigue activo
	api.Delete("/consumos/:id", loteHandler.EliminarConsumo)
	api.Delete("/mortalidad/:id", loteHandler.EliminarMortalidad)
	api.Delete("/cosechas/:id", loteHandler.EliminarCosecha)

	// Gastos directos del lote + ledger mensual compartido
	gastoHandler := NewGastoHandler(deps.GastoUC)
	lotes.Post("/:id/gastos", gastoHandler.CreateDirecto)
	lotes.Get("/:id/gastos", gastoHandler.ListDirectos)
	gastos := api.Group("/gastos")
	gastos.Delete("/directos/:id", gastoHandler.DeleteDirecto)
	gastos.Post("/mensuales", gastoHandler.CreateMensual)
	gastos.Get("/mensuales", gastoHandler.ListMensuales)
	gastos.Delete("/mensuales/:id", gastoHandler.DeleteMensual)

	// Reportes del lote (lecturas, con fecha de corte explícita)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	lotes.Get("/:id/costos", reporteHandler.GetCostos)
	lotes.Get("/:id/costos/pdf", reporteHandler.ExportarPDF)
	lotes.Get("/:id/indicadores", reporteHandler.GetIndicadores)
	lotes.Get("/:id/prorrateo", reporteHandler.GetProrrateoMes)

	// Corrales
	corrales := api.Group("/corrales")
	corralHandler := NewCorralHandler(deps.CorralUC)
	corrales.Post("/", corralHandler.Create)
	corrales.Get("/", corralHandler.List)
	corrales.Get("/:id", corralHandler.GetByID)
	corrales.Put("/:id", corralHandler.Update)

	// Alimentos
	alimentos := api.Group("/alimentos")
	alimentoHandler := NewAlimentoHandler(deps.AlimentoUC)
	alimentos.Post("/", alimentoHandler.Create)
	alimentos.Get("/", alimentoHandler.List)
	alimentos.Get("/:id", alimentoHandler.GetByID)
	alimentos.Put("/:id", alimentoHandler.Update)
}
