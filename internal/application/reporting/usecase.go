package reporting

import (
	"context"
	"time"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/costing"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// ReporteUseCase computa los reportes de un lote: desglose de costos,
// indicadores de eficiencia y prorrateo mensual. Cada invocación arma una
// foto del ledger y se la entrega al motor puro; no hay estado entre
// llamadas, así que reportes de lotes distintos pueden correr en paralelo.
type ReporteUseCase struct {
	loteRepo       repository.LoteRepository
	asignacionRepo repository.AsignacionCorralRepository
	alimentoRepo   repository.AlimentoRepository
	consumoRepo    repository.ConsumoAlimentoRepository
	mortalidadRepo repository.MortalidadRepository
	cosechaRepo    repository.CosechaRepository
	gastoDirRepo   repository.GastoDirectoRepository
	gastoMenRepo   repository.GastoMensualRepository
	calculadora    *costing.Calculadora
	pdfGenerator   CostosPDFGenerator
}

// NewReporteUseCase construye el caso de uso. pdfGenerator puede ser nil si
// no se expone la exportación a PDF.
func NewReporteUseCase(
	loteRepo repository.LoteRepository,
	asignacionRepo repository.AsignacionCorralRepository,
	alimentoRepo repository.AlimentoRepository,
	consumoRepo repository.ConsumoAlimentoRepository,
	mortalidadRepo repository.MortalidadRepository,
	cosechaRepo repository.CosechaRepository,
	gastoDirRepo repository.GastoDirectoRepository,
	gastoMenRepo repository.GastoMensualRepository,
	calculadora *costing.Calculadora,
	pdfGenerator CostosPDFGenerator,
) *ReporteUseCase {
	return &ReporteUseCase{
		loteRepo:       loteRepo,
		asignacionRepo: asignacionRepo,
		alimentoRepo:   alimentoRepo,
		consumoRepo:    consumoRepo,
		mortalidadRepo: mortalidadRepo,
		cosechaRepo:    cosechaRepo,
		gastoDirRepo:   gastoDirRepo,
		gastoMenRepo:   gastoMenRepo,
		calculadora:    calculadora,
		pdfGenerator:   pdfGenerator,
	}
}

// GetDesgloseCostos computa el reporte completo de costos del lote. La fecha
// de corte acota los lotes abiertos y filtra los eventos del ledger: un
// reporte "a una fecha" solo ve lo que ya había ocurrido. El motor nunca
// consulta el reloj.
func (uc *ReporteUseCase) GetDesgloseCostos(ctx context.Context, loteID string, corte time.Time) (*costing.DesgloseCostos, error) {
	datos, granja, err := uc.cargarFoto(ctx, loteID, corte)
	if err != nil {
		return nil, err
	}
	return uc.calculadora.CalcularCostos(ctx, datos, granja, corte)
}

// GetIndicadores computa los indicadores de eficiencia del lote. Requiere el
// desglose de costos, que se computa sobre la misma foto del ledger.
func (uc *ReporteUseCase) GetIndicadores(ctx context.Context, loteID string, corte time.Time) (*costing.ReporteIndicadores, error) {
	datos, granja, err := uc.cargarFoto(ctx, loteID, corte)
	if err != nil {
		return nil, err
	}
	costos, err := uc.calculadora.CalcularCostos(ctx, datos, granja, corte)
	if err != nil {
		return nil, err
	}
	return uc.calculadora.CalcularIndicadores(datos, costos), nil
}

// GetProrrateoMes computa el prorrateo de un único mes para el lote.
func (uc *ReporteUseCase) GetProrrateoMes(ctx context.Context, loteID string, anio, mes int, corte time.Time) (*costing.ProrrateoMes, []costing.Advertencia, error) {
	if mes < 1 || mes > 12 {
		return nil, nil, domain.ErrInvalidInput
	}
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, nil, err
	}
	if lote == nil {
		return nil, nil, domain.ErrNotFound
	}
	granja, err := uc.cargarGranja(ctx)
	if err != nil {
		return nil, nil, err
	}
	return uc.calculadora.ProrratearMes(ctx, loteID, granja, anio, mes, corte)
}

// ExportarCostosPDF genera el reporte de costos e indicadores como PDF.
func (uc *ReporteUseCase) ExportarCostosPDF(ctx context.Context, loteID string, corte time.Time) ([]byte, error) {
	datos, granja, err := uc.cargarFoto(ctx, loteID, corte)
	if err != nil {
		return nil, err
	}
	costos, err := uc.calculadora.CalcularCostos(ctx, datos, granja, corte)
	if err != nil {
		return nil, err
	}
	indicadores := uc.calculadora.CalcularIndicadores(datos, costos)
	return uc.pdfGenerator.GenerarReporteCostos(ctx, datos.Lote, costos, indicadores)
}

// cargarFoto arma la foto consistente del lote y de la granja que el motor
// necesita: una sola ronda de lecturas por invocación. Los ledgers se
// recortan a la fecha de corte.
func (uc *ReporteUseCase) cargarFoto(ctx context.Context, loteID string, corte time.Time) (*costing.DatosLote, *costing.DatosGranja, error) {
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, nil, err
	}
	if lote == nil {
		return nil, nil, domain.ErrNotFound
	}

	asignaciones, err := uc.asignacionRepo.ListByLote(loteID)
	if err != nil {
		return nil, nil, err
	}
	consumos, err := uc.consumoRepo.ListByLote(loteID)
	if err != nil {
		return nil, nil, err
	}
	alimentos, err := uc.alimentoRepo.MapAll()
	if err != nil {
		return nil, nil, err
	}
	mortalidad, err := uc.mortalidadRepo.ListByLote(loteID)
	if err != nil {
		return nil, nil, err
	}
	cosechas, err := uc.cosechaRepo.ListByLote(loteID)
	if err != nil {
		return nil, nil, err
	}
	gastosDirectos, err := uc.gastoDirRepo.ListByLote(loteID)
	if err != nil {
		return nil, nil, err
	}

	granja, err := uc.cargarGranja(ctx)
	if err != nil {
		return nil, nil, err
	}

	datos := &costing.DatosLote{
		Lote:         lote,
		Asignaciones: asignaciones,
		Alimentos:    alimentos,
		Consumos: hastaCorte(consumos, corte, func(c entity.ConsumoAlimento) time.Time {
			return c.Fecha
		}),
		Mortalidad: hastaCorte(mortalidad, corte, func(m entity.Mortalidad) time.Time {
			return m.Fecha
		}),
		Cosechas: hastaCorte(cosechas, corte, func(c entity.Cosecha) time.Time {
			return c.Fecha
		}),
		GastosDirectos: hastaCorte(gastosDirectos, corte, func(g entity.GastoDirecto) time.Time {
			return g.Fecha
		}),
	}
	return datos, granja, nil
}

// hastaCorte descarta los registros con fecha posterior al corte.
func hastaCorte[T any](registros []T, corte time.Time, fechaDe func(T) time.Time) []T {
	var out []T
	for _, r := range registros {
		if !fechaDe(r).After(corte) {
			out = append(out, r)
		}
	}
	return out
}

// cargarGranja arma el contexto compartido del prorrateo.
func (uc *ReporteUseCase) cargarGranja(ctx context.Context) (*costing.DatosGranja, error) {
	lotes, err := uc.loteRepo.ListAll()
	if err != nil {
		return nil, err
	}
	asignacionesPorLote, err := uc.asignacionRepo.ListAll()
	if err != nil {
		return nil, err
	}
	gastosMensuales, err := uc.gastoMenRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return &costing.DatosGranja{
		Lotes:               lotes,
		AsignacionesPorLote: asignacionesPorLote,
		GastosMensuales:     gastosMensuales,
	}, nil
}
