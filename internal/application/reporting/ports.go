package reporting

import (
	"context"

	"github.com/jhoicas/Granja-api/internal/domain/costing"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// CostosPDFGenerator renderiza el reporte de costos de un lote como PDF.
type CostosPDFGenerator interface {
	GenerarReporteCostos(ctx context.Context, lote *entity.Lote, costos *costing.DesgloseCostos, indicadores *costing.ReporteIndicadores) ([]byte, error)
}
