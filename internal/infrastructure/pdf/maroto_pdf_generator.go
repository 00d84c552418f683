// Package pdf implementa la generación del reporte de costos e indicadores
// de un lote como documento imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° Lote + Estado  │  Fecha inicio / cierre          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Lechones / Alimento / Directos / Prorrateados     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA ALIMENTO: Tipo | Bultos | Kg | Costo                 │
//	│  TABLA PRORRATEO: Mes | Concepto | Monto asignado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: Mortalidad / Pesos / Conversión / Costo kg    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Granja-api/internal/application/reporting"
	"github.com/jhoicas/Granja-api/internal/domain/costing"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporting.CostosPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reporting.CostosPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarReporteCostos genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarReporteCostos(
	_ context.Context,
	lote *entity.Lote,
	costos *costing.DesgloseCostos,
	indicadores *costing.ReporteIndicadores,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Costos - Lote "+lote.NumeroLote, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(lote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(costos))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de alimento por tipo
	m.AddRows(seccionRow("CONSUMO DE ALIMENTO"))
	m.AddRows(alimentoHeaderRow())
	for _, r := range alimentoRows(costos.Alimento) {
		m.AddRows(r)
	}

	// Tabla de prorrateo mensual
	if len(costos.PorMes) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(seccionRow("GASTOS COMPARTIDOS PRORRATEADOS"))
		m.AddRows(prorrateoHeaderRow())
		for _, r := range prorrateoRows(costos.PorMes) {
			m.AddRows(r)
		}
	}

	// Indicadores
	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(seccionRow("INDICADORES DE EFICIENCIA"))
	for _, r := range indicadorRows(indicadores) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: número de lote y estado (izq), fechas (der).
func headerRow(lote *entity.Lote) core.Row {
	inicio := lote.FechaInicio.Format("02/01/2006")
	cierre := "en curso"
	if lote.FechaCierre != nil {
		cierre = lote.FechaCierre.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Lote "+lote.NumeroLote, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Estado: %s   |   %d animales iniciales", lote.Estado, lote.AnimalesIniciales), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE COSTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Inicio: "+inicio, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Cierre: "+cierre, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// resumenRow: los cuatro componentes del costo y el total.
func resumenRow(costos *costing.DesgloseCostos) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(34).Add(
		col.New(4),
		col.New(4).Add(
			label("Lechones:"),
			label("Alimento:"),
			label("Gastos directos:"),
			label("Gastos prorrateados:"),
			text.New("COSTO TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 26,
			}),
		),
		col.New(4).Add(
			value("$"+formatMoney(costos.Lechones.StringFixed(0))),
			value("$"+formatMoney(costos.Alimento.CostoTotal.StringFixed(0))),
			value("$"+formatMoney(costos.Directos.Total.StringFixed(0))),
			value("$"+formatMoney(costos.Prorrateados.StringFixed(0))),
			text.New("$"+formatMoney(costos.Total.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 26,
			}),
		),
	)
}

// seccionRow: título de sección.
func seccionRow(titulo string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// alimentoHeaderRow: cabecera de la tabla de alimento.
func alimentoHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Tipo", 4, align.Left),
		h("Bultos", 2, align.Right),
		h("Kg", 3, align.Right),
		h("Costo", 3, align.Right),
	)
}

// alimentoRows: una fila por tipo de alimento, en orden estable.
func alimentoRows(alimento costing.DesgloseAlimento) []core.Row {
	tipos := make([]string, 0, len(alimento.PorTipo))
	for tipo := range alimento.PorTipo {
		tipos = append(tipos, tipo)
	}
	sort.Strings(tipos)

	result := make([]core.Row, 0, len(tipos)+1)
	for _, tipo := range tipos {
		det := alimento.PorTipo[tipo]
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(tipo, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(det.Bultos.StringFixed(1), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(det.Kg.StringFixed(1), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New("$"+formatMoney(det.Costo.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	result = append(result, row.New(6).Add(
		col.New(4).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(2),
		col.New(3).Add(text.New(alimento.KgTotal.StringFixed(1), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New("$"+formatMoney(alimento.CostoTotal.StringFixed(0)), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
	))
	return result
}

// prorrateoHeaderRow: cabecera de la tabla de prorrateo.
func prorrateoHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Mes", 2, align.Left),
		h("Concepto", 5, align.Left),
		h("Monto total", 2, align.Right),
		h("Asignado al lote", 3, align.Right),
	)
}

// prorrateoRows: una fila por gasto prorrateado, agrupadas por mes.
func prorrateoRows(meses []costing.ProrrateoMes) []core.Row {
	var result []core.Row
	for _, mes := range meses {
		etiqueta := fmt.Sprintf("%02d/%d", mes.Mes, mes.Anio)
		for _, det := range mes.Detalles {
			result = append(result, row.New(6).Add(
				col.New(2).Add(text.New(etiqueta, props.Text{Size: 8, Top: 1})),
				col.New(5).Add(text.New(fmt.Sprintf("%s (%s)", det.Concepto, det.Tipo), props.Text{Size: 8, Top: 1})),
				col.New(2).Add(text.New("$"+formatMoney(det.MontoTotal.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1})),
				col.New(3).Add(text.New("$"+formatMoney(det.MontoProrrateado.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1})),
			))
			etiqueta = ""
		}
	}
	return result
}

// indicadorRows: pares etiqueta/valor de los indicadores; los indefinidos se
// imprimen como guion.
func indicadorRows(ind *costing.ReporteIndicadores) []core.Row {
	par := func(etiqueta, valor string) core.Row {
		return row.New(6).Add(
			col.New(6).Add(text.New(etiqueta, props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(valor, props.Text{Size: 8, Align: align.Right, Top: 1})),
		)
	}
	indefinido := "—"

	finalProm := indefinido
	if ind.Pesos.FinalPromedioKg != nil {
		finalProm = ind.Pesos.FinalPromedioKg.StringFixed(2) + " kg"
	}
	ganancia := indefinido
	if ind.Pesos.GananciaPromedioKg != nil {
		ganancia = ind.Pesos.GananciaPromedioKg.StringFixed(2) + " kg"
	}
	conversion := indefinido
	if ind.Alimento.ConversionAlimenticia != nil {
		conversion = ind.Alimento.ConversionAlimenticia.StringFixed(2)
	}
	porAnimal := indefinido
	if ind.Costos.PorAnimal != nil {
		porAnimal = "$" + formatMoney(ind.Costos.PorAnimal.StringFixed(0))
	}
	porKg := indefinido
	if ind.Costos.PorKg != nil {
		porKg = "$" + formatMoney(ind.Costos.PorKg.StringFixed(0))
	}

	return []core.Row{
		par("Animales iniciales / bajas / vendidos",
			fmt.Sprintf("%d / %d / %d", ind.Animales.Iniciales, ind.Animales.Mortalidad, ind.Animales.Vendidos)),
		par("Mortalidad", ind.Animales.PorcentajeMortalidad.StringFixed(2)+" %"),
		par("Peso promedio inicial", ind.Pesos.InicialPromedioKg.StringFixed(2)+" kg"),
		par("Peso promedio final", finalProm),
		par("Ganancia promedio", ganancia),
		par("Alimento consumido", ind.Alimento.TotalConsumidoKg.StringFixed(1)+" kg"),
		par("Conversión alimenticia", conversion),
		par("Costo por animal vendido", porAnimal),
		par("Costo por kg producido", porKg),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}
