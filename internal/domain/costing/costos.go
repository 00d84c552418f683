package costing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// DatosLote es la foto consistente de la historia de un lote: el motor es una
// función pura de estos datos, no consulta almacenamiento.
type DatosLote struct {
	Lote           *entity.Lote
	Asignaciones   []entity.AsignacionCorral
	Consumos       []entity.ConsumoAlimento
	Alimentos      map[string]*entity.Alimento
	Mortalidad     []entity.Mortalidad
	Cosechas       []entity.Cosecha
	GastosDirectos []entity.GastoDirecto
}

// DatosGranja es el contexto compartido que el prorrateo necesita: todos los
// lotes, sus asignaciones de corral y los gastos mensuales registrados.
type DatosGranja struct {
	Lotes               []*entity.Lote
	AsignacionesPorLote map[string][]entity.AsignacionCorral
	GastosMensuales     []entity.GastoMensual
}

// DetalleAlimento acumulado de consumo por tipo de alimento.
type DetalleAlimento struct {
	Costo  decimal.Decimal `json:"costo"`
	Kg     decimal.Decimal `json:"kg"`
	Bultos decimal.Decimal `json:"bultos"`
}

// DesgloseAlimento costo y kilos de alimento del lote, total y por tipo.
type DesgloseAlimento struct {
	CostoTotal decimal.Decimal            `json:"costo_total"`
	KgTotal    decimal.Decimal            `json:"kg_total"`
	PorTipo    map[string]DetalleAlimento `json:"por_tipo"`
}

// DesgloseDirectos gastos directos del lote, total y por tipo.
type DesgloseDirectos struct {
	Total   decimal.Decimal            `json:"total"`
	PorTipo map[string]decimal.Decimal `json:"por_tipo"`
}

// ProrrateoDetalle explica la parte de un gasto mensual asignada al lote:
// con el área, los días y la suma de pesos del pool se puede reconstruir la
// cifra exacta.
type ProrrateoDetalle struct {
	Concepto         string          `json:"concepto"`
	Tipo             string          `json:"tipo"`
	MontoTotal       decimal.Decimal `json:"monto_total"`
	MontoProrrateado decimal.Decimal `json:"monto_prorrateado"`
	AreaLoteM2       decimal.Decimal `json:"area_lote_m2"`
	DiasActivos      int             `json:"dias_activos"`
	DiasMes          int             `json:"dias_mes"`
	SumaPesos        decimal.Decimal `json:"suma_pesos_activos"`
}

// ProrrateoMes agrupa los detalles de prorrateo de un mes calendario.
type ProrrateoMes struct {
	Anio     int                `json:"anio"`
	Mes      int                `json:"mes"`
	Total    decimal.Decimal    `json:"total"`
	Detalles []ProrrateoDetalle `json:"detalles"`
}

// DesgloseCostos es el reporte completo de costos de un lote.
// Invariante: Total == Lechones + Alimento.CostoTotal + Directos.Total + Prorrateados.
type DesgloseCostos struct {
	LoteID       string           `json:"lote_id"`
	NumeroLote   string           `json:"numero_lote"`
	FechaInicio  time.Time        `json:"fecha_inicio"`
	FechaCierre  *time.Time       `json:"fecha_cierre,omitempty"`
	Lechones     decimal.Decimal  `json:"lechones"`
	Alimento     DesgloseAlimento `json:"alimento"`
	Directos     DesgloseDirectos `json:"gastos_directos"`
	Prorrateados decimal.Decimal  `json:"gastos_prorrateados"`
	PorMes       []ProrrateoMes   `json:"prorrateo_por_mes"`
	Total        decimal.Decimal  `json:"costo_total"`
	Advertencias []Advertencia    `json:"advertencias,omitempty"`
}

// Calculadora agrega los costos de un lote: lechones, alimento, gastos
// directos y la parte prorrateada de los gastos mensuales compartidos.
type Calculadora struct {
	asignador *Asignador
}

// NewCalculadora construye la calculadora. Con asignador nil usa las fórmulas
// de peso por defecto.
func NewCalculadora(asignador *Asignador) *Calculadora {
	if asignador == nil {
		asignador = NewAsignador(nil)
	}
	return &Calculadora{asignador: asignador}
}

// CalcularCostos computa el desglose completo de costos del lote. El bucle
// mes a mes del prorrateo respeta la cancelación del contexto y recorre los
// meses en orden cronológico para que el resultado sea reproducible.
func (c *Calculadora) CalcularCostos(ctx context.Context, datos *DatosLote, granja *DatosGranja, corte time.Time) (*DesgloseCostos, error) {
	lote := datos.Lote

	alimento, err := c.costoAlimento(datos)
	if err != nil {
		return nil, err
	}
	directos := c.gastosDirectos(datos)

	// Gastos mensuales por (año, mes) para no recorrer el ledger completo por mes
	gastosPorMes := make(map[[2]int][]entity.GastoMensual)
	for _, g := range granja.GastosMensuales {
		clave := [2]int{g.Anio, g.Mes}
		gastosPorMes[clave] = append(gastosPorMes[clave], g)
	}

	fin := soloFecha(corte)
	if lote.FechaCierre != nil {
		fin = soloFecha(*lote.FechaCierre)
	}

	prorrateados := decimal.Zero
	var porMes []ProrrateoMes
	var advertencias []Advertencia

	cursor := time.Date(lote.FechaInicio.Year(), lote.FechaInicio.Month(), 1, 0, 0, 0, 0, time.UTC)
	tope := time.Date(fin.Year(), fin.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(tope) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		anio, mes := cursor.Year(), int(cursor.Month())
		resumen, advs := c.prorratearMes(lote.ID, granja, gastosPorMes[[2]int{anio, mes}], anio, mes, corte)
		if resumen != nil {
			prorrateados = prorrateados.Add(resumen.Total)
			porMes = append(porMes, *resumen)
		}
		advertencias = append(advertencias, advs...)
		cursor = cursor.AddDate(0, 1, 0)
	}

	total := lote.CostoLechones.Add(alimento.CostoTotal).Add(directos.Total).Add(prorrateados)

	return &DesgloseCostos{
		LoteID:       lote.ID,
		NumeroLote:   lote.NumeroLote,
		FechaInicio:  lote.FechaInicio,
		FechaCierre:  lote.FechaCierre,
		Lechones:     lote.CostoLechones,
		Alimento:     alimento,
		Directos:     directos,
		Prorrateados: prorrateados,
		PorMes:       porMes,
		Total:        total,
		Advertencias: advertencias,
	}, nil
}

// ProrratearMes calcula el prorrateo de un único mes para el lote (consulta
// puntual del reporte mensual).
func (c *Calculadora) ProrratearMes(ctx context.Context, loteID string, granja *DatosGranja, anio, mes int, corte time.Time) (*ProrrateoMes, []Advertencia, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	var gastos []entity.GastoMensual
	for _, g := range granja.GastosMensuales {
		if g.Anio == anio && g.Mes == mes {
			gastos = append(gastos, g)
		}
	}
	resumen, advs := c.prorratearMes(loteID, granja, gastos, anio, mes, corte)
	if resumen == nil {
		resumen = &ProrrateoMes{Anio: anio, Mes: mes, Total: decimal.Zero}
	}
	return resumen, advs, nil
}

// prorratearMes corre el asignador sobre cada gasto del mes y retiene los
// detalles del lote pedido. Devuelve nil si el lote no estuvo activo ese mes.
func (c *Calculadora) prorratearMes(loteID string, granja *DatosGranja, gastos []entity.GastoMensual, anio, mes int, corte time.Time) (*ProrrateoMes, []Advertencia) {
	pool := PoolActivo(granja.Lotes, granja.AsignacionesPorLote, anio, mes, corte)

	var miembro *MiembroPool
	for i := range pool {
		if pool[i].LoteID == loteID {
			miembro = &pool[i]
			break
		}
	}
	if miembro == nil {
		return nil, nil
	}

	resumen := &ProrrateoMes{Anio: anio, Mes: mes, Total: decimal.Zero}
	var advertencias []Advertencia
	diasMes := DiasDelMes(anio, mes)

	for i := range gastos {
		g := gastos[i]
		resultado, adv := c.asignador.Prorratear(&g, pool)
		if adv != nil {
			advertencias = append(advertencias, *adv)
			continue
		}
		monto := resultado.Montos[loteID]
		resumen.Total = resumen.Total.Add(monto)
		resumen.Detalles = append(resumen.Detalles, ProrrateoDetalle{
			Concepto:         g.Concepto,
			Tipo:             g.Tipo,
			MontoTotal:       g.Monto,
			MontoProrrateado: monto,
			AreaLoteM2:       miembro.AreaM2,
			DiasActivos:      miembro.DiasActivos,
			DiasMes:          diasMes,
			SumaPesos:        resultado.SumaPesos,
		})
	}
	return resumen, advertencias
}

// costoAlimento agrupa el consumo del lote por tipo de alimento. Una
// referencia a un alimento inexistente es un error de integridad con el id
// del registro ofensor, nunca se omite en silencio.
func (c *Calculadora) costoAlimento(datos *DatosLote) (DesgloseAlimento, error) {
	out := DesgloseAlimento{
		CostoTotal: decimal.Zero,
		KgTotal:    decimal.Zero,
		PorTipo:    make(map[string]DetalleAlimento),
	}
	for i := range datos.Consumos {
		consumo := &datos.Consumos[i]
		alimento, ok := datos.Alimentos[consumo.AlimentoID]
		if !ok {
			return out, fmt.Errorf("consumo %s referencia alimento %s: %w",
				consumo.ID, consumo.AlimentoID, domain.ErrDataIntegrity)
		}
		costo := consumo.Costo(alimento)
		kg := consumo.Kg(alimento)

		out.CostoTotal = out.CostoTotal.Add(costo)
		out.KgTotal = out.KgTotal.Add(kg)

		det := out.PorTipo[alimento.Tipo]
		det.Costo = det.Costo.Add(costo)
		det.Kg = det.Kg.Add(kg)
		det.Bultos = det.Bultos.Add(consumo.CantidadBultos)
		out.PorTipo[alimento.Tipo] = det
	}
	return out, nil
}

// gastosDirectos suma los gastos directos del lote agrupados por tipo.
func (c *Calculadora) gastosDirectos(datos *DatosLote) DesgloseDirectos {
	out := DesgloseDirectos{Total: decimal.Zero, PorTipo: make(map[string]decimal.Decimal)}
	for i := range datos.GastosDirectos {
		g := &datos.GastosDirectos[i]
		out.Total = out.Total.Add(g.Monto)
		acum, ok := out.PorTipo[g.Tipo]
		if !ok {
			acum = decimal.Zero
		}
		out.PorTipo[g.Tipo] = acum.Add(g.Monto)
	}
	return out
}
