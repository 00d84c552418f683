package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// FuncPeso calcula el peso de un lote dentro del pool para un gasto mensual.
// El peso se normaliza contra la suma del pool, así que solo importa su
// proporción relativa.
type FuncPeso func(m MiembroPool, diasMes int) decimal.Decimal

// PesoAreaTiempo es la fórmula general: área × días activos.
func PesoAreaTiempo(m MiembroPool, _ int) decimal.Decimal {
	return m.AreaM2.Mul(decimal.NewFromInt(int64(m.DiasActivos)))
}

// PesoFraccionMes es la fórmula de arriendo: área × (días activos / días del
// mes). Castiga la ocupación parcial del mes más que la fórmula lineal.
// La curva exacta está pendiente de confirmación del negocio; por eso las
// fórmulas son intercambiables por tipo de gasto.
func PesoFraccionMes(m MiembroPool, diasMes int) decimal.Decimal {
	fraccion := decimal.NewFromInt(int64(m.DiasActivos)).Div(decimal.NewFromInt(int64(diasMes)))
	return m.AreaM2.Mul(fraccion)
}

// PesosPorDefecto devuelve la tabla de fórmulas por tipo de gasto mensual.
// Todo tipo sin entrada usa PesoAreaTiempo.
func PesosPorDefecto() map[string]FuncPeso {
	return map[string]FuncPeso{
		entity.GastoMensualArriendo: PesoFraccionMes,
	}
}

// Advertencia es una anomalía no fatal del prorrateo: el reporte se entrega
// igual, con la anomalía adjunta.
type Advertencia struct {
	Anio     int    `json:"anio"`
	Mes      int    `json:"mes"`
	Concepto string `json:"concepto"`
	Tipo     string `json:"tipo"`
	Motivo   string `json:"motivo"`
}

// ResultadoProrrateo es la asignación de un gasto mensual sobre el pool, con
// los pesos usados para que el consumidor pueda reconstruir cada cifra.
type ResultadoProrrateo struct {
	Montos    map[string]decimal.Decimal // lote → monto asignado
	Pesos     map[string]decimal.Decimal // lote → peso usado
	SumaPesos decimal.Decimal
}

// Asignador prorratea gastos mensuales entre los lotes activos del mes usando
// una tabla de fórmulas de peso intercambiable por tipo de gasto.
type Asignador struct {
	pesos map[string]FuncPeso
}

// NewAsignador construye el asignador. Con pesos nil usa PesosPorDefecto.
func NewAsignador(pesos map[string]FuncPeso) *Asignador {
	if pesos == nil {
		pesos = PesosPorDefecto()
	}
	return &Asignador{pesos: pesos}
}

// centavo es la unidad mínima de asignación (dos decimales).
var centavo = decimal.New(1, -2)

// Prorratear asigna el monto del gasto entre el pool. La suma de las
// asignaciones es EXACTAMENTE el monto del gasto: cada parte se trunca a dos
// decimales y el residuo se reparte de a un centavo a los mayores restos
// (método del resto mayor), en orden del pool para desempate estable.
// Con pool vacío o suma de pesos cero el gasto queda sin asignar y se
// devuelve una Advertencia en lugar de un error.
func (a *Asignador) Prorratear(gasto *entity.GastoMensual, pool []MiembroPool) (*ResultadoProrrateo, *Advertencia) {
	fn := a.pesos[gasto.Tipo]
	if fn == nil {
		fn = PesoAreaTiempo
	}
	diasMes := DiasDelMes(gasto.Anio, gasto.Mes)

	pesos := make(map[string]decimal.Decimal, len(pool))
	sumaPesos := decimal.Zero
	for _, m := range pool {
		p := fn(m, diasMes)
		pesos[m.LoteID] = p
		sumaPesos = sumaPesos.Add(p)
	}

	if len(pool) == 0 || sumaPesos.IsZero() {
		return nil, &Advertencia{
			Anio:     gasto.Anio,
			Mes:      gasto.Mes,
			Concepto: gasto.Concepto,
			Tipo:     gasto.Tipo,
			Motivo:   "sin lotes activos con área en el mes; gasto sin asignar",
		}
	}

	type resto struct {
		loteID string
		resto  decimal.Decimal
		orden  int
	}

	montos := make(map[string]decimal.Decimal, len(pool))
	asignado := decimal.Zero
	restos := make([]resto, 0, len(pool))
	for i, m := range pool {
		exacto := gasto.Monto.Mul(pesos[m.LoteID]).Div(sumaPesos)
		truncado := exacto.RoundDown(2)
		montos[m.LoteID] = truncado
		asignado = asignado.Add(truncado)
		restos = append(restos, resto{loteID: m.LoteID, resto: exacto.Sub(truncado), orden: i})
	}

	// Reparto del residuo: un centavo por vuelta a los mayores restos
	residuo := gasto.Monto.Sub(asignado)
	for i := 0; i < len(restos)-1; i++ {
		max := i
		for j := i + 1; j < len(restos); j++ {
			if restos[j].resto.GreaterThan(restos[max].resto) ||
				(restos[j].resto.Equal(restos[max].resto) && restos[j].orden < restos[max].orden) {
				max = j
			}
		}
		restos[i], restos[max] = restos[max], restos[i]
	}
	for i := 0; residuo.GreaterThanOrEqual(centavo); i = (i + 1) % len(restos) {
		id := restos[i].loteID
		montos[id] = montos[id].Add(centavo)
		residuo = residuo.Sub(centavo)
	}
	// Montos con más de dos decimales dejan un residuo menor a un centavo;
	// va completo al mayor resto para conservar la suma exacta.
	if residuo.IsPositive() {
		montos[restos[0].loteID] = montos[restos[0].loteID].Add(residuo)
	}

	return &ResultadoProrrateo{Montos: montos, Pesos: pesos, SumaPesos: sumaPesos}, nil
}
