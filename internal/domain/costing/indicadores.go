package costing

import (
	"github.com/shopspring/decimal"
)

// IndicadorAnimales conteos de animales del lote y porcentaje de mortalidad.
type IndicadorAnimales struct {
	Iniciales            int             `json:"iniciales"`
	Mortalidad           int             `json:"mortalidad"`
	Vendidos             int             `json:"vendidos"`
	PorcentajeMortalidad decimal.Decimal `json:"porcentaje_mortalidad"`
}

// IndicadorPesos pesos promedio y totales. Los campos puntero son nil cuando
// el indicador aún no está definido (sin cosechas no hay peso final).
type IndicadorPesos struct {
	InicialPromedioKg  decimal.Decimal  `json:"inicial_promedio_kg"`
	FinalPromedioKg    *decimal.Decimal `json:"final_promedio_kg,omitempty"`
	GananciaPromedioKg *decimal.Decimal `json:"ganancia_promedio_kg,omitempty"`
	TotalVendidoKg     decimal.Decimal  `json:"total_vendido_kg"`
}

// IndicadorAlimento consumo total y conversión alimenticia (kg de alimento
// por kg de peso ganado). La conversión no está definida antes de vender.
type IndicadorAlimento struct {
	TotalConsumidoKg      decimal.Decimal  `json:"total_consumido_kg"`
	ConversionAlimenticia *decimal.Decimal `json:"conversion_alimenticia,omitempty"`
}

// IndicadorCostos costo total y costos unitarios; indefinidos sin ventas.
type IndicadorCostos struct {
	Total     decimal.Decimal  `json:"costo_total"`
	PorAnimal *decimal.Decimal `json:"costo_por_animal,omitempty"`
	PorKg     *decimal.Decimal `json:"costo_por_kg_producido,omitempty"`
}

// ReporteIndicadores indicadores de eficiencia productiva de un lote.
// Un indicador con denominador cero se reporta como ausencia explícita
// (puntero nil), nunca como cero ni como infinito.
type ReporteIndicadores struct {
	LoteID       string            `json:"lote_id"`
	NumeroLote   string            `json:"numero_lote"`
	Animales     IndicadorAnimales `json:"animales"`
	Pesos        IndicadorPesos    `json:"pesos"`
	Alimento     IndicadorAlimento `json:"alimento"`
	Costos       IndicadorCostos   `json:"costos"`
	Advertencias []Advertencia     `json:"advertencias,omitempty"`
}

// CalcularIndicadores deriva los indicadores de eficiencia a partir de la
// historia del lote y su desglose de costos ya calculado.
func (c *Calculadora) CalcularIndicadores(datos *DatosLote, costos *DesgloseCostos) *ReporteIndicadores {
	lote := datos.Lote

	totalMortalidad := 0
	for i := range datos.Mortalidad {
		totalMortalidad += datos.Mortalidad[i].Cantidad
	}

	totalVendidos := 0
	pesoVendido := decimal.Zero
	for i := range datos.Cosechas {
		totalVendidos += datos.Cosechas[i].CantidadAnimales
		pesoVendido = pesoVendido.Add(datos.Cosechas[i].PesoTotalKg)
	}

	animales := IndicadorAnimales{
		Iniciales:            lote.AnimalesIniciales,
		Mortalidad:           totalMortalidad,
		Vendidos:             totalVendidos,
		PorcentajeMortalidad: decimal.Zero,
	}
	if lote.AnimalesIniciales > 0 {
		animales.PorcentajeMortalidad = decimal.NewFromInt(int64(totalMortalidad)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(lote.AnimalesIniciales)))
	}

	pesos := IndicadorPesos{
		InicialPromedioKg: lote.PesoPromedioInicial,
		TotalVendidoKg:    pesoVendido,
	}
	if totalVendidos > 0 {
		final := pesoVendido.Div(decimal.NewFromInt(int64(totalVendidos)))
		ganancia := final.Sub(lote.PesoPromedioInicial)
		pesos.FinalPromedioKg = &final
		pesos.GananciaPromedioKg = &ganancia
	}

	alimento := IndicadorAlimento{TotalConsumidoKg: costos.Alimento.KgTotal}
	if pesos.GananciaPromedioKg != nil {
		// Conversión = kg de alimento / (ganancia promedio × vendidos)
		gananciaTotal := pesos.GananciaPromedioKg.Mul(decimal.NewFromInt(int64(totalVendidos)))
		if gananciaTotal.IsPositive() {
			conversion := costos.Alimento.KgTotal.Div(gananciaTotal)
			alimento.ConversionAlimenticia = &conversion
		}
	}

	indicadorCostos := IndicadorCostos{Total: costos.Total}
	if totalVendidos > 0 {
		porAnimal := costos.Total.Div(decimal.NewFromInt(int64(totalVendidos)))
		indicadorCostos.PorAnimal = &porAnimal
	}
	if pesoVendido.IsPositive() {
		porKg := costos.Total.Div(pesoVendido)
		indicadorCostos.PorKg = &porKg
	}

	return &ReporteIndicadores{
		LoteID:       lote.ID,
		NumeroLote:   lote.NumeroLote,
		Animales:     animales,
		Pesos:        pesos,
		Alimento:     alimento,
		Costos:       indicadorCostos,
		Advertencias: costos.Advertencias,
	}
}
