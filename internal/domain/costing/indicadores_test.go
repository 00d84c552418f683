package costing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// Escenario de referencia: 100 animales iniciales, 5 bajas, una cosecha final
// de 90 animales con 9.900 kg y peso inicial de 25 kg → mortalidad 5 %, peso
// final 110 kg, ganancia 85 kg y conversión = kg alimento / (85×90).
func TestCalcularIndicadores_EscenarioCompleto(t *testing.T) {
	lote := loteDePrueba("A", fecha(2024, 11, 1))
	cierre := fecha(2025, 3, 15)
	lote.FechaCierre = &cierre
	lote.Estado = entity.LoteEstadoCerrado

	datos := &DatosLote{
		Lote:         lote,
		Asignaciones: []entity.AsignacionCorral{asignacion("A", "100", fecha(2024, 11, 1), &cierre)},
		Alimentos: map[string]*entity.Alimento{
			"al-1": alimentoDePrueba("al-1", entity.AlimentoEngorde, "95000", "40"),
		},
		// 382,5 bultos × 40 kg = 15.300 kg → conversión 15.300 / 7.650 = 2
		Consumos: []entity.ConsumoAlimento{
			{ID: "c-1", LoteID: "A", AlimentoID: "al-1", CantidadBultos: dec("382.5")},
		},
		Mortalidad: []entity.Mortalidad{
			{ID: "m-1", LoteID: "A", Cantidad: 2, Fecha: fecha(2024, 12, 1)},
			{ID: "m-2", LoteID: "A", Cantidad: 3, Fecha: fecha(2025, 1, 10)},
		},
		Cosechas: []entity.Cosecha{
			{ID: "co-1", LoteID: "A", Tipo: entity.CosechaCabezas, CantidadAnimales: 90,
				PesoTotalKg: dec("9900"), EsUltimaCosecha: true, Fecha: cierre},
		},
	}
	granja := &DatosGranja{
		Lotes:               []*entity.Lote{lote},
		AsignacionesPorLote: map[string][]entity.AsignacionCorral{"A": datos.Asignaciones},
	}

	calc := NewCalculadora(nil)
	costos, err := calc.CalcularCostos(context.Background(), datos, granja, cierre)
	require.NoError(t, err)

	reporte := calc.CalcularIndicadores(datos, costos)

	assert.Equal(t, 100, reporte.Animales.Iniciales)
	assert.Equal(t, 5, reporte.Animales.Mortalidad)
	assert.Equal(t, 90, reporte.Animales.Vendidos)
	assert.True(t, reporte.Animales.PorcentajeMortalidad.Equal(dec("5")), "mortalidad = %s", reporte.Animales.PorcentajeMortalidad)

	require.NotNil(t, reporte.Pesos.FinalPromedioKg)
	assert.True(t, reporte.Pesos.FinalPromedioKg.Equal(dec("110")))
	require.NotNil(t, reporte.Pesos.GananciaPromedioKg)
	assert.True(t, reporte.Pesos.GananciaPromedioKg.Equal(dec("85")))
	assert.True(t, reporte.Pesos.TotalVendidoKg.Equal(dec("9900")))

	assert.True(t, reporte.Alimento.TotalConsumidoKg.Equal(dec("15300")))
	require.NotNil(t, reporte.Alimento.ConversionAlimenticia)
	assert.True(t, reporte.Alimento.ConversionAlimenticia.Equal(dec("2")), "conversión = %s", reporte.Alimento.ConversionAlimenticia)

	require.NotNil(t, reporte.Costos.PorAnimal)
	assert.True(t, reporte.Costos.PorAnimal.Equal(costos.Total.Div(dec("90"))))
	require.NotNil(t, reporte.Costos.PorKg)
	assert.True(t, reporte.Costos.PorKg.Equal(costos.Total.Div(dec("9900"))))
}

// Sin cosechas los indicadores con denominador cero son ausencia explícita
// (nil), nunca cero ni infinito.
func TestCalcularIndicadores_SinCosechas(t *testing.T) {
	lote := loteDePrueba("A", fecha(2024, 11, 1))
	datos := &DatosLote{
		Lote:      lote,
		Alimentos: map[string]*entity.Alimento{},
		Mortalidad: []entity.Mortalidad{
			{ID: "m-1", LoteID: "A", Cantidad: 4},
		},
	}
	granja := &DatosGranja{Lotes: []*entity.Lote{lote}}

	calc := NewCalculadora(nil)
	costos, err := calc.CalcularCostos(context.Background(), datos, granja, fecha(2024, 11, 30))
	require.NoError(t, err)

	reporte := calc.CalcularIndicadores(datos, costos)

	assert.Equal(t, 0, reporte.Animales.Vendidos)
	assert.True(t, reporte.Animales.PorcentajeMortalidad.Equal(dec("4")))
	assert.Nil(t, reporte.Pesos.FinalPromedioKg)
	assert.Nil(t, reporte.Pesos.GananciaPromedioKg)
	assert.Nil(t, reporte.Alimento.ConversionAlimenticia)
	assert.Nil(t, reporte.Costos.PorAnimal)
	assert.Nil(t, reporte.Costos.PorKg)
	assert.True(t, reporte.Costos.Total.Equal(costos.Total))
}

// Ganancia de peso negativa o nula: la conversión alimenticia queda
// indefinida en lugar de producir un valor sin sentido.
func TestCalcularIndicadores_GananciaNoPositiva(t *testing.T) {
	lote := loteDePrueba("A", fecha(2024, 11, 1))
	lote.PesoPromedioInicial = dec("120")
	datos := &DatosLote{
		Lote:      lote,
		Alimentos: map[string]*entity.Alimento{},
		Cosechas: []entity.Cosecha{
			{ID: "co-1", LoteID: "A", CantidadAnimales: 10, PesoTotalKg: dec("1000")}, // 100 kg promedio
		},
	}
	granja := &DatosGranja{Lotes: []*entity.Lote{lote}}

	calc := NewCalculadora(nil)
	costos, err := calc.CalcularCostos(context.Background(), datos, granja, fecha(2024, 11, 30))
	require.NoError(t, err)

	reporte := calc.CalcularIndicadores(datos, costos)

	require.NotNil(t, reporte.Pesos.GananciaPromedioKg)
	assert.True(t, reporte.Pesos.GananciaPromedioKg.Equal(dec("-20")))
	assert.Nil(t, reporte.Alimento.ConversionAlimenticia)
}
