package costing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

func alimentoDePrueba(id, tipo, costoBulto, pesoBulto string) *entity.Alimento {
	return &entity.Alimento{
		ID:            id,
		Nombre:        "alimento-" + id,
		Tipo:          tipo,
		CostoPorBulto: dec(costoBulto),
		PesoBultoKg:   dec(pesoBulto),
		Activo:        true,
	}
}

// datosDosLotes arma un escenario de dos meses con dos lotes compartiendo la
// granja: consumo, gastos directos y gastos mensuales por prorratear.
func datosDosLotes() (*DatosLote, *DatosGranja) {
	loteA := loteDePrueba("A", fecha(2024, 11, 1))
	loteB := loteDePrueba("B", fecha(2024, 11, 1))

	datos := &DatosLote{
		Lote:         loteA,
		Asignaciones: []entity.AsignacionCorral{asignacion("A", "100", fecha(2024, 11, 1), nil)},
		Alimentos: map[string]*entity.Alimento{
			"al-1": alimentoDePrueba("al-1", entity.AlimentoPreiniciador, "120000", "40"),
			"al-2": alimentoDePrueba("al-2", entity.AlimentoEngorde, "95000", "40"),
		},
		Consumos: []entity.ConsumoAlimento{
			{ID: "c-1", LoteID: "A", AlimentoID: "al-1", Fecha: fecha(2024, 11, 5), CantidadBultos: dec("10")},
			{ID: "c-2", LoteID: "A", AlimentoID: "al-2", Fecha: fecha(2024, 12, 3), CantidadBultos: dec("2.5")},
		},
		GastosDirectos: []entity.GastoDirecto{
			{ID: "gd-1", LoteID: "A", Tipo: entity.GastoDirectoFlete, Concepto: "flete ingreso", Monto: dec("350000"), Fecha: fecha(2024, 11, 2)},
			{ID: "gd-2", LoteID: "A", Tipo: entity.GastoDirectoFlete, Concepto: "flete venta", Monto: dec("150000"), Fecha: fecha(2024, 12, 10)},
			{ID: "gd-3", LoteID: "A", Tipo: entity.GastoDirectoOtro, Concepto: "varios", Monto: dec("80000"), Fecha: fecha(2024, 12, 11)},
		},
	}
	granja := &DatosGranja{
		Lotes: []*entity.Lote{loteA, loteB},
		AsignacionesPorLote: map[string][]entity.AsignacionCorral{
			"A": datos.Asignaciones,
			"B": {asignacion("B", "100", fecha(2024, 11, 1), nil)},
		},
		GastosMensuales: []entity.GastoMensual{
			gastoMensual(2024, 11, entity.GastoMensualServicios, "energia", "200000"),
			gastoMensual(2024, 12, entity.GastoMensualArriendo, "arriendo", "1000000"),
		},
	}
	return datos, granja
}

// El costo total es exactamente lechones + alimento + directos + prorrateados,
// y cada sub-bloque cuadra con sus componentes.
func TestCalcularCostos_IdentidadDelTotal(t *testing.T) {
	datos, granja := datosDosLotes()
	calc := NewCalculadora(nil)

	costos, err := calc.CalcularCostos(context.Background(), datos, granja, fecha(2024, 12, 31))
	require.NoError(t, err)

	// Alimento: 10×120000 + 2.5×95000 = 1.437.500; kg: 10×40 + 2.5×40 = 500
	assert.True(t, costos.Alimento.CostoTotal.Equal(dec("1437500")), "alimento = %s", costos.Alimento.CostoTotal)
	assert.True(t, costos.Alimento.KgTotal.Equal(dec("500")))
	assert.True(t, costos.Alimento.PorTipo[entity.AlimentoPreiniciador].Costo.Equal(dec("1200000")))
	assert.True(t, costos.Alimento.PorTipo[entity.AlimentoEngorde].Bultos.Equal(dec("2.5")))

	// Directos: 350.000 + 150.000 + 80.000, con flete agrupado
	assert.True(t, costos.Directos.Total.Equal(dec("580000")))
	assert.True(t, costos.Directos.PorTipo[entity.GastoDirectoFlete].Equal(dec("500000")))

	// Prorrateo: ambos lotes idénticos → mitad de cada gasto (100.000 + 500.000)
	assert.True(t, costos.Prorrateados.Equal(dec("600000")), "prorrateados = %s", costos.Prorrateados)

	esperado := costos.Lechones.
		Add(costos.Alimento.CostoTotal).
		Add(costos.Directos.Total).
		Add(costos.Prorrateados)
	assert.True(t, costos.Total.Equal(esperado), "total = %s esperado = %s", costos.Total, esperado)

	// Detalle mes a mes en orden cronológico, con metadata reconstructible
	require.Len(t, costos.PorMes, 2)
	assert.Equal(t, 11, costos.PorMes[0].Mes)
	assert.Equal(t, 12, costos.PorMes[1].Mes)
	require.Len(t, costos.PorMes[0].Detalles, 1)
	det := costos.PorMes[0].Detalles[0]
	assert.Equal(t, "energia", det.Concepto)
	assert.True(t, det.MontoTotal.Equal(dec("200000")))
	assert.Equal(t, 30, det.DiasActivos)
	assert.Equal(t, 30, det.DiasMes)
	assert.True(t, det.AreaLoteM2.Equal(dec("100")))
}

// Un consumo que referencia un alimento inexistente es un error de
// integridad que identifica el registro ofensor.
func TestCalcularCostos_AlimentoDesconocido(t *testing.T) {
	datos, granja := datosDosLotes()
	datos.Consumos = append(datos.Consumos, entity.ConsumoAlimento{
		ID: "c-huerfano", LoteID: "A", AlimentoID: "no-existe", CantidadBultos: dec("1"),
	})
	calc := NewCalculadora(nil)

	_, err := calc.CalcularCostos(context.Background(), datos, granja, fecha(2024, 12, 31))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
	assert.Contains(t, err.Error(), "c-huerfano")
	assert.Contains(t, err.Error(), "no-existe")
}

// Mes con gasto pero sin área en ningún lote: el gasto queda sin asignar,
// se reporta como advertencia y el resto del reporte se entrega igual.
func TestCalcularCostos_GastoSinAsignarEsAdvertencia(t *testing.T) {
	datos, granja := datosDosLotes()
	granja.AsignacionesPorLote = map[string][]entity.AsignacionCorral{}
	datos.Asignaciones = nil
	calc := NewCalculadora(nil)

	costos, err := calc.CalcularCostos(context.Background(), datos, granja, fecha(2024, 12, 31))
	require.NoError(t, err)

	assert.True(t, costos.Prorrateados.IsZero())
	require.Len(t, costos.Advertencias, 2)
	assert.Equal(t, "energia", costos.Advertencias[0].Concepto)
	// El resto del desglose sigue completo
	assert.True(t, costos.Alimento.CostoTotal.Equal(dec("1437500")))
}

// El bucle mes a mes respeta la cancelación del contexto.
func TestCalcularCostos_ContextoCancelado(t *testing.T) {
	datos, granja := datosDosLotes()
	calc := NewCalculadora(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := calc.CalcularCostos(ctx, datos, granja, fecha(2024, 12, 31))
	assert.ErrorIs(t, err, context.Canceled)
}

// Dos corridas sobre la misma foto del ledger producen resultados idénticos.
func TestCalcularCostos_Idempotente(t *testing.T) {
	datos, granja := datosDosLotes()
	calc := NewCalculadora(nil)

	primero, err := calc.CalcularCostos(context.Background(), datos, granja, fecha(2024, 12, 31))
	require.NoError(t, err)
	segundo, err := calc.CalcularCostos(context.Background(), datos, granja, fecha(2024, 12, 31))
	require.NoError(t, err)

	assert.Equal(t, primero, segundo)
}

// ProrratearMes responde la consulta puntual de un mes, incluso uno sin
// gastos registrados.
func TestProrratearMes_ConsultaPuntual(t *testing.T) {
	datos, granja := datosDosLotes()
	_ = datos
	calc := NewCalculadora(nil)

	resumen, advs, err := calc.ProrratearMes(context.Background(), "A", granja, 2024, 12, fecha(2024, 12, 31))
	require.NoError(t, err)
	assert.Empty(t, advs)
	require.Len(t, resumen.Detalles, 1)
	assert.Equal(t, entity.GastoMensualArriendo, resumen.Detalles[0].Tipo)
	assert.True(t, resumen.Total.Equal(dec("500000")))

	vacio, advs, err := calc.ProrratearMes(context.Background(), "A", granja, 2025, 3, fecha(2025, 3, 31))
	require.NoError(t, err)
	assert.Empty(t, advs)
	assert.True(t, vacio.Total.IsZero())
	assert.Empty(t, vacio.Detalles)
}

func TestCalcularCostos_SinGastosMensuales(t *testing.T) {
	datos, granja := datosDosLotes()
	granja.GastosMensuales = nil
	calc := NewCalculadora(nil)

	costos, err := calc.CalcularCostos(context.Background(), datos, granja, fecha(2024, 12, 31))
	require.NoError(t, err)
	assert.True(t, costos.Prorrateados.Equal(decimal.Zero))
	assert.True(t, costos.Total.Equal(dec("12017500"))) // 10.000.000 + 1.437.500 + 580.000
}
