package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// Lote activo todo el mes con un solo corral: días = días del mes y el área
// promedio es la del corral.
func TestPresenciaMensual_MesCompleto(t *testing.T) {
	lote := loteDePrueba("A", fecha(2024, 10, 1))
	asigs := []entity.AsignacionCorral{asignacion("A", "100", fecha(2024, 10, 1), nil)}

	dias, area := PresenciaMensual(lote, asigs, 2024, 11, fecha(2024, 12, 31))

	assert.Equal(t, 30, dias)
	assert.True(t, area.Equal(dec("100")), "area = %s", area)
}

// Lote que inicia a mitad de mes: solo cuentan los días desde el inicio.
func TestPresenciaMensual_InicioAMitadDeMes(t *testing.T) {
	lote := loteDePrueba("A", fecha(2024, 11, 10))
	asigs := []entity.AsignacionCorral{asignacion("A", "100", fecha(2024, 11, 10), nil)}

	dias, _ := PresenciaMensual(lote, asigs, 2024, 11, fecha(2024, 12, 31))

	// Del 10 al 30 de noviembre inclusive
	assert.Equal(t, 21, dias)
}

// Lote cerrado a mitad de mes: la fecha de cierre acota los días activos.
func TestPresenciaMensual_CierreAMitadDeMes(t *testing.T) {
	lote := loteDePrueba("A", fecha(2024, 9, 1))
	cierre := fecha(2024, 11, 15)
	lote.FechaCierre = &cierre
	lote.Estado = entity.LoteEstadoCerrado
	liberacion := fecha(2024, 11, 16)
	asigs := []entity.AsignacionCorral{asignacion("A", "100", fecha(2024, 9, 1), &liberacion)}

	dias, area := PresenciaMensual(lote, asigs, 2024, 11, fecha(2024, 12, 31))

	assert.Equal(t, 15, dias)
	assert.True(t, area.Equal(dec("100")))
}

// Lote abierto: la fecha de corte explícita acota el período, el motor no
// consulta el reloj.
func TestPresenciaMensual_CorteAcotaLotesAbiertos(t *testing.T) {
	lote := loteDePrueba("A", fecha(2024, 11, 1))
	asigs := []entity.AsignacionCorral{asignacion("A", "100", fecha(2024, 11, 1), nil)}

	dias, _ := PresenciaMensual(lote, asigs, 2024, 11, fecha(2024, 11, 10))

	assert.Equal(t, 10, dias)
}

// El conjunto de corrales cambia a mitad de mes: el área se pondera día a día.
func TestPresenciaMensual_CambioDeCorralAMitadDeMes(t *testing.T) {
	lote := loteDePrueba("A", fecha(2024, 11, 1))
	asigs := []entity.AsignacionCorral{
		asignacion("A", "100", fecha(2024, 11, 1), nil),
		asignacion("A", "50", fecha(2024, 11, 16), nil),
	}

	dias, area := PresenciaMensual(lote, asigs, 2024, 11, fecha(2024, 12, 31))

	require.Equal(t, 30, dias)
	// (100×30 + 50×15) / 30 = 125
	assert.True(t, area.Equal(dec("125")), "area = %s", area)
}

// Fuera del período de vida del lote no hay presencia.
func TestPresenciaMensual_MesFueraDelPeriodo(t *testing.T) {
	lote := loteDePrueba("A", fecha(2024, 11, 5))
	asigs := []entity.AsignacionCorral{asignacion("A", "100", fecha(2024, 11, 5), nil)}

	dias, area := PresenciaMensual(lote, asigs, 2024, 10, fecha(2024, 12, 31))

	assert.Equal(t, 0, dias)
	assert.True(t, area.IsZero())
}

// El pool incluye lotes activos sin corral (área cero) y excluye los que no
// tuvieron días activos; el orden es estable por ID.
func TestPoolActivo_OrdenYExclusiones(t *testing.T) {
	lotes := []*entity.Lote{
		loteDePrueba("B", fecha(2024, 11, 1)),
		loteDePrueba("A", fecha(2024, 11, 1)),
		loteDePrueba("C", fecha(2024, 12, 1)), // inicia después del mes consultado
	}
	asigs := map[string][]entity.AsignacionCorral{
		"B": {asignacion("B", "80", fecha(2024, 11, 1), nil)},
		// A sin corrales: queda en el pool con área cero
	}

	pool := PoolActivo(lotes, asigs, 2024, 11, fecha(2024, 12, 31))

	require.Len(t, pool, 2)
	assert.Equal(t, "A", pool[0].LoteID)
	assert.True(t, pool[0].AreaM2.IsZero())
	assert.Equal(t, "B", pool[1].LoteID)
	assert.True(t, pool[1].AreaM2.Equal(dec("80")))
}

func TestDiasDelMes(t *testing.T) {
	assert.Equal(t, 30, DiasDelMes(2024, 11))
	assert.Equal(t, 31, DiasDelMes(2024, 12))
	assert.Equal(t, 29, DiasDelMes(2024, 2)) // bisiesto
	assert.Equal(t, 28, DiasDelMes(2025, 2))
}
