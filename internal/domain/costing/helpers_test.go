package costing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test compartidos del paquete costing
// ──────────────────────────────────────────────────────────────────────────────

func fecha(anio, mes, dia int) time.Time {
	return time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func loteDePrueba(id string, inicio time.Time) *entity.Lote {
	return &entity.Lote{
		ID:                  id,
		NumeroLote:          "L-" + id,
		FechaInicio:         inicio,
		AnimalesIniciales:   100,
		PesoPromedioInicial: dec("25"),
		CantidadMachos:      50,
		CantidadHembras:     50,
		CostoLechones:       dec("10000000"),
		Estado:              entity.LoteEstadoActivo,
	}
}

func asignacion(loteID string, area string, desde time.Time, hasta *time.Time) entity.AsignacionCorral {
	return entity.AsignacionCorral{
		ID:              "asig-" + loteID,
		LoteID:          loteID,
		CorralID:        "corral-" + loteID,
		FechaAsignacion: desde,
		FechaLiberacion: hasta,
		AreaM2:          dec(area),
	}
}

func gastoMensual(anio, mes int, tipo, concepto, monto string) entity.GastoMensual {
	return entity.GastoMensual{
		ID:       "gasto-" + concepto,
		Anio:     anio,
		Mes:      mes,
		Tipo:     tipo,
		Concepto: concepto,
		Monto:    dec(monto),
	}
}
