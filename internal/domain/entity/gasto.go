package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de gasto directo (atribuible por completo a un lote).
const (
	GastoDirectoFlete            = "flete"
	GastoDirectoInmunocastracion = "inmunocastracion"
	GastoDirectoOtro             = "otro"
)

// TipoGastoDirectoValido valida la taxonomía de gastos directos.
func TipoGastoDirectoValido(tipo string) bool {
	switch tipo {
	case GastoDirectoFlete, GastoDirectoInmunocastracion, GastoDirectoOtro:
		return true
	}
	return false
}

// GastoDirecto es un costo atribuible por completo a un lote.
type GastoDirecto struct {
	ID            string
	LoteID        string
	Fecha         time.Time
	Concepto      string
	Tipo          string
	Monto         decimal.Decimal
	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Tipos de gasto mensual compartido. Arriendo tiene fórmula de prorrateo propia.
const (
	GastoMensualArriendo     = "arriendo"
	GastoMensualServicios    = "servicios"
	GastoMensualNomina       = "nomina"
	GastoMensualMedicamentos = "medicamentos"
	GastoMensualInsumos      = "insumos"
	GastoMensualOtros        = "otros"
)

// TipoGastoMensualValido valida la taxonomía de gastos mensuales.
func TipoGastoMensualValido(tipo string) bool {
	switch tipo {
	case GastoMensualArriendo, GastoMensualServicios, GastoMensualNomina,
		GastoMensualMedicamentos, GastoMensualInsumos, GastoMensualOtros:
		return true
	}
	return false
}

// GastoMensual es un costo compartido de la granja (arriendo, servicios,
// nómina...) que se prorratea entre todos los lotes activos del mes.
type GastoMensual struct {
	ID            string
	Mes           int // 1-12
	Anio          int
	Concepto      string
	Tipo          string
	Monto         decimal.Decimal
	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
