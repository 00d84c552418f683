package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un lote. La transición activo → cerrado es
// terminal: un lote cerrado solo admite lecturas de reportes.
const (
	LoteEstadoActivo  = "activo"
	LoteEstadoCerrado = "cerrado"
)

// Lote representa una camada de animales criados juntos desde el ingreso
// hasta la venta final. FechaCierre es nil mientras el lote está activo.
// Invariante: CantidadMachos + CantidadHembras == AnimalesIniciales.
type Lote struct {
	ID                  string
	NumeroLote          string
	FechaInicio         time.Time
	FechaCierre         *time.Time
	AnimalesIniciales   int
	PesoPromedioInicial decimal.Decimal // kg por animal al ingreso
	CantidadMachos      int
	CantidadHembras     int
	CostoLechones       decimal.Decimal // costo total de compra de la camada
	Estado              string
	Observaciones       string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Activo indica si el lote admite mutaciones (consumos, mortalidad, cosechas).
func (l *Lote) Activo() bool {
	return l.Estado == LoteEstadoActivo
}
