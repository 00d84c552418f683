package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cosecha según la calidad de los animales vendidos.
const (
	CosechaCabezas = "cabezas"
	CosechaMedia   = "media"
	CosechaColas   = "colas"
)

// TipoCosechaValido valida la taxonomía de cosechas.
func TipoCosechaValido(tipo string) bool {
	switch tipo {
	case CosechaCabezas, CosechaMedia, CosechaColas:
		return true
	}
	return false
}

// Cosecha es una venta parcial o final de animales de un lote. Cuando
// EsUltimaCosecha es true el lote se cierra automáticamente con FechaCierre
// igual a la fecha de la cosecha.
type Cosecha struct {
	ID               string
	LoteID           string
	Fecha            time.Time
	Tipo             string
	CantidadAnimales int
	PesoTotalKg      decimal.Decimal
	EsUltimaCosecha  bool
	Observaciones    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
