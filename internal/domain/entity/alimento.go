package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de alimento según la etapa de la ceba. Taxonomía cerrada.
const (
	AlimentoPreiniciador = "preiniciador"
	AlimentoLevante      = "levante"
	AlimentoEngorde      = "engorde"
)

// TipoAlimentoValido valida la taxonomía de alimentos.
func TipoAlimentoValido(tipo string) bool {
	switch tipo {
	case AlimentoPreiniciador, AlimentoLevante, AlimentoEngorde:
		return true
	}
	return false
}

// Alimento es una referencia de concentrado. Un alimento inactivo no admite
// consumos nuevos pero sigue siendo válido para la agregación histórica.
type Alimento struct {
	ID            string
	Nombre        string
	Tipo          string
	CostoPorBulto decimal.Decimal
	PesoBultoKg   decimal.Decimal
	Activo        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ConsumoAlimento registra bultos consumidos por un lote en una fecha.
// CantidadBultos admite fracciones.
type ConsumoAlimento struct {
	ID             string
	LoteID         string
	AlimentoID     string
	Fecha          time.Time
	CantidadBultos decimal.Decimal
	Observaciones  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Kg devuelve los kilogramos consumidos según el peso por bulto del alimento.
func (c *ConsumoAlimento) Kg(a *Alimento) decimal.Decimal {
	return c.CantidadBultos.Mul(a.PesoBultoKg)
}

// Costo devuelve el costo del consumo según el costo por bulto del alimento.
func (c *ConsumoAlimento) Costo(a *Alimento) decimal.Decimal {
	return c.CantidadBultos.Mul(a.CostoPorBulto)
}
