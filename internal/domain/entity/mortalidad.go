package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mortalidad registra bajas de animales de un lote. Cantidad siempre > 0;
// PesoPromedioKg es opcional (no siempre se pesa la baja).
type Mortalidad struct {
	ID             string
	LoteID         string
	Fecha          time.Time
	Cantidad       int
	PesoPromedioKg *decimal.Decimal
	Causa          string
	Observaciones  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
