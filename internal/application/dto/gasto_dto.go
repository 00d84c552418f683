package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// RegistrarGastoDirectoRequest entrada para un gasto directo de un lote.
type RegistrarGastoDirectoRequest struct {
	Fecha         string          `json:"fecha" validate:"required"`
	Concepto      string          `json:"concepto" validate:"required,min=1,max=200"`
	Tipo          string          `json:"tipo" validate:"required,oneof=flete inmunocastracion otro"`
	Monto         decimal.Decimal `json:"monto"`
	Observaciones string          `json:"observaciones"`
}

// GastoDirectoResponse salida de un gasto directo.
type GastoDirectoResponse struct {
	ID            string          `json:"id"`
	LoteID        string          `json:"lote_id"`
	Fecha         time.Time       `json:"fecha"`
	Concepto      string          `json:"concepto"`
	Tipo          string          `json:"tipo"`
	Monto         decimal.Decimal `json:"monto"`
	Observaciones string          `json:"observaciones"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToGastoDirectoResponse mapea la entidad a su representación HTTP.
func ToGastoDirectoResponse(g *entity.GastoDirecto) GastoDirectoResponse {
	return GastoDirectoResponse{
		ID:            g.ID,
		LoteID:        g.LoteID,
		Fecha:         g.Fecha,
		Concepto:      g.Concepto,
		Tipo:          g.Tipo,
		Monto:         g.Monto,
		Observaciones: g.Observaciones,
		CreatedAt:     g.CreatedAt,
	}
}

// RegistrarGastoMensualRequest entrada para un gasto mensual compartido.
type RegistrarGastoMensualRequest struct {
	Mes           int             `json:"mes" validate:"required,min=1,max=12"`
	Anio          int             `json:"anio" validate:"required,min=2020"`
	Concepto      string          `json:"concepto" validate:"required,min=1,max=200"`
	Tipo          string          `json:"tipo" validate:"required,oneof=arriendo servicios nomina medicamentos insumos otros"`
	Monto         decimal.Decimal `json:"monto"`
	Observaciones string          `json:"observaciones"`
}

// GastoMensualResponse salida de un gasto mensual compartido.
type GastoMensualResponse struct {
	ID            string          `json:"id"`
	Mes           int             `json:"mes"`
	Anio          int             `json:"anio"`
	Concepto      string          `json:"concepto"`
	Tipo          string          `json:"tipo"`
	Monto         decimal.Decimal `json:"monto"`
	Observaciones string          `json:"observaciones"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToGastoMensualResponse mapea la entidad a su representación HTTP.
func ToGastoMensualResponse(g *entity.GastoMensual) GastoMensualResponse {
	return GastoMensualResponse{
		ID:            g.ID,
		Mes:           g.Mes,
		Anio:          g.Anio,
		Concepto:      g.Concepto,
		Tipo:          g.Tipo,
		Monto:         g.Monto,
		Observaciones: g.Observaciones,
		CreatedAt:     g.CreatedAt,
	}
}
