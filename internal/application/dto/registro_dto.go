package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// RegistrarConsumoRequest entrada para registrar consumo de alimento.
type RegistrarConsumoRequest struct {
	AlimentoID     string          `json:"alimento_id" validate:"required"`
	Fecha          string          `json:"fecha" validate:"required"`
	CantidadBultos decimal.Decimal `json:"cantidad_bultos"`
	Observaciones  string          `json:"observaciones"`
}

// ConsumoResponse salida de un consumo.
type ConsumoResponse struct {
	ID             string          `json:"id"`
	LoteID         string          `json:"lote_id"`
	AlimentoID     string          `json:"alimento_id"`
	Fecha          time.Time       `json:"fecha"`
	CantidadBultos decimal.Decimal `json:"cantidad_bultos"`
	Observaciones  string          `json:"observaciones"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToConsumoResponse mapea la entidad a su representación HTTP.
func ToConsumoResponse(c *entity.ConsumoAlimento) ConsumoResponse {
	return ConsumoResponse{
		ID:             c.ID,
		LoteID:         c.LoteID,
		AlimentoID:     c.AlimentoID,
		Fecha:          c.Fecha,
		CantidadBultos: c.CantidadBultos,
		Observaciones:  c.Observaciones,
		CreatedAt:      c.CreatedAt,
	}
}

// RegistrarMortalidadRequest entrada para registrar bajas.
type RegistrarMortalidadRequest struct {
	Fecha          string           `json:"fecha" validate:"required"`
	Cantidad       int              `json:"cantidad" validate:"required,min=1"`
	PesoPromedioKg *decimal.Decimal `json:"peso_promedio_kg"`
	Causa          string           `json:"causa"`
	Observaciones  string           `json:"observaciones"`
}

// MortalidadResponse salida de un registro de mortalidad.
type MortalidadResponse struct {
	ID             string           `json:"id"`
	LoteID         string           `json:"lote_id"`
	Fecha          time.Time        `json:"fecha"`
	Cantidad       int              `json:"cantidad"`
	PesoPromedioKg *decimal.Decimal `json:"peso_promedio_kg,omitempty"`
	Causa          string           `json:"causa"`
	Observaciones  string           `json:"observaciones"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ToMortalidadResponse mapea la entidad a su representación HTTP.
func ToMortalidadResponse(m *entity.Mortalidad) MortalidadResponse {
	return MortalidadResponse{
		ID:             m.ID,
		LoteID:         m.LoteID,
		Fecha:          m.Fecha,
		Cantidad:       m.Cantidad,
		PesoPromedioKg: m.PesoPromedioKg,
		Causa:          m.Causa,
		Observaciones:  m.Observaciones,
		CreatedAt:      m.CreatedAt,
	}
}

// RegistrarCosechaRequest entrada para registrar una cosecha.
type RegistrarCosechaRequest struct {
	Fecha            string          `json:"fecha" validate:"required"`
	Tipo             string          `json:"tipo" validate:"required,oneof=cabezas media colas"`
	CantidadAnimales int             `json:"cantidad_animales" validate:"required,min=1"`
	PesoTotalKg      decimal.Decimal `json:"peso_total_kg"`
	EsUltimaCosecha  bool            `json:"es_ultima_cosecha"`
	Observaciones    string          `json:"observaciones"`
}

// CosechaResponse salida de una cosecha.
type CosechaResponse struct {
	ID               string          `json:"id"`
	LoteID           string          `json:"lote_id"`
	Fecha            time.Time       `json:"fecha"`
	Tipo             string          `json:"tipo"`
	CantidadAnimales int             `json:"cantidad_animales"`
	PesoTotalKg      decimal.Decimal `json:"peso_total_kg"`
	EsUltimaCosecha  bool            `json:"es_ultima_cosecha"`
	Observaciones    string          `json:"observaciones"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ToCosechaResponse mapea la entidad a su representación HTTP.
func ToCosechaResponse(c *entity.Cosecha) CosechaResponse {
	return CosechaResponse{
		ID:               c.ID,
		LoteID:           c.LoteID,
		Fecha:            c.Fecha,
		Tipo:             c.Tipo,
		CantidadAnimales: c.CantidadAnimales,
		PesoTotalKg:      c.PesoTotalKg,
		EsUltimaCosecha:  c.EsUltimaCosecha,
		Observaciones:    c.Observaciones,
		CreatedAt:        c.CreatedAt,
	}
}
