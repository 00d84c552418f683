package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// CreateCorralRequest entrada para crear un corral.
type CreateCorralRequest struct {
	Nombre string          `json:"nombre" validate:"required,min=1,max=100"`
	AreaM2 decimal.Decimal `json:"area_m2"`
}

// UpdateCorralRequest campos editables de un corral.
type UpdateCorralRequest struct {
	Nombre *string          `json:"nombre" validate:"omitempty,min=1,max=100"`
	AreaM2 *decimal.Decimal `json:"area_m2"`
	Activo *bool            `json:"activo"`
}

// CorralResponse salida de un corral.
type CorralResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	AreaM2    decimal.Decimal `json:"area_m2"`
	Activo    bool            `json:"activo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToCorralResponse mapea la entidad a su representación HTTP.
func ToCorralResponse(c *entity.Corral) CorralResponse {
	return CorralResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		AreaM2:    c.AreaM2,
		Activo:    c.Activo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CreateAlimentoRequest entrada para crear un alimento.
type CreateAlimentoRequest struct {
	Nombre        string          `json:"nombre" validate:"required,min=1,max=100"`
	Tipo          string          `json:"tipo" validate:"required,oneof=preiniciador levante engorde"`
	CostoPorBulto decimal.Decimal `json:"costo_por_bulto"`
	PesoBultoKg   decimal.Decimal `json:"peso_bulto_kg"`
}

// UpdateAlimentoRequest campos editables de un alimento.
type UpdateAlimentoRequest struct {
	Nombre        *string          `json:"nombre" validate:"omitempty,min=1,max=100"`
	Tipo          *string          `json:"tipo" validate:"omitempty,oneof=preiniciador levante engorde"`
	CostoPorBulto *decimal.Decimal `json:"costo_por_bulto"`
	PesoBultoKg   *decimal.Decimal `json:"peso_bulto_kg"`
	Activo        *bool            `json:"activo"`
}

// AlimentoResponse salida de un alimento.
type AlimentoResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Tipo          string          `json:"tipo"`
	CostoPorBulto decimal.Decimal `json:"costo_por_bulto"`
	PesoBultoKg   decimal.Decimal `json:"peso_bulto_kg"`
	Activo        bool            `json:"activo"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToAlimentoResponse mapea la entidad a su representación HTTP.
func ToAlimentoResponse(a *entity.Alimento) AlimentoResponse {
	return AlimentoResponse{
		ID:            a.ID,
		Nombre:        a.Nombre,
		Tipo:          a.Tipo,
		CostoPorBulto: a.CostoPorBulto,
		PesoBultoKg:   a.PesoBultoKg,
		Activo:        a.Activo,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
