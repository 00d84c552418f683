package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// CreateLoteRequest entrada para crear un lote. Las fechas son "YYYY-MM-DD".
type CreateLoteRequest struct {
	NumeroLote          string          `json:"numero_lote" validate:"required,min=1,max=50"`
	FechaInicio         string          `json:"fecha_inicio" validate:"required"`
	AnimalesIniciales   int             `json:"animales_iniciales" validate:"required,min=1"`
	PesoPromedioInicial decimal.Decimal `json:"peso_promedio_inicial"`
	CantidadMachos      int             `json:"cantidad_machos" validate:"min=0"`
	CantidadHembras     int             `json:"cantidad_hembras" validate:"min=0"`
	CostoLechones       decimal.Decimal `json:"costo_lechones"`
	Observaciones       string          `json:"observaciones"`
	CorralesIDs         []string        `json:"corrales_ids" validate:"required,min=1"`
}

// UpdateLoteRequest campos editables de un lote activo.
type UpdateLoteRequest struct {
	NumeroLote    *string `json:"numero_lote" validate:"omitempty,min=1,max=50"`
	Observaciones *string `json:"observaciones"`
}

// CerrarLoteRequest entrada para el cierre explícito.
type CerrarLoteRequest struct {
	FechaCierre string `json:"fecha_cierre" validate:"required"`
}

// LoteResponse salida de un lote.
type LoteResponse struct {
	ID                  string          `json:"id"`
	NumeroLote          string          `json:"numero_lote"`
	FechaInicio         time.Time       `json:"fecha_inicio"`
	FechaCierre         *time.Time      `json:"fecha_cierre,omitempty"`
	AnimalesIniciales   int             `json:"animales_iniciales"`
	PesoPromedioInicial decimal.Decimal `json:"peso_promedio_inicial"`
	CantidadMachos      int             `json:"cantidad_machos"`
	CantidadHembras     int             `json:"cantidad_hembras"`
	CostoLechones       decimal.Decimal `json:"costo_lechones"`
	Estado              string          `json:"estado"`
	Observaciones       string          `json:"observaciones"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ToLoteResponse mapea la entidad a su representación HTTP.
func ToLoteResponse(l *entity.Lote) LoteResponse {
	return LoteResponse{
		ID:                  l.ID,
		NumeroLote:          l.NumeroLote,
		FechaInicio:         l.FechaInicio,
		FechaCierre:         l.FechaCierre,
		AnimalesIniciales:   l.AnimalesIniciales,
		PesoPromedioInicial: l.PesoPromedioInicial,
		CantidadMachos:      l.CantidadMachos,
		CantidadHembras:     l.CantidadHembras,
		CostoLechones:       l.CostoLechones,
		Estado:              l.Estado,
		Observaciones:       l.Observaciones,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}

// LoteListResponse lista paginada de lotes.
type LoteListResponse struct {
	Items []LoteResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
