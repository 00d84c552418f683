package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// MortalidadRepository maneja el ledger de mortalidad.
type MortalidadRepository interface {
	Create(mortalidad *entity.Mortalidad) error
	GetByID(id string) (*entity.Mortalidad, error)
	ListByLote(loteID string) ([]entity.Mortalidad, error)
	// TotalByLote devuelve la suma de bajas del lote (para validar cupos).
	TotalByLote(loteID string) (int, error)
	Delete(id string) error
}
