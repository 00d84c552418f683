package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// CosechaRepository maneja el ledger de cosechas (ventas).
type CosechaRepository interface {
	Create(cosecha *entity.Cosecha) error
	GetByID(id string) (*entity.Cosecha, error)
	ListByLote(loteID string) ([]entity.Cosecha, error)
	// TotalAnimalesByLote devuelve la suma de animales vendidos del lote.
	TotalAnimalesByLote(loteID string) (int, error)
	Delete(id string) error
}
