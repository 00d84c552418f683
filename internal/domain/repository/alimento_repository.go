package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// AlimentoRepository define el puerto de persistencia para Alimento.
type AlimentoRepository interface {
	Create(alimento *entity.Alimento) error
	GetByID(id string) (*entity.Alimento, error)
	List(limit, offset int) ([]*entity.Alimento, error)
	// MapAll devuelve todos los alimentos indexados por ID, incluidos los
	// inactivos: la agregación histórica los necesita.
	MapAll() (map[string]*entity.Alimento, error)
	Update(alimento *entity.Alimento) error
}

// ConsumoAlimentoRepository maneja el ledger de consumo de alimento.
type ConsumoAlimentoRepository interface {
	Create(consumo *entity.ConsumoAlimento) error
	GetByID(id string) (*entity.ConsumoAlimento, error)
	ListByLote(loteID string) ([]entity.ConsumoAlimento, error)
	Delete(id string) error
}
