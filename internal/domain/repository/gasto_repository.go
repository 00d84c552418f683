package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// GastoDirectoRepository maneja el ledger de gastos directos por lote.
type GastoDirectoRepository interface {
	Create(gasto *entity.GastoDirecto) error
	GetByID(id string) (*entity.GastoDirecto, error)
	ListByLote(loteID string) ([]entity.GastoDirecto, error)
	Delete(id string) error
}

// GastoMensualRepository maneja el ledger global de gastos mensuales
// compartidos (no está atado a un lote).
type GastoMensualRepository interface {
	Create(gasto *entity.GastoMensual) error
	GetByID(id string) (*entity.GastoMensual, error)
	ListByMes(anio, mes int) ([]entity.GastoMensual, error)
	// ListAll devuelve el ledger completo; el agregador de costos filtra por
	// los meses de vida del lote.
	ListAll() ([]entity.GastoMensual, error)
	Delete(id string) error
}
