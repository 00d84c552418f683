package repository

import (
	"time"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// LoteRepository define el puerto de persistencia para Lote (DIP).
type LoteRepository interface {
	Create(lote *entity.Lote) error
	GetByID(id string) (*entity.Lote, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción: es la barrera de serialización entre
	// mutaciones de estado y lecturas de reportes.
	GetForUpdate(id string) (*entity.Lote, error)
	List(limit, offset int) ([]*entity.Lote, error)
	// ListAll devuelve todos los lotes; lo usa el pool de prorrateo.
	ListAll() ([]*entity.Lote, error)
	Update(lote *entity.Lote) error
	// Cerrar marca el lote como cerrado con la fecha dada.
	Cerrar(id string, fechaCierre time.Time) error
}
