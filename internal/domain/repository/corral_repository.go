package repository

import (
	"time"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// CorralRepository define el puerto de persistencia para Corral.
type CorralRepository interface {
	Create(corral *entity.Corral) error
	GetByID(id string) (*entity.Corral, error)
	List(limit, offset int) ([]*entity.Corral, error)
	Update(corral *entity.Corral) error
}

// AsignacionCorralRepository maneja la ocupación de corrales por lote.
type AsignacionCorralRepository interface {
	// Asignar crea la asignación; devuelve domain.ErrCorralOccupied si el
	// corral ya tiene una asignación abierta o solapada.
	Asignar(asignacion *entity.AsignacionCorral) error
	// Liberar cierra todas las asignaciones abiertas del lote a la fecha dada.
	Liberar(loteID string, fecha time.Time) error
	ListByLote(loteID string) ([]entity.AsignacionCorral, error)
	// ListAll devuelve las asignaciones de todos los lotes agrupadas por lote;
	// lo usa el pool de prorrateo.
	ListAll() (map[string][]entity.AsignacionCorral, error)
}
