package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.AsignacionCorralRepository = (*AsignacionCorralRepo)(nil)

// AsignacionCorralRepo implementación del puerto AsignacionCorralRepository
// sobre PostgreSQL (usable con pool o tx). El área del corral se lee con un
// join en cada consulta: la asignación no la duplica.
type AsignacionCorralRepo struct {
	q Querier
}

// NewAsignacionCorralRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAsignacionCorralRepository(q Querier) *AsignacionCorralRepo {
	return &AsignacionCorralRepo{q: q}
}

// Asignar crea la asignación. La tabla tiene un constraint de exclusión sobre
// (corral_id, intervalo de fechas); la violación se traduce a ErrCorralOccupied.
func (r *AsignacionCorralRepo) Asignar(asignacion *entity.AsignacionCorral) error {
	query := `
		INSERT INTO asignaciones_corral (id, lote_id, corral_id, fecha_asignacion, fecha_liberacion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		asignacion.ID, asignacion.LoteID, asignacion.CorralID,
		asignacion.FechaAsignacion, asignacion.FechaLiberacion, asignacion.CreatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) || isUniqueViolation(err) {
			return domain.ErrCorralOccupied
		}
		return fmt.Errorf("insert asignacion: %w", err)
	}
	return nil
}

// Liberar cierra todas las asignaciones abiertas del lote a la fecha dada.
func (r *AsignacionCorralRepo) Liberar(loteID string, fecha time.Time) error {
	query := `
		UPDATE asignaciones_corral SET fecha_liberacion = $2
		WHERE lote_id = $1 AND fecha_liberacion IS NULL`
	_, err := r.q.Exec(context.Background(), query, loteID, fecha)
	if err != nil {
		return fmt.Errorf("liberar asignaciones: %w", err)
	}
	return nil
}

const asignacionSelect = `
	SELECT a.id, a.lote_id, a.corral_id, a.fecha_asignacion, a.fecha_liberacion, c.area_m2, a.created_at
	FROM asignaciones_corral a
	JOIN corrales c ON c.id = a.corral_id`

// ListByLote devuelve las asignaciones de un lote con el área del corral.
func (r *AsignacionCorralRepo) ListByLote(loteID string) ([]entity.AsignacionCorral, error) {
	query := asignacionSelect + ` WHERE a.lote_id = $1 ORDER BY a.fecha_asignacion, a.id`
	rows, err := r.q.Query(context.Background(), query, loteID)
	if err != nil {
		return nil, fmt.Errorf("list asignaciones: %w", err)
	}
	defer rows.Close()
	return scanAsignaciones(rows)
}

// ListAll devuelve las asignaciones de todos los lotes agrupadas por lote; lo
// usa el pool de prorrateo.
func (r *AsignacionCorralRepo) ListAll() (map[string][]entity.AsignacionCorral, error) {
	query := asignacionSelect + ` ORDER BY a.lote_id, a.fecha_asignacion, a.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all asignaciones: %w", err)
	}
	defer rows.Close()

	asignaciones, err := scanAsignaciones(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]entity.AsignacionCorral)
	for _, a := range asignaciones {
		out[a.LoteID] = append(out[a.LoteID], a)
	}
	return out, nil
}

func scanAsignaciones(rows pgx.Rows) ([]entity.AsignacionCorral, error) {
	var out []entity.AsignacionCorral
	for rows.Next() {
		var a entity.AsignacionCorral
		if err := rows.Scan(
			&a.ID, &a.LoteID, &a.CorralID, &a.FechaAsignacion, &a.FechaLiberacion, &a.AreaM2, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asignacion: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asignaciones: %w", err)
	}
	return out, nil
}
