package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.MortalidadRepository = (*MortalidadRepo)(nil)

// MortalidadRepo implementación del ledger de mortalidad sobre PostgreSQL (usable con pool o tx).
type MortalidadRepo struct {
	q Querier
}

// NewMortalidadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMortalidadRepository(q Querier) *MortalidadRepo {
	return &MortalidadRepo{q: q}
}

const mortalidadColumns = `id, lote_id, fecha, cantidad, peso_promedio_kg, causa, observaciones, created_at, updated_at`

// Create anexa un registro de bajas al ledger.
func (r *MortalidadRepo) Create(mortalidad *entity.Mortalidad) error {
	query := `
		INSERT INTO mortalidad (` + mortalidadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mortalidad.ID, mortalidad.LoteID, mortalidad.Fecha, mortalidad.Cantidad,
		mortalidad.PesoPromedioKg, mortalidad.Causa, mortalidad.Observaciones,
		mortalidad.CreatedAt, mortalidad.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mortalidad: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de mortalidad por ID.
func (r *MortalidadRepo) GetByID(id string) (*entity.Mortalidad, error) {
	query := `SELECT ` + mortalidadColumns + ` FROM mortalidad WHERE id = $1`
	var m entity.Mortalidad
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.LoteID, &m.Fecha, &m.Cantidad, &m.PesoPromedioKg,
		&m.Causa, &m.Observaciones, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mortalidad: %w", err)
	}
	return &m, nil
}

// ListByLote devuelve el ledger de mortalidad de un lote en orden cronológico.
func (r *MortalidadRepo) ListByLote(loteID string) ([]entity.Mortalidad, error) {
	query := `SELECT ` + mortalidadColumns + ` FROM mortalidad WHERE lote_id = $1 ORDER BY fecha, id`
	rows, err := r.q.Query(context.Background(), query, loteID)
	if err != nil {
		return nil, fmt.Errorf("list mortalidad: %w", err)
	}
	defer rows.Close()

	var registros []entity.Mortalidad
	for rows.Next() {
		var m entity.Mortalidad
		if err := rows.Scan(
			&m.ID, &m.LoteID, &m.Fecha, &m.Cantidad, &m.PesoPromedioKg,
			&m.Causa, &m.Observaciones, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mortalidad: %w", err)
		}
		registros = append(registros, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mortalidad: %w", err)
	}
	return registros, nil
}

// TotalByLote devuelve la suma de bajas del lote (para validar cupos).
func (r *MortalidadRepo) TotalByLote(loteID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad), 0) FROM mortalidad WHERE lote_id = $1`, loteID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total mortalidad: %w", err)
	}
	return total, nil
}

// Delete borra un registro de mortalidad.
func (r *MortalidadRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM mortalidad WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mortalidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
