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

var _ repository.CosechaRepository = (*CosechaRepo)(nil)

// CosechaRepo implementación del ledger de cosechas sobre PostgreSQL (usable con pool o tx).
type CosechaRepo struct {
	q Querier
}

// NewCosechaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCosechaRepository(q Querier) *CosechaRepo {
	return &CosechaRepo{q: q}
}

const cosechaColumns = `id, lote_id, fecha, tipo, cantidad_animales, peso_total_kg, es_ultima_cosecha, observaciones, created_at, updated_at`

// Create anexa una cosecha al ledger.
func (r *CosechaRepo) Create(cosecha *entity.Cosecha) error {
	query := `
		INSERT INTO cosechas (` + cosechaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cosecha.ID, cosecha.LoteID, cosecha.Fecha, cosecha.Tipo, cosecha.CantidadAnimales,
		cosecha.PesoTotalKg, cosecha.EsUltimaCosecha, cosecha.Observaciones,
		cosecha.CreatedAt, cosecha.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cosecha: %w", err)
	}
	return nil
}

// GetByID obtiene una cosecha por ID.
func (r *CosechaRepo) GetByID(id string) (*entity.Cosecha, error) {
	query := `SELECT ` + cosechaColumns + ` FROM cosechas WHERE id = $1`
	var c entity.Cosecha
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.LoteID, &c.Fecha, &c.Tipo, &c.CantidadAnimales,
		&c.PesoTotalKg, &c.EsUltimaCosecha, &c.Observaciones, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cosecha: %w", err)
	}
	return &c, nil
}

// ListByLote devuelve el ledger de cosechas de un lote en orden cronológico.
func (r *CosechaRepo) ListByLote(loteID string) ([]entity.Cosecha, error) {
	query := `SELECT ` + cosechaColumns + ` FROM cosechas WHERE lote_id = $1 ORDER BY fecha, id`
	rows, err := r.q.Query(context.Background(), query, loteID)
	if err != nil {
		return nil, fmt.Errorf("list cosechas: %w", err)
	}
	defer rows.Close()

	var cosechas []entity.Cosecha
	for rows.Next() {
		var c entity.Cosecha
		if err := rows.Scan(
			&c.ID, &c.LoteID, &c.Fecha, &c.Tipo, &c.CantidadAnimales,
			&c.PesoTotalKg, &c.EsUltimaCosecha, &c.Observaciones, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cosecha: %w", err)
		}
		cosechas = append(cosechas, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cosechas: %w", err)
	}
	return cosechas, nil
}

// TotalAnimalesByLote devuelve la suma de animales vendidos del lote.
func (r *CosechaRepo) TotalAnimalesByLote(loteID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad_animales), 0) FROM cosechas WHERE lote_id = $1`, loteID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total cosechas: %w", err)
	}
	return total, nil
}

// Delete borra una cosecha del ledger.
func (r *CosechaRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM cosechas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cosecha: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
