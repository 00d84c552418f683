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

var _ repository.ConsumoAlimentoRepository = (*ConsumoAlimentoRepo)(nil)

// ConsumoAlimentoRepo implementación del ledger de consumo sobre PostgreSQL (usable con pool o tx).
type ConsumoAlimentoRepo struct {
	q Querier
}

// NewConsumoAlimentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsumoAlimentoRepository(q Querier) *ConsumoAlimentoRepo {
	return &ConsumoAlimentoRepo{q: q}
}

const consumoColumns = `id, lote_id, alimento_id, fecha, cantidad_bultos, observaciones, created_at, updated_at`

// Create anexa un consumo al ledger.
func (r *ConsumoAlimentoRepo) Create(consumo *entity.ConsumoAlimento) error {
	query := `
		INSERT INTO consumos_alimento (` + consumoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		consumo.ID, consumo.LoteID, consumo.AlimentoID, consumo.Fecha,
		consumo.CantidadBultos, consumo.Observaciones, consumo.CreatedAt, consumo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consumo: %w", err)
	}
	return nil
}

// GetByID obtiene un consumo por ID.
func (r *ConsumoAlimentoRepo) GetByID(id string) (*entity.ConsumoAlimento, error) {
	query := `SELECT ` + consumoColumns + ` FROM consumos_alimento WHERE id = $1`
	var c entity.ConsumoAlimento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.LoteID, &c.AlimentoID, &c.Fecha, &c.CantidadBultos,
		&c.Observaciones, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consumo: %w", err)
	}
	return &c, nil
}

// ListByLote devuelve el ledger de consumo de un lote en orden cronológico.
func (r *ConsumoAlimentoRepo) ListByLote(loteID string) ([]entity.ConsumoAlimento, error) {
	query := `SELECT ` + consumoColumns + ` FROM consumos_alimento WHERE lote_id = $1 ORDER BY fecha, id`
	rows, err := r.q.Query(context.Background(), query, loteID)
	if err != nil {
		return nil, fmt.Errorf("list consumos: %w", err)
	}
	defer rows.Close()

	var consumos []entity.ConsumoAlimento
	for rows.Next() {
		var c entity.ConsumoAlimento
		if err := rows.Scan(
			&c.ID, &c.LoteID, &c.AlimentoID, &c.Fecha, &c.CantidadBultos,
			&c.Observaciones, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan consumo: %w", err)
		}
		consumos = append(consumos, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate consumos: %w", err)
	}
	return consumos, nil
}

// Delete borra un consumo del ledger.
func (r *ConsumoAlimentoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM consumos_alimento WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete consumo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
