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

var _ repository.GastoDirectoRepository = (*GastoDirectoRepo)(nil)
var _ repository.GastoMensualRepository = (*GastoMensualRepo)(nil)

// GastoDirectoRepo implementación del ledger de gastos directos sobre PostgreSQL (usable con pool o tx).
type GastoDirectoRepo struct {
	q Querier
}

// NewGastoDirectoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGastoDirectoRepository(q Querier) *GastoDirectoRepo {
	return &GastoDirectoRepo{q: q}
}

const gastoDirectoColumns = `id, lote_id, fecha, concepto, tipo, monto, observaciones, created_at, updated_at`

// Create anexa un gasto directo al ledger del lote.
func (r *GastoDirectoRepo) Create(gasto *entity.GastoDirecto) error {
	query := `
		INSERT INTO gastos_directos (` + gastoDirectoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		gasto.ID, gasto.LoteID, gasto.Fecha, gasto.Concepto, gasto.Tipo,
		gasto.Monto, gasto.Observaciones, gasto.CreatedAt, gasto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto directo: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto directo por ID.
func (r *GastoDirectoRepo) GetByID(id string) (*entity.GastoDirecto, error) {
	query := `SELECT ` + gastoDirectoColumns + ` FROM gastos_directos WHERE id = $1`
	var g entity.GastoDirecto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.LoteID, &g.Fecha, &g.Concepto, &g.Tipo,
		&g.Monto, &g.Observaciones, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto directo: %w", err)
	}
	return &g, nil
}

// ListByLote devuelve los gastos directos de un lote en orden cronológico.
func (r *GastoDirectoRepo) ListByLote(loteID string) ([]entity.GastoDirecto, error) {
	query := `SELECT ` + gastoDirectoColumns + ` FROM gastos_directos WHERE lote_id = $1 ORDER BY fecha, id`
	rows, err := r.q.Query(context.Background(), query, loteID)
	if err != nil {
		return nil, fmt.Errorf("list gastos directos: %w", err)
	}
	defer rows.Close()

	var gastos []entity.GastoDirecto
	for rows.Next() {
		var g entity.GastoDirecto
		if err := rows.Scan(
			&g.ID, &g.LoteID, &g.Fecha, &g.Concepto, &g.Tipo,
			&g.Monto, &g.Observaciones, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan gasto directo: %w", err)
		}
		gastos = append(gastos, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gastos directos: %w", err)
	}
	return gastos, nil
}

// Delete borra un gasto directo.
func (r *GastoDirectoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM gastos_directos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto directo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GastoMensualRepo implementación del ledger de gastos mensuales compartidos
// sobre PostgreSQL (usable con pool o tx).
type GastoMensualRepo struct {
	q Querier
}

// NewGastoMensualRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGastoMensualRepository(q Querier) *GastoMensualRepo {
	return &GastoMensualRepo{q: q}
}

const gastoMensualColumns = `id, mes, anio, concepto, tipo, monto, observaciones, created_at, updated_at`

// Create anexa un gasto mensual compartido al ledger global.
func (r *GastoMensualRepo) Create(gasto *entity.GastoMensual) error {
	query := `
		INSERT INTO gastos_mensuales (` + gastoMensualColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		gasto.ID, gasto.Mes, gasto.Anio, gasto.Concepto, gasto.Tipo,
		gasto.Monto, gasto.Observaciones, gasto.CreatedAt, gasto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto mensual: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto mensual por ID.
func (r *GastoMensualRepo) GetByID(id string) (*entity.GastoMensual, error) {
	query := `SELECT ` + gastoMensualColumns + ` FROM gastos_mensuales WHERE id = $1`
	var g entity.GastoMensual
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Mes, &g.Anio, &g.Concepto, &g.Tipo,
		&g.Monto, &g.Observaciones, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto mensual: %w", err)
	}
	return &g, nil
}

// ListByMes devuelve los gastos compartidos de un mes calendario.
func (r *GastoMensualRepo) ListByMes(anio, mes int) ([]entity.GastoMensual, error) {
	query := `SELECT ` + gastoMensualColumns + ` FROM gastos_mensuales WHERE anio = $1 AND mes = $2 ORDER BY concepto, id`
	rows, err := r.q.Query(context.Background(), query, anio, mes)
	if err != nil {
		return nil, fmt.Errorf("list gastos mensuales: %w", err)
	}
	defer rows.Close()
	return scanGastosMensuales(rows)
}

// ListAll devuelve el ledger completo; el agregador de costos filtra por los
// meses de vida del lote.
func (r *GastoMensualRepo) ListAll() ([]entity.GastoMensual, error) {
	query := `SELECT ` + gastoMensualColumns + ` FROM gastos_mensuales ORDER BY anio, mes, concepto, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all gastos mensuales: %w", err)
	}
	defer rows.Close()
	return scanGastosMensuales(rows)
}

// Delete borra un gasto mensual compartido.
func (r *GastoMensualRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM gastos_mensuales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto mensual: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanGastosMensuales(rows pgx.Rows) ([]entity.GastoMensual, error) {
	var gastos []entity.GastoMensual
	for rows.Next() {
		var g entity.GastoMensual
		if err := rows.Scan(
			&g.ID, &g.Mes, &g.Anio, &g.Concepto, &g.Tipo,
			&g.Monto, &g.Observaciones, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan gasto mensual: %w", err)
		}
		gastos = append(gastos, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gastos mensuales: %w", err)
	}
	return gastos, nil
}
