package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación del puerto LoteRepository sobre PostgreSQL (usable con pool o tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const loteColumns = `id, numero_lote, fecha_inicio, fecha_cierre, animales_iniciales,
	peso_promedio_inicial, cantidad_machos, cantidad_hembras, costo_lechones,
	estado, observaciones, created_at, updated_at`

// Create persiste un lote nuevo. numero_lote tiene constraint único.
func (r *LoteRepo) Create(lote *entity.Lote) error {
	query := `
		INSERT INTO lotes (` + loteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		lote.ID, lote.NumeroLote, lote.FechaInicio, lote.FechaCierre, lote.AnimalesIniciales,
		lote.PesoPromedioInicial, lote.CantidadMachos, lote.CantidadHembras, lote.CostoLechones,
		lote.Estado, lote.Observaciones, lote.CreatedAt, lote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get lote")
}

// GetForUpdate obtiene un lote bloqueando su fila; solo dentro de una tx.
func (r *LoteRepo) GetForUpdate(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get lote for update")
}

// List lista lotes con paginación, los más recientes primero.
func (r *LoteRepo) List(limit, offset int) ([]*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes ORDER BY fecha_inicio DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListAll devuelve todos los lotes; lo usa el pool de prorrateo.
func (r *LoteRepo) ListAll() ([]*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes ORDER BY fecha_inicio, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all lotes: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Update actualiza los campos editables de un lote.
func (r *LoteRepo) Update(lote *entity.Lote) error {
	query := `
		UPDATE lotes SET numero_lote = $2, observaciones = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lote.ID, lote.NumeroLote, lote.Observaciones, lote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update lote: %w", err)
	}
	return nil
}

// Cerrar marca el lote como cerrado con la fecha dada.
func (r *LoteRepo) Cerrar(id string, fechaCierre time.Time) error {
	query := `
		UPDATE lotes SET estado = $2, fecha_cierre = $3, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, entity.LoteEstadoCerrado, fechaCierre)
	if err != nil {
		return fmt.Errorf("cerrar lote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LoteRepo) scanOne(row pgx.Row, op string) (*entity.Lote, error) {
	var l entity.Lote
	err := row.Scan(
		&l.ID, &l.NumeroLote, &l.FechaInicio, &l.FechaCierre, &l.AnimalesIniciales,
		&l.PesoPromedioInicial, &l.CantidadMachos, &l.CantidadHembras, &l.CostoLechones,
		&l.Estado, &l.Observaciones, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &l, nil
}

func (r *LoteRepo) scanAll(rows pgx.Rows) ([]*entity.Lote, error) {
	var lotes []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(
			&l.ID, &l.NumeroLote, &l.FechaInicio, &l.FechaCierre, &l.AnimalesIniciales,
			&l.PesoPromedioInicial, &l.CantidadMachos, &l.CantidadHembras, &l.CostoLechones,
			&l.Estado, &l.Observaciones, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		lotes = append(lotes, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lotes: %w", err)
	}
	return lotes, nil
}
