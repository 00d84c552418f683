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

var _ repository.AlimentoRepository = (*AlimentoRepo)(nil)

// AlimentoRepo implementación del puerto AlimentoRepository sobre PostgreSQL (usable con pool o tx).
type AlimentoRepo struct {
	q Querier
}

// NewAlimentoRepository construye el adaptador de persistencia para alimentos. Pasar pool o tx (Querier).
func NewAlimentoRepository(q Querier) *AlimentoRepo {
	return &AlimentoRepo{q: q}
}

const alimentoColumns = `id, nombre, tipo, costo_por_bulto, peso_bulto_kg, activo, created_at, updated_at`

// Create persiste un alimento nuevo. nombre tiene constraint único.
func (r *AlimentoRepo) Create(alimento *entity.Alimento) error {
	query := `
		INSERT INTO alimentos (` + alimentoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		alimento.ID, alimento.Nombre, alimento.Tipo, alimento.CostoPorBulto,
		alimento.PesoBultoKg, alimento.Activo, alimento.CreatedAt, alimento.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert alimento: %w", err)
	}
	return nil
}

// GetByID obtiene un alimento por ID.
func (r *AlimentoRepo) GetByID(id string) (*entity.Alimento, error) {
	query := `SELECT ` + alimentoColumns + ` FROM alimentos WHERE id = $1`
	var a entity.Alimento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Nombre, &a.Tipo, &a.CostoPorBulto, &a.PesoBultoKg, &a.Activo, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alimento: %w", err)
	}
	return &a, nil
}

// List lista alimentos con paginación, ordenados por nombre.
func (r *AlimentoRepo) List(limit, offset int) ([]*entity.Alimento, error) {
	query := `SELECT ` + alimentoColumns + ` FROM alimentos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alimentos: %w", err)
	}
	defer rows.Close()
	return scanAlimentos(rows)
}

// MapAll devuelve todos los alimentos indexados por ID, incluidos los
// inactivos: la agregación histórica los necesita.
func (r *AlimentoRepo) MapAll() (map[string]*entity.Alimento, error) {
	query := `SELECT ` + alimentoColumns + ` FROM alimentos`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("map alimentos: %w", err)
	}
	defer rows.Close()

	alimentos, err := scanAlimentos(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*entity.Alimento, len(alimentos))
	for _, a := range alimentos {
		out[a.ID] = a
	}
	return out, nil
}

// Update actualiza un alimento existente.
func (r *AlimentoRepo) Update(alimento *entity.Alimento) error {
	query := `
		UPDATE alimentos SET nombre = $2, tipo = $3, costo_por_bulto = $4, peso_bulto_kg = $5, activo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		alimento.ID, alimento.Nombre, alimento.Tipo, alimento.CostoPorBulto,
		alimento.PesoBultoKg, alimento.Activo, alimento.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update alimento: %w", err)
	}
	return nil
}

func scanAlimentos(rows pgx.Rows) ([]*entity.Alimento, error) {
	var alimentos []*entity.Alimento
	for rows.Next() {
		var a entity.Alimento
		if err := rows.Scan(
			&a.ID, &a.Nombre, &a.Tipo, &a.CostoPorBulto, &a.PesoBultoKg, &a.Activo, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan alimento: %w", err)
		}
		alimentos = append(alimentos, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alimentos: %w", err)
	}
	return alimentos, nil
}
