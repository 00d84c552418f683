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

var _ repository.CorralRepository = (*CorralRepo)(nil)

// CorralRepo implementación del puerto CorralRepository sobre PostgreSQL (usable con pool o tx).
type CorralRepo struct {
	q Querier
}

// NewCorralRepository construye el adaptador de persistencia para corrales. Pasar pool o tx (Querier).
func NewCorralRepository(q Querier) *CorralRepo {
	return &CorralRepo{q: q}
}

// Create persiste un corral nuevo. nombre tiene constraint único.
func (r *CorralRepo) Create(corral *entity.Corral) error {
	query := `
		INSERT INTO corrales (id, nombre, area_m2, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		corral.ID, corral.Nombre, corral.AreaM2, corral.Activo, corral.CreatedAt, corral.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert corral: %w", err)
	}
	return nil
}

// GetByID obtiene un corral por ID.
func (r *CorralRepo) GetByID(id string) (*entity.Corral, error) {
	query := `SELECT id, nombre, area_m2, activo, created_at, updated_at FROM corrales WHERE id = $1`
	var c entity.Corral
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.AreaM2, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get corral: %w", err)
	}
	return &c, nil
}

// List lista corrales con paginación, ordenados por nombre.
func (r *CorralRepo) List(limit, offset int) ([]*entity.Corral, error) {
	query := `
		SELECT id, nombre, area_m2, activo, created_at, updated_at
		FROM corrales ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list corrales: %w", err)
	}
	defer rows.Close()

	var corrales []*entity.Corral
	for rows.Next() {
		var c entity.Corral
		if err := rows.Scan(&c.ID, &c.Nombre, &c.AreaM2, &c.Activo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan corral: %w", err)
		}
		corrales = append(corrales, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corrales: %w", err)
	}
	return corrales, nil
}

// Update actualiza un corral existente.
func (r *CorralRepo) Update(corral *entity.Corral) error {
	query := `
		UPDATE corrales SET nombre = $2, area_m2 = $3, activo = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		corral.ID, corral.Nombre, corral.AreaM2, corral.Activo, corral.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update corral: %w", err)
	}
	return nil
}
