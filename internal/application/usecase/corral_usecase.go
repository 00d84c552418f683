package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// CorralUseCase CRUD de corrales.
type CorralUseCase struct {
	repo repository.CorralRepository
}

// NewCorralUseCase construye el caso de uso.
func NewCorralUseCase(repo repository.CorralRepository) *CorralUseCase {
	return &CorralUseCase{repo: repo}
}

// Crear valida y persiste un corral nuevo.
func (uc *CorralUseCase) Crear(ctx context.Context, nombre string, areaM2 decimal.Decimal) (*entity.Corral, error) {
	if nombre == "" || !areaM2.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	corral := &entity.Corral{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		AreaM2:    areaM2,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(corral); err != nil {
		return nil, err
	}
	return corral, nil
}

// ActualizarCorralInput campos editables (nil = sin cambio).
type ActualizarCorralInput struct {
	Nombre *string
	AreaM2 *decimal.Decimal
	Activo *bool
}

// Actualizar edita un corral existente.
func (uc *CorralUseCase) Actualizar(ctx context.Context, id string, input ActualizarCorralInput) (*entity.Corral, error) {
	corral, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if corral == nil {
		return nil, domain.ErrNotFound
	}
	if input.Nombre != nil {
		corral.Nombre = *input.Nombre
	}
	if input.AreaM2 != nil {
		if !input.AreaM2.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		corral.AreaM2 = *input.AreaM2
	}
	if input.Activo != nil {
		corral.Activo = *input.Activo
	}
	corral.UpdatedAt = time.Now()
	if err := uc.repo.Update(corral); err != nil {
		return nil, err
	}
	return corral, nil
}

// GetByID devuelve un corral por ID.
func (uc *CorralUseCase) GetByID(ctx context.Context, id string) (*entity.Corral, error) {
	corral, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if corral == nil {
		return nil, domain.ErrNotFound
	}
	return corral, nil
}

// List devuelve una página de corrales.
func (uc *CorralUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Corral, error) {
	return uc.repo.List(limit, offset)
}
