package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// AlimentoUseCase CRUD de referencias de alimento.
type AlimentoUseCase struct {
	repo repository.AlimentoRepository
}

// NewAlimentoUseCase construye el caso de uso.
func NewAlimentoUseCase(repo repository.AlimentoRepository) *AlimentoUseCase {
	return &AlimentoUseCase{repo: repo}
}

// CrearAlimentoInput entrada para crear un alimento.
type CrearAlimentoInput struct {
	Nombre        string
	Tipo          string
	CostoPorBulto decimal.Decimal
	PesoBultoKg   decimal.Decimal
}

// Crear valida y persiste un alimento nuevo. La taxonomía de tipos es cerrada.
func (uc *AlimentoUseCase) Crear(ctx context.Context, input CrearAlimentoInput) (*entity.Alimento, error) {
	if input.Nombre == "" || !input.CostoPorBulto.IsPositive() || !input.PesoBultoKg.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoAlimentoValido(input.Tipo) {
		return nil, fmt.Errorf("tipo de alimento %q: %w", input.Tipo, domain.ErrInvalidInput)
	}
	now := time.Now()
	alimento := &entity.Alimento{
		ID:            uuid.New().String(),
		Nombre:        input.Nombre,
		Tipo:          input.Tipo,
		CostoPorBulto: input.CostoPorBulto,
		PesoBultoKg:   input.PesoBultoKg,
		Activo:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(alimento); err != nil {
		return nil, err
	}
	return alimento, nil
}

// ActualizarAlimentoInput campos editables (nil = sin cambio).
type ActualizarAlimentoInput struct {
	Nombre        *string
	Tipo          *string
	CostoPorBulto *decimal.Decimal
	PesoBultoKg   *decimal.Decimal
	Activo        *bool
}

// Actualizar edita un alimento. Desactivarlo lo excluye de consumos nuevos
// pero no de la agregación histórica.
func (uc *AlimentoUseCase) Actualizar(ctx context.Context, id string, input ActualizarAlimentoInput) (*entity.Alimento, error) {
	alimento, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alimento == nil {
		return nil, domain.ErrNotFound
	}
	if input.Nombre != nil {
		alimento.Nombre = *input.Nombre
	}
	if input.Tipo != nil {
		if !entity.TipoAlimentoValido(*input.Tipo) {
			return nil, fmt.Errorf("tipo de alimento %q: %w", *input.Tipo, domain.ErrInvalidInput)
		}
		alimento.Tipo = *input.Tipo
	}
	if input.CostoPorBulto != nil {
		if !input.CostoPorBulto.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		alimento.CostoPorBulto = *input.CostoPorBulto
	}
	if input.PesoBultoKg != nil {
		if !input.PesoBultoKg.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		alimento.PesoBultoKg = *input.PesoBultoKg
	}
	if input.Activo != nil {
		alimento.Activo = *input.Activo
	}
	alimento.UpdatedAt = time.Now()
	if err := uc.repo.Update(alimento); err != nil {
		return nil, err
	}
	return alimento, nil
}

// GetByID devuelve un alimento por ID.
func (uc *AlimentoUseCase) GetByID(ctx context.Context, id string) (*entity.Alimento, error) {
	alimento, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alimento == nil {
		return nil, domain.ErrNotFound
	}
	return alimento, nil
}

// List devuelve una página de alimentos.
func (uc *AlimentoUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Alimento, error) {
	return uc.repo.List(limit, offset)
}
