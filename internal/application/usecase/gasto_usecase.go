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

// GastoUseCase maneja los dos ledgers de gastos: directos (por lote) y
// mensuales compartidos (globales de la granja).
type GastoUseCase struct {
	directoRepo repository.GastoDirectoRepository
	mensualRepo repository.GastoMensualRepository
	loteRepo    repository.LoteRepository
}

// NewGastoUseCase construye el caso de uso.
func NewGastoUseCase(
	directoRepo repository.GastoDirectoRepository,
	mensualRepo repository.GastoMensualRepository,
	loteRepo repository.LoteRepository,
) *GastoUseCase {
	return &GastoUseCase{directoRepo: directoRepo, mensualRepo: mensualRepo, loteRepo: loteRepo}
}

// RegistrarGastoDirectoInput entrada para un gasto directo de un lote.
type RegistrarGastoDirectoInput struct {
	LoteID        string
	Fecha         time.Time
	Concepto      string
	Tipo          string
	Monto         decimal.Decimal
	Observaciones string
}

// RegistrarGastoDirecto valida y persiste un gasto directo. El lote debe
// existir y estar activo.
func (uc *GastoUseCase) RegistrarGastoDirecto(ctx context.Context, input RegistrarGastoDirectoInput) (*entity.GastoDirecto, error) {
	if input.Concepto == "" || !input.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoGastoDirectoValido(input.Tipo) {
		return nil, fmt.Errorf("tipo de gasto directo %q: %w", input.Tipo, domain.ErrInvalidInput)
	}
	lote, err := uc.loteRepo.GetByID(input.LoteID)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	if !lote.Activo() {
		return nil, domain.ErrInvalidState
	}
	now := time.Now()
	gasto := &entity.GastoDirecto{
		ID:            uuid.New().String(),
		LoteID:        input.LoteID,
		Fecha:         input.Fecha,
		Concepto:      input.Concepto,
		Tipo:          input.Tipo,
		Monto:         input.Monto,
		Observaciones: input.Observaciones,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.directoRepo.Create(gasto); err != nil {
		return nil, err
	}
	return gasto, nil
}

// ListGastosDirectos lista los gastos directos de un lote.
func (uc *GastoUseCase) ListGastosDirectos(ctx context.Context, loteID string) ([]entity.GastoDirecto, error) {
	return uc.directoRepo.ListByLote(loteID)
}

// EliminarGastoDirecto borra un gasto directo; solo mientras el lote del
// gasto siga activo.
func (uc *GastoUseCase) EliminarGastoDirecto(ctx context.Context, id string) error {
	gasto, err := uc.directoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if gasto == nil {
		return domain.ErrNotFound
	}
	lote, err := uc.loteRepo.GetByID(gasto.LoteID)
	if err != nil {
		return err
	}
	if lote != nil && !lote.Activo() {
		return domain.ErrInvalidState
	}
	return uc.directoRepo.Delete(id)
}

// RegistrarGastoMensualInput entrada para un gasto mensual compartido.
type RegistrarGastoMensualInput struct {
	Mes           int
	Anio          int
	Concepto      string
	Tipo          string
	Monto         decimal.Decimal
	Observaciones string
}

// RegistrarGastoMensual valida y persiste un gasto mensual compartido.
func (uc *GastoUseCase) RegistrarGastoMensual(ctx context.Context, input RegistrarGastoMensualInput) (*entity.GastoMensual, error) {
	if input.Mes < 1 || input.Mes > 12 || input.Anio < 2020 {
		return nil, domain.ErrInvalidInput
	}
	if input.Concepto == "" || !input.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoGastoMensualValido(input.Tipo) {
		return nil, fmt.Errorf("tipo de gasto mensual %q: %w", input.Tipo, domain.ErrInvalidInput)
	}
	now := time.Now()
	gasto := &entity.GastoMensual{
		ID:            uuid.New().String(),
		Mes:           input.Mes,
		Anio:          input.Anio,
		Concepto:      input.Concepto,
		Tipo:          input.Tipo,
		Monto:         input.Monto,
		Observaciones: input.Observaciones,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.mensualRepo.Create(gasto); err != nil {
		return nil, err
	}
	return gasto, nil
}

// ListGastosMensuales lista los gastos compartidos de un mes.
func (uc *GastoUseCase) ListGastosMensuales(ctx context.Context, anio, mes int) ([]entity.GastoMensual, error) {
	if mes < 1 || mes > 12 {
		return nil, domain.ErrInvalidInput
	}
	return uc.mensualRepo.ListByMes(anio, mes)
}

// EliminarGastoMensual borra un gasto mensual compartido.
func (uc *GastoUseCase) EliminarGastoMensual(ctx context.Context, id string) error {
	gasto, err := uc.mensualRepo.GetByID(id)
	if err != nil {
		return err
	}
	if gasto == nil {
		return domain.ErrNotFound
	}
	return uc.mensualRepo.Delete(id)
}
