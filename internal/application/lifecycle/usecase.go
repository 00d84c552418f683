package lifecycle

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

// LoteUseCase maneja el ciclo de vida de los lotes: creación con corrales,
// edición mientras están activos, registro de eventos del ledger y el cierre
// (explícito o automático con la última cosecha). La máquina de estados es
// activo → cerrado, terminal y de una sola vía.
type LoteUseCase struct {
	txRunner     TxRunner
	loteRepo     repository.LoteRepository
	corralRepo   repository.CorralRepository
	alimentoRepo repository.AlimentoRepository
}

// NewLoteUseCase construye el caso de uso.
func NewLoteUseCase(
	txRunner TxRunner,
	loteRepo repository.LoteRepository,
	corralRepo repository.CorralRepository,
	alimentoRepo repository.AlimentoRepository,
) *LoteUseCase {
	return &LoteUseCase{
		txRunner:     txRunner,
		loteRepo:     loteRepo,
		corralRepo:   corralRepo,
		alimentoRepo: alimentoRepo,
	}
}

// CrearLoteInput entrada para crear un lote con sus corrales iniciales.
type CrearLoteInput struct {
	NumeroLote          string
	FechaInicio         time.Time
	AnimalesIniciales   int
	PesoPromedioInicial decimal.Decimal
	CantidadMachos      int
	CantidadHembras     int
	CostoLechones       decimal.Decimal
	Observaciones       string
	CorralesIDs         []string
}

// CrearLote valida y persiste un lote nuevo junto con la asignación de al
// menos un corral, todo en una transacción.
func (uc *LoteUseCase) CrearLote(ctx context.Context, input CrearLoteInput) (*entity.Lote, error) {
	if input.NumeroLote == "" || input.AnimalesIniciales <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.CantidadMachos < 0 || input.CantidadHembras < 0 ||
		input.CantidadMachos+input.CantidadHembras != input.AnimalesIniciales {
		return nil, fmt.Errorf("machos + hembras debe igualar animales iniciales: %w", domain.ErrInvalidInput)
	}
	if !input.CostoLechones.IsPositive() || !input.PesoPromedioInicial.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if len(input.CorralesIDs) == 0 {
		return nil, fmt.Errorf("el lote requiere al menos un corral: %w", domain.ErrInvalidInput)
	}

	// Validar que los corrales existan y estén activos antes de abrir la tx
	for _, corralID := range input.CorralesIDs {
		corral, err := uc.corralRepo.GetByID(corralID)
		if err != nil {
			return nil, err
		}
		if corral == nil {
			return nil, fmt.Errorf("corral %s: %w", corralID, domain.ErrDataIntegrity)
		}
		if !corral.Activo {
			return nil, fmt.Errorf("corral %s inactivo: %w", corralID, domain.ErrInvalidInput)
		}
	}

	now := time.Now()
	lote := &entity.Lote{
		ID:                  uuid.New().String(),
		NumeroLote:          input.NumeroLote,
		FechaInicio:         input.FechaInicio,
		AnimalesIniciales:   input.AnimalesIniciales,
		PesoPromedioInicial: input.PesoPromedioInicial,
		CantidadMachos:      input.CantidadMachos,
		CantidadHembras:     input.CantidadHembras,
		CostoLechones:       input.CostoLechones,
		Estado:              entity.LoteEstadoActivo,
		Observaciones:       input.Observaciones,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err := uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		asignacionRepo repository.AsignacionCorralRepository,
		_ repository.CosechaRepository,
		_ repository.MortalidadRepository,
		_ repository.ConsumoAlimentoRepository,
	) error {
		if err := loteRepo.Create(lote); err != nil {
			return err
		}
		for _, corralID := range input.CorralesIDs {
			asig := &entity.AsignacionCorral{
				ID:              uuid.New().String(),
				LoteID:          lote.ID,
				CorralID:        corralID,
				FechaAsignacion: input.FechaInicio,
				CreatedAt:       now,
			}
			if err := asignacionRepo.Asignar(asig); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lote, nil
}

// ActualizarLoteInput campos editables de un lote activo (nil = sin cambio).
type ActualizarLoteInput struct {
	NumeroLote    *string
	Observaciones *string
}

// ActualizarLote edita campos de un lote; un lote cerrado es de solo lectura.
func (uc *LoteUseCase) ActualizarLote(ctx context.Context, loteID string, input ActualizarLoteInput) (*entity.Lote, error) {
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	if !lote.Activo() {
		return nil, domain.ErrInvalidState
	}
	if input.NumeroLote != nil {
		lote.NumeroLote = *input.NumeroLote
	}
	if input.Observaciones != nil {
		lote.Observaciones = *input.Observaciones
	}
	lote.UpdatedAt = time.Now()
	if err := uc.loteRepo.Update(lote); err != nil {
		return nil, err
	}
	return lote, nil
}

// CerrarLote ejecuta el cierre explícito de un lote activo: fija la fecha de
// cierre, libera sus corrales y lo vuelve de solo lectura. Re-cerrar un lote
// cerrado es un error de estado.
func (uc *LoteUseCase) CerrarLote(ctx context.Context, loteID string, fechaCierre time.Time) (*entity.Lote, error) {
	var cerrado *entity.Lote
	err := uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		asignacionRepo repository.AsignacionCorralRepository,
		_ repository.CosechaRepository,
		_ repository.MortalidadRepository,
		_ repository.ConsumoAlimentoRepository,
	) error {
		lote, err := loteRepo.GetForUpdate(loteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNotFound
		}
		if !lote.Activo() {
			return domain.ErrInvalidState
		}
		if fechaCierre.Before(lote.FechaInicio) {
			return fmt.Errorf("fecha de cierre anterior al inicio del lote: %w", domain.ErrInvalidInput)
		}
		if err := loteRepo.Cerrar(loteID, fechaCierre); err != nil {
			return err
		}
		if err := asignacionRepo.Liberar(loteID, fechaCierre); err != nil {
			return err
		}
		lote.Estado = entity.LoteEstadoCerrado
		lote.FechaCierre = &fechaCierre
		cerrado = lote
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cerrado, nil
}

// RegistrarCosechaInput entrada para registrar una cosecha.
type RegistrarCosechaInput struct {
	LoteID           string
	Fecha            time.Time
	Tipo             string
	CantidadAnimales int
	PesoTotalKg      decimal.Decimal
	EsUltimaCosecha  bool
	Observaciones    string
}

// RegistrarCosecha anexa una cosecha al ledger del lote. Valida contra el
// cupo de animales vivos (iniciales − mortalidad − vendidos) y, si la cosecha
// es la última, cierra el lote con la fecha de la cosecha y libera sus
// corrales, todo dentro de la misma transacción.
func (uc *LoteUseCase) RegistrarCosecha(ctx context.Context, input RegistrarCosechaInput) (*entity.Cosecha, error) {
	if input.CantidadAnimales <= 0 || !input.PesoTotalKg.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoCosechaValido(input.Tipo) {
		return nil, fmt.Errorf("tipo de cosecha %q: %w", input.Tipo, domain.ErrInvalidInput)
	}

	now := time.Now()
	cosecha := &entity.Cosecha{
		ID:               uuid.New().String(),
		LoteID:           input.LoteID,
		Fecha:            input.Fecha,
		Tipo:             input.Tipo,
		CantidadAnimales: input.CantidadAnimales,
		PesoTotalKg:      input.PesoTotalKg,
		EsUltimaCosecha:  input.EsUltimaCosecha,
		Observaciones:    input.Observaciones,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		asignacionRepo repository.AsignacionCorralRepository,
		cosechaRepo repository.CosechaRepository,
		mortalidadRepo repository.MortalidadRepository,
		_ repository.ConsumoAlimentoRepository,
	) error {
		// Bloquea la fila del lote: serializa contra otros cierres/cosechas
		lote, err := loteRepo.GetForUpdate(input.LoteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNotFound
		}
		if !lote.Activo() {
			return domain.ErrInvalidState
		}
		// Una última cosecha fechada antes del inicio produciría un cierre
		// imposible; el resto de cosechas tampoco tiene sentido antes del lote
		if input.Fecha.Before(lote.FechaInicio) {
			return fmt.Errorf("fecha de cosecha anterior al inicio del lote: %w", domain.ErrInvalidInput)
		}

		vendidos, err := cosechaRepo.TotalAnimalesByLote(input.LoteID)
		if err != nil {
			return err
		}
		bajas, err := mortalidadRepo.TotalByLote(input.LoteID)
		if err != nil {
			return err
		}
		if vendidos+bajas+input.CantidadAnimales > lote.AnimalesIniciales {
			return fmt.Errorf("cosecha de %d animales excede los %d vivos: %w",
				input.CantidadAnimales, lote.AnimalesIniciales-vendidos-bajas, domain.ErrInvalidInput)
		}

		if err := cosechaRepo.Create(cosecha); err != nil {
			return err
		}
		// La última cosecha cierra el lote con SU fecha y libera los corrales
		if input.EsUltimaCosecha {
			if err := loteRepo.Cerrar(input.LoteID, input.Fecha); err != nil {
				return err
			}
			if err := asignacionRepo.Liberar(input.LoteID, input.Fecha); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cosecha, nil
}

// RegistrarMortalidadInput entrada para registrar bajas.
type RegistrarMortalidadInput struct {
	LoteID         string
	Fecha          time.Time
	Cantidad       int
	PesoPromedioKg *decimal.Decimal
	Causa          string
	Observaciones  string
}

// RegistrarMortalidad anexa bajas al ledger del lote, validando el cupo de
// animales vivos dentro de la misma transacción que las cosechas.
func (uc *LoteUseCase) RegistrarMortalidad(ctx context.Context, input RegistrarMortalidadInput) (*entity.Mortalidad, error) {
	if input.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.PesoPromedioKg != nil && !input.PesoPromedioKg.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mortalidad := &entity.Mortalidad{
		ID:             uuid.New().String(),
		LoteID:         input.LoteID,
		Fecha:          input.Fecha,
		Cantidad:       input.Cantidad,
		PesoPromedioKg: input.PesoPromedioKg,
		Causa:          input.Causa,
		Observaciones:  input.Observaciones,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		_ repository.AsignacionCorralRepository,
		cosechaRepo repository.CosechaRepository,
		mortalidadRepo repository.MortalidadRepository,
		_ repository.ConsumoAlimentoRepository,
	) error {
		lote, err := loteRepo.GetForUpdate(input.LoteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNotFound
		}
		if !lote.Activo() {
			return domain.ErrInvalidState
		}

		vendidos, err := cosechaRepo.TotalAnimalesByLote(input.LoteID)
		if err != nil {
			return err
		}
		bajas, err := mortalidadRepo.TotalByLote(input.LoteID)
		if err != nil {
			return err
		}
		if vendidos+bajas+input.Cantidad > lote.AnimalesIniciales {
			return fmt.Errorf("mortalidad de %d animales excede los %d vivos: %w",
				input.Cantidad, lote.AnimalesIniciales-vendidos-bajas, domain.ErrInvalidInput)
		}
		return mortalidadRepo.Create(mortalidad)
	})
	if err != nil {
		return nil, err
	}
	return mortalidad, nil
}

// RegistrarConsumoInput entrada para registrar consumo de alimento.
type RegistrarConsumoInput struct {
	LoteID         string
	AlimentoID     string
	Fecha          time.Time
	CantidadBultos decimal.Decimal
	Observaciones  string
}

// RegistrarConsumo anexa un consumo de alimento. El alimento debe existir y
// estar activo; el lote debe estar activo.
func (uc *LoteUseCase) RegistrarConsumo(ctx context.Context, input RegistrarConsumoInput) (*entity.ConsumoAlimento, error) {
	if !input.CantidadBultos.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	alimento, err := uc.alimentoRepo.GetByID(input.AlimentoID)
	if err != nil {
		return nil, err
	}
	if alimento == nil {
		return nil, fmt.Errorf("alimento %s: %w", input.AlimentoID, domain.ErrDataIntegrity)
	}
	if !alimento.Activo {
		return nil, fmt.Errorf("alimento %s inactivo: %w", input.AlimentoID, domain.ErrInvalidInput)
	}

	now := time.Now()
	consumo := &entity.ConsumoAlimento{
		ID:             uuid.New().String(),
		LoteID:         input.LoteID,
		AlimentoID:     input.AlimentoID,
		Fecha:          input.Fecha,
		CantidadBultos: input.CantidadBultos,
		Observaciones:  input.Observaciones,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		_ repository.AsignacionCorralRepository,
		_ repository.CosechaRepository,
		_ repository.MortalidadRepository,
		consumoRepo repository.ConsumoAlimentoRepository,
	) error {
		lote, err := loteRepo.GetForUpdate(input.LoteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNotFound
		}
		if !lote.Activo() {
			return domain.ErrInvalidState
		}
		return consumoRepo.Create(consumo)
	})
	if err != nil {
		return nil, err
	}
	return consumo, nil
}

// EliminarConsumo borra un registro de consumo del ledger. Solo se permite
// mientras el lote sigue activo; el historial de un lote cerrado es inmutable.
func (uc *LoteUseCase) EliminarConsumo(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		_ repository.AsignacionCorralRepository,
		_ repository.CosechaRepository,
		_ repository.MortalidadRepository,
		consumoRepo repository.ConsumoAlimentoRepository,
	) error {
		consumo, err := consumoRepo.GetByID(id)
		if err != nil {
			return err
		}
		if consumo == nil {
			return domain.ErrNotFound
		}
		if err := validarLoteActivo(loteRepo, consumo.LoteID); err != nil {
			return err
		}
		return consumoRepo.Delete(id)
	})
}

// EliminarMortalidad borra un registro de mortalidad de un lote activo.
func (uc *LoteUseCase) EliminarMortalidad(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		_ repository.AsignacionCorralRepository,
		_ repository.CosechaRepository,
		mortalidadRepo repository.MortalidadRepository,
		_ repository.ConsumoAlimentoRepository,
	) error {
		mortalidad, err := mortalidadRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mortalidad == nil {
			return domain.ErrNotFound
		}
		if err := validarLoteActivo(loteRepo, mortalidad.LoteID); err != nil {
			return err
		}
		return mortalidadRepo.Delete(id)
	})
}

// EliminarCosecha borra una cosecha de un lote activo. La última cosecha ya
// cerró su lote, así que queda protegida por la inmutabilidad del cierre.
func (uc *LoteUseCase) EliminarCosecha(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		_ repository.AsignacionCorralRepository,
		cosechaRepo repository.CosechaRepository,
		_ repository.MortalidadRepository,
		_ repository.ConsumoAlimentoRepository,
	) error {
		cosecha, err := cosechaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if cosecha == nil {
			return domain.ErrNotFound
		}
		if err := validarLoteActivo(loteRepo, cosecha.LoteID); err != nil {
			return err
		}
		return cosechaRepo.Delete(id)
	})
}

// validarLoteActivo bloquea la fila del lote y verifica que siga activo.
func validarLoteActivo(loteRepo repository.LoteRepository, loteID string) error {
	lote, err := loteRepo.GetForUpdate(loteID)
	if err != nil {
		return err
	}
	if lote == nil {
		return domain.ErrNotFound
	}
	if !lote.Activo() {
		return domain.ErrInvalidState
	}
	return nil
}

// GetLote devuelve un lote por ID.
func (uc *LoteUseCase) GetLote(ctx context.Context, loteID string) (*entity.Lote, error) {
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	return lote, nil
}

// ListLotes devuelve una página de lotes.
func (uc *LoteUseCase) ListLotes(ctx context.Context, limit, offset int) ([]*entity.Lote, error) {
	return uc.loteRepo.List(limit, offset)
}
