package lifecycle

import (
	"context"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la barrera de serialización del ciclo de
// vida: cerrar un lote o anexar una cosecha es atómico frente a lecturas de
// reportes concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		loteRepo repository.LoteRepository,
		asignacionRepo repository.AsignacionCorralRepository,
		cosechaRepo repository.CosechaRepository,
		mortalidadRepo repository.MortalidadRepository,
		consumoRepo repository.ConsumoAlimentoRepository,
	) error) error
}
