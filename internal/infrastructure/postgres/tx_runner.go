package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Granja-api/internal/application/lifecycle"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ lifecycle.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback según el resultado.
func (r *TxRunner) Run(ctx context.Context, fn func(
	loteRepo repository.LoteRepository,
	asignacionRepo repository.AsignacionCorralRepository,
	cosechaRepo repository.CosechaRepository,
	mortalidadRepo repository.MortalidadRepository,
	consumoRepo repository.ConsumoAlimentoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	loteRepo := NewLoteRepository(tx)
	asignacionRepo := NewAsignacionCorralRepository(tx)
	cosechaRepo := NewCosechaRepository(tx)
	mortalidadRepo := NewMortalidadRepository(tx)
	consumoRepo := NewConsumoAlimentoRepository(tx)

	if err := fn(loteRepo, asignacionRepo, cosechaRepo, mortalidadRepo, consumoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
