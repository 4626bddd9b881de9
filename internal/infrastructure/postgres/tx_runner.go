package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// Asegura que TxRunner implementa el puerto repository.TxRunner.
var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx repository.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	bound := repository.Tx{
		Companies:      NewCompanyRepository(tx),
		Users:          NewUserRepository(tx),
		Sessions:       NewSessionRepository(tx),
		Systems:        NewSystemRepository(tx),
		Measurements:   NewMeasurementRepository(tx),
		UserSessions:   NewUserSessionRepository(tx),
		Notifications:  NewNotificationRepository(tx),
		DeletedSystems: NewDeletedSystemRepository(tx),
	}

	if err := fn(bound); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
