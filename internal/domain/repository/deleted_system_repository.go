package repository

import (
	"context"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// DeletedSystemRepository define el puerto para snapshots de sistemas borrados.
type DeletedSystemRepository interface {
	Create(snapshot *entity.DeletedSystem) error
	GetByID(id string) (*entity.DeletedSystem, error)
	// List devuelve snapshots recientes primero, opcionalmente filtrados por
	// empresa, con tope de filas.
	List(ctx context.Context, companyID string, limit int) ([]*entity.DeletedSystem, error)
	// Delete remueve el snapshot (tras restaurar).
	Delete(id string) error
}
