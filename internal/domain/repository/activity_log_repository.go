package repository

import (
	"context"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// ActivityLogFilter filtros opcionales del listado paginado de auditoría.
// Los campos vacíos no filtran.
type ActivityLogFilter struct {
	CompanyID  string
	Action     string
	EntityType string
	Limit      int
	Offset     int
}

// ActivityLogRepository define el puerto para el rastro de auditoría append-only.
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	// List devuelve la página filtrada (recientes primero) y el total sin paginar.
	List(ctx context.Context, filter ActivityLogFilter) ([]*entity.ActivityLog, int, error)
	// Recent devuelve las últimas n actividades con username y empresa.
	Recent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
}
