package repository

import "github.com/tu-usuario/coaching-pro/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	// ListVisible devuelve las notificaciones dirigidas al usuario, a su empresa
	// o de difusión (user_id/company_id en NULL), recientes primero.
	ListVisible(userID, companyID string, limit int) ([]*entity.Notification, error)
	// MarkRead marca una notificación visible para el usuario como leída.
	MarkRead(id, userID string) error
	// MarkAllRead marca como leídas todas las no leídas visibles para el usuario.
	MarkAllRead(userID string) error
	DeleteByCompany(companyID string) error
}
