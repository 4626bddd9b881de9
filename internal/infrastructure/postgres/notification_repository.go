package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador para notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, company_id, title, message, type, link, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.UserID, n.CompanyID, n.Title, n.Message, n.Type, n.Link, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListVisible devuelve notificaciones del usuario, de su empresa o de difusión.
func (r *NotificationRepo) ListVisible(userID, companyID string, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, company_id, title, message, type, link, is_read, created_at
		FROM notifications
		WHERE (user_id = $1)
			OR (user_id IS NULL AND company_id = $2)
			OR (user_id IS NULL AND company_id IS NULL)
		ORDER BY created_at DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, userID, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.CompanyID, &n.Title, &n.Message, &n.Type,
			&n.Link, &n.IsRead, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una notificación visible para el usuario como leída.
// No toca notificaciones dirigidas a otros usuarios.
func (r *NotificationRepo) MarkRead(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET is_read = true WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`,
		id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marca como leídas todas las no leídas visibles para el usuario.
func (r *NotificationRepo) MarkAllRead(userID string) error {
	query := `
		UPDATE notifications SET is_read = true
		WHERE is_read = false
			AND (user_id = $1
				OR (user_id IS NULL AND company_id = (SELECT company_id FROM users WHERE id = $1))
				OR (user_id IS NULL AND company_id IS NULL))`
	_, err := r.q.Exec(context.Background(), query, userID)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

// DeleteByCompany elimina las notificaciones de la empresa (purge en cascada).
func (r *NotificationRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete notifications by company: %w", err)
	}
	return nil
}
