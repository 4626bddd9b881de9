package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// Tope de notificaciones en el listado del usuario.
const notificationListLimit = 50

// NotificationUseCase casos de uso de notificaciones: creación dirigida o de
// difusión y lectura por usuario.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// Create registra una notificación. Sin destinatarios es de difusión global.
func (uc *NotificationUseCase) Create(in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	kind := in.Type
	if kind == "" {
		kind = "info"
	}
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		CompanyID: in.CompanyID,
		Title:     in.Title,
		Message:   in.Message,
		Type:      kind,
		Link:      in.Link,
		CreatedAt: time.Now(),
	}
	if err := uc.notifications.Create(n); err != nil {
		return nil, err
	}
	resp := toNotificationResponse(n)
	return &resp, nil
}

// ListVisible devuelve las notificaciones visibles para el usuario: propias,
// de su empresa y de difusión, las 50 más recientes.
func (uc *NotificationUseCase) ListVisible(userID, companyID string) ([]dto.NotificationResponse, error) {
	list, err := uc.notifications.ListVisible(userID, companyID, notificationListLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, toNotificationResponse(n))
	}
	return items, nil
}

// MarkRead marca una notificación visible como leída.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	return uc.notifications.MarkRead(id, userID)
}

// MarkAllRead marca todas las visibles no leídas como leídas.
func (uc *NotificationUseCase) MarkAllRead(userID string) error {
	return uc.notifications.MarkAllRead(userID)
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		CompanyID: n.CompanyID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
