package repository

import (
	"time"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// ActiveSession es una sesión vigente con datos del usuario y su empresa
// (listado de administración).
type ActiveSession struct {
	entity.UserSession
	Username    string
	Role        string
	CompanyName string
}

// UserSessionRepository define el puerto de persistencia para sesiones de autenticación.
type UserSessionRepository interface {
	Create(session *entity.UserSession) error
	// GetByID devuelve la sesión aunque esté expirada; el caller decide por ExpiresAt.
	GetByID(token string) (*entity.UserSession, error)
	// Delete es idempotente: borrar un token inexistente no es error.
	Delete(token string) error
	DeleteByUser(userID string) error
	DeleteByCompany(companyID string) error
	// DeleteExpired purga filas vencidas; barrido best-effort tras cada login.
	DeleteExpired(now time.Time) error
	ListActive(now time.Time) ([]*ActiveSession, error)
}
