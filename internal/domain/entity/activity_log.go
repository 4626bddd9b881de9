package entity

import "time"

// ActivityLog es una fila de auditoría append-only. Nunca se actualiza ni se
// borra en operación normal: el borrado de empresas preserva sus logs.
type ActivityLog struct {
	ID         string
	UserID     string
	CompanyID  string
	Action     string
	EntityType string
	EntityID   *string
	Details    string // JSON serializado
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time

	// Campos denormalizados en consultas (JOIN con users/companies).
	Username    string
	CompanyName string
}
