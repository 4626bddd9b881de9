package entity

import "time"

// UserSession es una sesión de autenticación persistida.
// El ID es el token opaco entregado en la cookie; la única vía de revocación
// es borrar la fila. La expiración se verifica siempre por comparación de
// ExpiresAt, nunca por ausencia de la fila (el purgado es perezoso).
type UserSession struct {
	ID        string // token opaco (uuid aleatorio)
	UserID    string
	CompanyID string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired informa si la sesión ya venció en el instante dado.
func (s *UserSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
