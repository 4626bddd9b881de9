package entity

import "time"

// Roles válidos para User. Un admin tiene acceso cross-empresa; un user solo a la suya.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta de acceso (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
