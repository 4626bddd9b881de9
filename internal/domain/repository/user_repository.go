package repository

import (
	"time"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// UserWithCompany es un usuario con el nombre de su empresa (export/listados admin).
type UserWithCompany struct {
	entity.User
	CompanyName string
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername busca por username exacto (ya normalizado NFKC por el caller).
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateLastLogin(id string, when time.Time) error
	// SetActiveByCompany propaga la bandera is_active a todos los usuarios de la empresa.
	SetActiveByCompany(companyID string, active bool) error
	ListAllWithCompany() ([]*UserWithCompany, error)
	DeleteByCompany(companyID string) error
}
