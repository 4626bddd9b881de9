package repository

import (
	"time"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// CompanyWithCounts es una empresa con sus conteos de usuarios y sistemas
// (listado de administración).
type CompanyWithCounts struct {
	entity.Company
	UserCount   int
	SystemCount int
}

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	// ListActive devuelve empresas no borradas lógicamente, más recientes primero.
	ListActive() ([]*entity.Company, error)
	// ListWithCounts como ListActive pero con conteos de usuarios y sistemas.
	ListWithCounts() ([]*CompanyWithCounts, error)
	// SetActive cambia la bandera is_active.
	SetActive(id string, active bool) error
	// SoftDelete marca deleted_at y desactiva la empresa. La fila persiste.
	SoftDelete(id string, when time.Time) error
	// Delete elimina físicamente la fila (solo dentro del purge en cascada).
	Delete(id string) error
}
