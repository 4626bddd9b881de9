package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// SystemWithCompany es un sistema con el nombre de su empresa (export).
type SystemWithCompany struct {
	entity.System
	CompanyName string
}

// SystemRepository define el puerto de persistencia para sistemas (proyectos).
type SystemRepository interface {
	// Create inserta el sistema. Devuelve domain.ErrDuplicate si el par
	// (company_id, system_number) ya existe; el caso de uso reintenta con
	// el siguiente número.
	Create(system *entity.System) error
	GetByNumber(companyID string, systemNumber int) (*entity.System, error)
	ListByCompany(companyID string) ([]*entity.System, error)
	// MaxNumber devuelve el mayor system_number de la empresa, 0 si no hay.
	MaxNumber(companyID string) (int, error)
	Update(system *entity.System) error
	Delete(id string) error
	// TotalEffect suma los ahorros reales de los sistemas con medición registrada.
	TotalEffect(companyID string) (timeReduction, costReduction decimal.Decimal, err error)
	ListAllWithCompany() ([]*SystemWithCompany, error)
	DeleteByCompany(companyID string) error
}
