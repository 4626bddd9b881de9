package repository

import (
	"time"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// SessionWithCompany es una sesión de curriculum con el nombre de su empresa (export).
type SessionWithCompany struct {
	entity.Session
	CompanyName string
}

// SessionRepository define el puerto de persistencia para sesiones de curriculum.
type SessionRepository interface {
	// CreateBatch inserta el lote de sesiones sembradas al crear una empresa.
	CreateBatch(sessions []*entity.Session) error
	ListByCompany(companyID string) ([]*entity.Session, error)
	GetByNumber(companyID string, sessionNumber int) (*entity.Session, error)
	// Update reemplaza el registro completo (fecha, tema, contenidos, estado, notas).
	Update(session *entity.Session) error
	// Stats devuelve total y completadas para el ratio de avance.
	Stats(companyID string) (total, completed int, err error)
	// NextScheduled devuelve la sesión agendada futura más próxima, o nil.
	NextScheduled(companyID string, after time.Time) (*entity.Session, error)
	ListAllWithCompany() ([]*SessionWithCompany, error)
	DeleteByCompany(companyID string) error
}
