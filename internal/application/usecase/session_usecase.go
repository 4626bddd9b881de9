package usecase

import (
	"time"

	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// SessionUseCase casos de uso del curriculum: listado y edición por número.
// Las sesiones nunca se crean ni borran sueltas; nacen con la empresa.
type SessionUseCase struct {
	sessions repository.SessionRepository
}

// NewSessionUseCase construye el caso de uso.
func NewSessionUseCase(sessions repository.SessionRepository) *SessionUseCase {
	return &SessionUseCase{sessions: sessions}
}

// ListByCompany devuelve el curriculum completo ordenado por número.
func (uc *SessionUseCase) ListByCompany(companyID string) ([]dto.SessionResponse, error) {
	list, err := uc.sessions.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SessionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, SessionResponseFromEntity(s))
	}
	return items, nil
}

// GetByNumber obtiene una sesión por empresa y número.
func (uc *SessionUseCase) GetByNumber(companyID string, sessionNumber int) (*dto.SessionResponse, error) {
	session, err := uc.sessions.GetByNumber(companyID, sessionNumber)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	resp := SessionResponseFromEntity(session)
	return &resp, nil
}

// Update reemplaza el registro editable de la sesión. Cualquier estado del
// conjunto permitido puede asignarse en cualquier momento.
func (uc *SessionUseCase) Update(companyID string, sessionNumber int, in dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	session, err := uc.sessions.GetByNumber(companyID, sessionNumber)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	session.Theme = in.Theme
	session.ScheduledDate = in.ScheduledDate
	session.LessonContent = in.LessonContent
	session.DevelopmentContent = in.DevelopmentContent
	session.Status = in.Status
	session.Notes = in.Notes
	session.UpdatedAt = time.Now()
	if err := uc.sessions.Update(session); err != nil {
		return nil, err
	}
	resp := SessionResponseFromEntity(session)
	return &resp, nil
}

func SessionResponseFromEntity(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		ID:                 s.ID,
		CompanyID:          s.CompanyID,
		SessionNumber:      s.SessionNumber,
		Phase:              s.Phase,
		Theme:              s.Theme,
		ScheduledDate:      s.ScheduledDate,
		LessonContent:      s.LessonContent,
		DevelopmentContent: s.DevelopmentContent,
		Status:             s.Status,
		Notes:              s.Notes,
		UpdatedAt:          s.UpdatedAt,
	}
}
