// Package usecase contiene los casos de uso de la aplicación: orquestan
// repositorios y reglas de negocio sin tocar HTTP ni SQL.
package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
	"github.com/tu-usuario/coaching-pro/pkg/logger"
)

// RequestMeta datos del request HTTP que acompañan una fila de auditoría.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// AuditRecorder escribe el rastro de auditoría en modo best-effort: un fallo
// al registrar nunca aborta la mutación que lo originó, solo se loguea.
type AuditRecorder struct {
	logs repository.ActivityLogRepository
	log  *logger.Logger
}

// NewAuditRecorder construye el recorder.
func NewAuditRecorder(logs repository.ActivityLogRepository, log *logger.Logger) *AuditRecorder {
	return &AuditRecorder{logs: logs, log: log}
}

// Record persiste una actividad. details se serializa a JSON; nil queda como "{}".
func (a *AuditRecorder) Record(userID, companyID, action, entityType string, entityID *string, details any, meta RequestMeta) {
	payload := "{}"
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			payload = string(b)
		}
	}
	row := &entity.ActivityLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		CompanyID:  companyID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    payload,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		CreatedAt:  time.Now(),
	}
	if err := a.logs.Create(row); err != nil {
		a.log.Warn().Err(err).Str("action", action).Str("entity_type", entityType).
			Msg("no se pudo registrar la actividad")
	}
}
