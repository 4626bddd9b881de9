package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// MeasurementUseCase registra mediciones puntuales de efecto. Las vistas
// agregadas viven en el paquete analytics.
type MeasurementUseCase struct {
	measurements repository.MeasurementRepository
	systems      repository.SystemRepository
}

// NewMeasurementUseCase construye el caso de uso.
func NewMeasurementUseCase(measurements repository.MeasurementRepository, systems repository.SystemRepository) *MeasurementUseCase {
	return &MeasurementUseCase{measurements: measurements, systems: systems}
}

// Create registra una medición. El sistema debe existir y pertenecer a la
// empresa indicada; una medición nunca cruza tenants.
func (uc *MeasurementUseCase) Create(companyID string, in dto.CreateMeasurementRequest) (*dto.MeasurementResponse, error) {
	systems, err := uc.systems.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	var owned bool
	for _, s := range systems {
		if s.ID == in.SystemID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, domain.ErrNotFound
	}

	m := &entity.Measurement{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		SystemID:          in.SystemID,
		MeasurementDate:   in.MeasurementDate,
		TimeReduction:     in.TimeReduction,
		CostReduction:     in.CostReduction,
		MeasurementMethod: in.MeasurementMethod,
		Notes:             in.Notes,
		CreatedAt:         time.Now(),
	}
	if err := uc.measurements.Create(m); err != nil {
		return nil, err
	}
	resp := MeasurementResponseFromEntity(m)
	return &resp, nil
}

// MeasurementResponseFromEntity convierte la entidad al DTO de salida.
func MeasurementResponseFromEntity(m *entity.Measurement) dto.MeasurementResponse {
	return dto.MeasurementResponse{
		ID:                m.ID,
		CompanyID:         m.CompanyID,
		SystemID:          m.SystemID,
		MeasurementDate:   m.MeasurementDate,
		TimeReduction:     m.TimeReduction,
		CostReduction:     m.CostReduction,
		MeasurementMethod: m.MeasurementMethod,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
	}
}
