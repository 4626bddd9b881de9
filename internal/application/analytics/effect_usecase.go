package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
	"github.com/tu-usuario/coaching-pro/pkg/config"
)

// EffectUseCase arma la vista de efecto de una empresa: sistemas con sus
// ahorros, agregados mensuales de mediciones y efecto total con ROI.
// Las sumas de System.actual_* mandan para el ROI; las mediciones son muestras.
type EffectUseCase struct {
	companies    repository.CompanyRepository
	systems      repository.SystemRepository
	measurements repository.MeasurementRepository
	program      config.ProgramConfig
}

// NewEffectUseCase construye el caso de uso.
func NewEffectUseCase(companies repository.CompanyRepository, systems repository.SystemRepository, measurements repository.MeasurementRepository, program config.ProgramConfig) *EffectUseCase {
	return &EffectUseCase{companies: companies, systems: systems, measurements: measurements, program: program}
}

// Overview construye el MeasurementOverviewResponse de la empresa.
func (uc *EffectUseCase) Overview(ctx context.Context, companyID string) (*dto.MeasurementOverviewResponse, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.IsDeleted() {
		return nil, domain.ErrNotFound
	}

	systems, err := uc.systems.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("efecto: sistemas: %w", err)
	}
	monthly, err := uc.measurements.MonthlyTotals(companyID)
	if err != nil {
		return nil, fmt.Errorf("efecto: agregados mensuales: %w", err)
	}
	timeRed, costRed, err := uc.systems.TotalEffect(companyID)
	if err != nil {
		return nil, fmt.Errorf("efecto: total: %w", err)
	}

	resp := &dto.MeasurementOverviewResponse{
		Systems: make([]dto.SystemResponse, 0, len(systems)),
		Monthly: make([]dto.MonthlyEffectResponse, 0, len(monthly)),
		TotalEffect: dto.TotalEffectResponse{
			TimeReduction: timeRed,
			CostReduction: costRed,
			ROI:           ROI(costRed, company.ContractAmount, uc.program),
		},
	}
	for _, s := range systems {
		resp.Systems = append(resp.Systems, usecase.SystemResponseFromEntity(s))
	}
	for _, m := range monthly {
		resp.Monthly = append(resp.Monthly, dto.MonthlyEffectResponse{
			Month:         m.Month,
			TimeReduction: m.Time,
			CostReduction: m.Cost,
		})
	}
	return resp, nil
}
