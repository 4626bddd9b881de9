// Package analytics contiene los casos de uso de lectura agregada: el
// dashboard del tenant y el cálculo de ROI contra el contrato.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
	"github.com/tu-usuario/coaching-pro/pkg/config"
)

// ROI calcula el retorno porcentual: ahorro acumulado convertido a moneda base
// contra el monto de contrato. Contrato en cero usa el monto por defecto del
// programa; si aun así queda en cero, el ROI es 0 (nunca división por cero).
func ROI(totalCost, contractAmount decimal.Decimal, program config.ProgramConfig) decimal.Decimal {
	contract := contractAmount
	if contract.IsZero() {
		contract = decimal.NewFromInt(program.ContractFallback)
	}
	if contract.IsZero() {
		return decimal.Zero
	}
	return totalCost.
		Mul(decimal.NewFromInt(program.CostUnitMultiplier)).
		Div(contract).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

// DashboardUseCase arma el resumen del programa de una empresa: perfil, avance
// del curriculum, próxima sesión, sistemas y efecto total con ROI.
type DashboardUseCase struct {
	companies repository.CompanyRepository
	sessions  repository.SessionRepository
	systems   repository.SystemRepository
	program   config.ProgramConfig
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(companies repository.CompanyRepository, sessions repository.SessionRepository, systems repository.SystemRepository, program config.ProgramConfig) *DashboardUseCase {
	return &DashboardUseCase{companies: companies, sessions: sessions, systems: systems, program: program}
}

// GetSummary construye el DashboardResponse de la empresa indicada.
//
// Cuatro consultas en paralelo sobre una empresa ya validada:
//  1. Stats de sesiones (total / completadas)
//  2. Próxima sesión agendada futura
//  3. Sistemas por número
//  4. Efecto total (sumas de ahorros reales)
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardResponse, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.IsDeleted() {
		return nil, domain.ErrNotFound
	}

	now := time.Now()

	type statsResult struct {
		total, completed int
		err              error
	}
	type nextResult struct {
		session *entity.Session
		err     error
	}
	type systemsResult struct {
		systems []*entity.System
		err     error
	}
	type effectResult struct {
		timeRed, costRed decimal.Decimal
		err              error
	}

	statsCh := make(chan statsResult, 1)
	nextCh := make(chan nextResult, 1)
	systemsCh := make(chan systemsResult, 1)
	effectCh := make(chan effectResult, 1)

	go func() {
		total, completed, err := uc.sessions.Stats(companyID)
		statsCh <- statsResult{total, completed, err}
	}()
	go func() {
		s, err := uc.sessions.NextScheduled(companyID, now)
		nextCh <- nextResult{s, err}
	}()
	go func() {
		list, err := uc.systems.ListByCompany(companyID)
		systemsCh <- systemsResult{list, err}
	}()
	go func() {
		t, c, err := uc.systems.TotalEffect(companyID)
		effectCh <- effectResult{t, c, err}
	}()

	stats := <-statsCh
	next := <-nextCh
	systems := <-systemsCh
	effect := <-effectCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: stats de sesiones: %w", stats.err)
	}
	if next.err != nil {
		return nil, fmt.Errorf("dashboard: próxima sesión: %w", next.err)
	}
	if systems.err != nil {
		return nil, fmt.Errorf("dashboard: sistemas: %w", systems.err)
	}
	if effect.err != nil {
		return nil, fmt.Errorf("dashboard: efecto total: %w", effect.err)
	}

	resp := &dto.DashboardResponse{
		Company:      *usecase.CompanyResponseFromEntity(company),
		SessionStats: dto.SessionStatsResponse{Total: stats.total, Completed: stats.completed},
		Systems:      make([]dto.SystemResponse, 0, len(systems.systems)),
		TotalEffect: dto.TotalEffectResponse{
			TimeReduction: effect.timeRed,
			CostReduction: effect.costRed,
			ROI:           ROI(effect.costRed, company.ContractAmount, uc.program),
		},
	}
	if next.session != nil {
		s := usecase.SessionResponseFromEntity(next.session)
		resp.NextSession = &s
	}
	for _, s := range systems.systems {
		resp.Systems = append(resp.Systems, usecase.SystemResponseFromEntity(s))
	}
	return resp, nil
}
