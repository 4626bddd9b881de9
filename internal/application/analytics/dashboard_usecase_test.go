package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/coaching-pro/internal/application/analytics"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de lectura: solo responden lo precargado; las escrituras no se usan.
// ──────────────────────────────────────────────────────────────────────────────

type stubCompanies struct {
	company *entity.Company
}

var _ repository.CompanyRepository = (*stubCompanies)(nil)

func (s *stubCompanies) GetByID(id string) (*entity.Company, error) {
	if s.company != nil && s.company.ID == id {
		return s.company, nil
	}
	return nil, nil
}
func (s *stubCompanies) Create(*entity.Company) error                             { return nil }
func (s *stubCompanies) Update(*entity.Company) error                             { return nil }
func (s *stubCompanies) ListActive() ([]*entity.Company, error)                   { return nil, nil }
func (s *stubCompanies) ListWithCounts() ([]*repository.CompanyWithCounts, error) { return nil, nil }
func (s *stubCompanies) SetActive(string, bool) error                             { return nil }
func (s *stubCompanies) SoftDelete(string, time.Time) error                       { return nil }
func (s *stubCompanies) Delete(string) error                                      { return nil }

type stubSessions struct {
	total, completed int
	next             *entity.Session
}

var _ repository.SessionRepository = (*stubSessions)(nil)

func (s *stubSessions) Stats(string) (int, int, error) { return s.total, s.completed, nil }
func (s *stubSessions) NextScheduled(string, time.Time) (*entity.Session, error) {
	return s.next, nil
}
func (s *stubSessions) CreateBatch([]*entity.Session) error                     { return nil }
func (s *stubSessions) ListByCompany(string) ([]*entity.Session, error)         { return nil, nil }
func (s *stubSessions) GetByNumber(string, int) (*entity.Session, error)        { return nil, nil }
func (s *stubSessions) Update(*entity.Session) error                            { return nil }
func (s *stubSessions) ListAllWithCompany() ([]*repository.SessionWithCompany, error) {
	return nil, nil
}
func (s *stubSessions) DeleteByCompany(string) error { return nil }

type stubSystems struct {
	systems          []*entity.System
	timeRed, costRed decimal.Decimal
}

var _ repository.SystemRepository = (*stubSystems)(nil)

func (s *stubSystems) ListByCompany(string) ([]*entity.System, error) { return s.systems, nil }
func (s *stubSystems) TotalEffect(string) (decimal.Decimal, decimal.Decimal, error) {
	return s.timeRed, s.costRed, nil
}
func (s *stubSystems) Create(*entity.System) error                      { return nil }
func (s *stubSystems) GetByNumber(string, int) (*entity.System, error)  { return nil, nil }
func (s *stubSystems) MaxNumber(string) (int, error)                    { return 0, nil }
func (s *stubSystems) Update(*entity.System) error                      { return nil }
func (s *stubSystems) Delete(string) error                              { return nil }
func (s *stubSystems) ListAllWithCompany() ([]*repository.SystemWithCompany, error) {
	return nil, nil
}
func (s *stubSystems) DeleteByCompany(string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

const dashCompanyID = "00000000-0000-0000-0000-0000000000d1"

func baseCompany() *entity.Company {
	return &entity.Company{
		ID:             dashCompanyID,
		Name:           "Acme",
		ContractAmount: decimal.NewFromInt(4_000_000),
		IsActive:       true,
	}
}

func TestDashboard_EmpresaInexistenteRetornaNotFound(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubCompanies{}, &stubSessions{}, &stubSystems{}, roiProgram)
	_, err := uc.GetSummary(context.Background(), dashCompanyID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboard_EmpresaBorradaRetornaNotFound(t *testing.T) {
	company := baseCompany()
	now := time.Now()
	company.DeletedAt = &now
	uc := analytics.NewDashboardUseCase(&stubCompanies{company: company}, &stubSessions{}, &stubSystems{}, roiProgram)
	_, err := uc.GetSummary(context.Background(), dashCompanyID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Empresa recién creada, sin sesiones ni sistemas: todo en cero, sin errores
// de división ni próxima sesión fantasma.
func TestDashboard_EmpresaVaciaTodoEnCero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&stubCompanies{company: baseCompany()},
		&stubSessions{},
		&stubSystems{timeRed: decimal.Zero, costRed: decimal.Zero},
		roiProgram,
	)

	resp, err := uc.GetSummary(context.Background(), dashCompanyID)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.SessionStats.Total)
	assert.Equal(t, 0, resp.SessionStats.Completed)
	assert.Nil(t, resp.NextSession)
	assert.Empty(t, resp.Systems)
	assert.True(t, resp.TotalEffect.ROI.IsZero(), "sin ahorro el ROI es 0, nunca un error de división")
}

func TestDashboard_ResumenCompleto(t *testing.T) {
	nextDate := time.Now().Add(48 * time.Hour)
	cost := decimal.NewFromInt(300)
	uc := analytics.NewDashboardUseCase(
		&stubCompanies{company: baseCompany()},
		&stubSessions{
			total: 24, completed: 5,
			next: &entity.Session{
				ID: "s-6", CompanyID: dashCompanyID, SessionNumber: 6, Phase: 1,
				Status: entity.SessionScheduled, ScheduledDate: &nextDate,
			},
		},
		&stubSystems{
			systems: []*entity.System{
				{ID: "sys-1", CompanyID: dashCompanyID, SystemNumber: 1, Name: "A", ActualCostReduction: &cost},
				{ID: "sys-2", CompanyID: dashCompanyID, SystemNumber: 2, Name: "B"},
			},
			timeRed: decimal.NewFromFloat(1.5),
			costRed: cost,
		},
		roiProgram,
	)

	resp, err := uc.GetSummary(context.Background(), dashCompanyID)
	require.NoError(t, err)

	assert.Equal(t, "Acme", resp.Company.Name)
	assert.Equal(t, 24, resp.SessionStats.Total)
	assert.Equal(t, 5, resp.SessionStats.Completed)
	require.NotNil(t, resp.NextSession)
	assert.Equal(t, 6, resp.NextSession.SessionNumber)
	require.Len(t, resp.Systems, 2)
	assert.Equal(t, 1, resp.Systems[0].SystemNumber)

	// 300 × 10.000 / 4.000.000 × 100 = 75
	assert.True(t, resp.TotalEffect.ROI.Equal(decimal.NewFromInt(75)),
		"ROI esperado 75, obtenido %s", resp.TotalEffect.ROI)
}
