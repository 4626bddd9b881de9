package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/coaching-pro/internal/application/auth"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
	"github.com/tu-usuario/coaching-pro/pkg/config"
)

// CompanyUseCase casos de uso de empresas: perfil del tenant y ciclo de vida
// administrativo (alta con siembra de curriculum, baja lógica, purge, toggle).
type CompanyUseCase struct {
	companies repository.CompanyRepository
	tx        repository.TxRunner
	program   config.ProgramConfig
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companies repository.CompanyRepository, tx repository.TxRunner, program config.ProgramConfig) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, tx: tx, program: program}
}

// GetByID obtiene una empresa. Borrada lógicamente cuenta como inexistente.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil || company.IsDeleted() {
		return nil, domain.ErrNotFound
	}
	return CompanyResponseFromEntity(company), nil
}

// Update reemplaza el perfil completo de la empresa (tenant).
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil || company.IsDeleted() {
		return nil, domain.ErrNotFound
	}
	applyCompanyProfile(company, in)
	company.UpdatedAt = time.Now()
	if err := uc.companies.Update(company); err != nil {
		return nil, err
	}
	return CompanyResponseFromEntity(company), nil
}

// List devuelve las empresas no borradas con conteos (panel admin).
func (uc *CompanyUseCase) List() ([]dto.CompanyWithCountsResponse, error) {
	list, err := uc.companies.ListWithCounts()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyWithCountsResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanyWithCountsResponse{
			CompanyResponse: *CompanyResponseFromEntity(&c.Company),
			UserCount:       c.UserCount,
			SystemCount:     c.SystemCount,
		})
	}
	return items, nil
}

// Create da de alta una empresa, siembra su curriculum completo (3 fases) y,
// si vienen credenciales, crea la cuenta de acceso. Todo en una transacción:
// no existen empresas con curriculum a medio sembrar.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		Name:          in.Name,
		AILevel:       entity.AILevelBeginner,
		PaymentStatus: entity.PaymentPending,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applyCompanyProfile(company, dto.UpdateCompanyRequest{
		Name: in.Name, Industry: in.Industry, EmployeeCount: in.EmployeeCount,
		Revenue: in.Revenue, AILevel: in.AILevel, MainChallenges: in.MainChallenges,
		ContactName: in.ContactName, ContactPosition: in.ContactPosition,
		ContactEmail: in.ContactEmail, ContactPhone: in.ContactPhone,
		ContractAmount: in.ContractAmount, PaymentStatus: in.PaymentStatus,
	})

	var hash string
	if in.Username != "" {
		var err error
		hash, err = auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
	}

	err := uc.tx.Run(ctx, func(tx repository.Tx) error {
		if err := tx.Companies.Create(company); err != nil {
			return err
		}
		if err := tx.Sessions.CreateBatch(uc.seedSessions(company.ID, now)); err != nil {
			return err
		}
		if in.Username != "" {
			user := &entity.User{
				ID:           uuid.New().String(),
				CompanyID:    company.ID,
				Username:     auth.NormalizeUsername(in.Username),
				PasswordHash: hash,
				Role:         entity.RoleUser,
				IsActive:     true,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.Users.Create(user); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return CompanyResponseFromEntity(company), nil
}

// SoftDelete marca la empresa como borrada, desactiva sus usuarios y revoca
// sus sesiones vigentes, en una transacción. Los activity_logs se preservan.
func (uc *CompanyUseCase) SoftDelete(ctx context.Context, id string) error {
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil || company.IsDeleted() {
		return domain.ErrNotFound
	}
	now := time.Now()
	return uc.tx.Run(ctx, func(tx repository.Tx) error {
		if err := tx.Companies.SoftDelete(id, now); err != nil {
			return err
		}
		if err := tx.Users.SetActiveByCompany(id, false); err != nil {
			return err
		}
		return tx.UserSessions.DeleteByCompany(id)
	})
}

// Purge elimina físicamente la empresa y todas sus filas dependientes en una
// transacción. El orden respeta las FK; los activity_logs no se tocan.
func (uc *CompanyUseCase) Purge(ctx context.Context, id string) error {
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(tx repository.Tx) error {
		if err := tx.Measurements.DeleteByCompany(id); err != nil {
			return err
		}
		if err := tx.Systems.DeleteByCompany(id); err != nil {
			return err
		}
		if err := tx.Sessions.DeleteByCompany(id); err != nil {
			return err
		}
		if err := tx.Notifications.DeleteByCompany(id); err != nil {
			return err
		}
		if err := tx.UserSessions.DeleteByCompany(id); err != nil {
			return err
		}
		if err := tx.Users.DeleteByCompany(id); err != nil {
			return err
		}
		return tx.Companies.Delete(id)
	})
}

// ToggleActive activa o desactiva la empresa y sus usuarios en una transacción.
// Al desactivar también se revocan las sesiones vigentes.
func (uc *CompanyUseCase) ToggleActive(ctx context.Context, id string, active bool) error {
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil || company.IsDeleted() {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(tx repository.Tx) error {
		if err := tx.Companies.SetActive(id, active); err != nil {
			return err
		}
		if err := tx.Users.SetActiveByCompany(id, active); err != nil {
			return err
		}
		if !active {
			return tx.UserSessions.DeleteByCompany(id)
		}
		return nil
	})
}

// seedSessions arma el lote de sesiones de curriculum de una empresa nueva.
func (uc *CompanyUseCase) seedSessions(companyID string, now time.Time) []*entity.Session {
	total := uc.program.TotalSessions
	sessions := make([]*entity.Session, 0, total)
	for n := 1; n <= total; n++ {
		sessions = append(sessions, &entity.Session{
			ID:            uuid.New().String(),
			CompanyID:     companyID,
			SessionNumber: n,
			Phase:         entity.PhaseForNumber(n, uc.program.SessionsPerPhase),
			Status:        entity.SessionScheduled,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return sessions
}

func applyCompanyProfile(c *entity.Company, in dto.UpdateCompanyRequest) {
	c.Name = in.Name
	c.Industry = in.Industry
	c.EmployeeCount = in.EmployeeCount
	c.Revenue = in.Revenue
	if in.AILevel != "" {
		c.AILevel = in.AILevel
	}
	c.MainChallenges = in.MainChallenges
	c.ContactName = in.ContactName
	c.ContactPosition = in.ContactPosition
	c.ContactEmail = in.ContactEmail
	c.ContactPhone = in.ContactPhone
	c.ContractAmount = in.ContractAmount
	if in.PaymentStatus != "" {
		c.PaymentStatus = in.PaymentStatus
	}
}

func CompanyResponseFromEntity(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Industry:        c.Industry,
		EmployeeCount:   c.EmployeeCount,
		Revenue:         c.Revenue,
		AILevel:         c.AILevel,
		MainChallenges:  c.MainChallenges,
		ContactName:     c.ContactName,
		ContactPosition: c.ContactPosition,
		ContactEmail:    c.ContactEmail,
		ContactPhone:    c.ContactPhone,
		ContractAmount:  c.ContractAmount,
		PaymentStatus:   c.PaymentStatus,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
