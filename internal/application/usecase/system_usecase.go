package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// Intentos de asignación de número ante inserciones concurrentes.
const maxNumberRetries = 3

// SystemUseCase casos de uso de sistemas (proyectos internos): numeración
// secuencial por empresa, snapshot al borrar y restauración.
type SystemUseCase struct {
	systems      repository.SystemRepository
	measurements repository.MeasurementRepository
	deleted      repository.DeletedSystemRepository
	tx           repository.TxRunner
}

// NewSystemUseCase construye el caso de uso.
func NewSystemUseCase(systems repository.SystemRepository, measurements repository.MeasurementRepository, deleted repository.DeletedSystemRepository, tx repository.TxRunner) *SystemUseCase {
	return &SystemUseCase{systems: systems, measurements: measurements, deleted: deleted, tx: tx}
}

// ListByCompany devuelve los sistemas de la empresa ordenados por número.
func (uc *SystemUseCase) ListByCompany(companyID string) ([]dto.SystemResponse, error) {
	list, err := uc.systems.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SystemResponse, 0, len(list))
	for _, s := range list {
		items = append(items, SystemResponseFromEntity(s))
	}
	return items, nil
}

// Create registra un sistema con el siguiente número de la empresa.
// La constraint única (company_id, system_number) resuelve la carrera entre
// inserciones concurrentes: ante colisión se recalcula max+1 y se reintenta.
func (uc *SystemUseCase) Create(companyID string, in dto.CreateSystemRequest) (*dto.SystemResponse, error) {
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.SystemPlanning
	}
	system := &entity.System{
		ID:                    uuid.New().String(),
		CompanyID:             companyID,
		Name:                  in.Name,
		Purpose:               in.Purpose,
		AITools:               in.AITools,
		Status:                status,
		Progress:              in.Progress,
		ExpectedTimeReduction: in.ExpectedTimeReduction,
		ExpectedCostReduction: in.ExpectedCostReduction,
		ProjectMemo:           in.ProjectMemo,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		max, err := uc.systems.MaxNumber(companyID)
		if err != nil {
			return nil, err
		}
		system.SystemNumber = max + 1
		err = uc.systems.Create(system)
		if err == nil {
			resp := SystemResponseFromEntity(system)
			return &resp, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, domain.ErrDuplicate
}

// GetByNumber obtiene un sistema con sus mediciones (recientes primero).
func (uc *SystemUseCase) GetByNumber(companyID string, systemNumber int) (*dto.SystemDetailResponse, error) {
	system, err := uc.systems.GetByNumber(companyID, systemNumber)
	if err != nil {
		return nil, err
	}
	if system == nil {
		return nil, domain.ErrNotFound
	}
	measurements, err := uc.measurements.ListBySystem(system.ID)
	if err != nil {
		return nil, err
	}
	detail := &dto.SystemDetailResponse{
		SystemResponse: SystemResponseFromEntity(system),
		Measurements:   make([]dto.MeasurementResponse, 0, len(measurements)),
	}
	for _, m := range measurements {
		detail.Measurements = append(detail.Measurements, MeasurementResponseFromEntity(m))
	}
	return detail, nil
}

// Update reemplaza los campos editables del sistema.
func (uc *SystemUseCase) Update(companyID string, systemNumber int, in dto.UpdateSystemRequest) (*dto.SystemResponse, error) {
	system, err := uc.systems.GetByNumber(companyID, systemNumber)
	if err != nil {
		return nil, err
	}
	if system == nil {
		return nil, domain.ErrNotFound
	}
	system.Name = in.Name
	system.Purpose = in.Purpose
	system.AITools = in.AITools
	system.Status = in.Status
	system.Progress = in.Progress
	system.ExpectedTimeReduction = in.ExpectedTimeReduction
	system.ActualTimeReduction = in.ActualTimeReduction
	system.ExpectedCostReduction = in.ExpectedCostReduction
	system.ActualCostReduction = in.ActualCostReduction
	system.ProjectMemo = in.ProjectMemo
	system.UpdatedAt = time.Now()
	if err := uc.systems.Update(system); err != nil {
		return nil, err
	}
	resp := SystemResponseFromEntity(system)
	return &resp, nil
}

// Delete toma un snapshot de los campos descriptivos y borra el sistema, en
// una transacción: nunca queda un sistema borrado sin snapshot ni viceversa.
func (uc *SystemUseCase) Delete(ctx context.Context, companyID string, systemNumber int, deletedBy string) error {
	system, err := uc.systems.GetByNumber(companyID, systemNumber)
	if err != nil {
		return err
	}
	if system == nil {
		return domain.ErrNotFound
	}
	snapshot := &entity.DeletedSystem{
		ID:           uuid.New().String(),
		SystemID:     system.ID,
		CompanyID:    system.CompanyID,
		SystemNumber: system.SystemNumber,
		Name:         system.Name,
		Purpose:      system.Purpose,
		AITools:      system.AITools,
		ProjectMemo:  system.ProjectMemo,
		DeletedBy:    deletedBy,
		DeletedAt:    time.Now(),
	}
	return uc.tx.Run(ctx, func(tx repository.Tx) error {
		if err := tx.DeletedSystems.Create(snapshot); err != nil {
			return err
		}
		return tx.Systems.Delete(system.ID)
	})
}

// ListDeleted devuelve snapshots de sistemas borrados (filtro de empresa opcional).
func (uc *SystemUseCase) ListDeleted(ctx context.Context, companyID string, limit int) ([]dto.DeletedSystemResponse, error) {
	list, err := uc.deleted.List(ctx, companyID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeletedSystemResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.DeletedSystemResponse{
			ID:           d.ID,
			SystemID:     d.SystemID,
			CompanyID:    d.CompanyID,
			SystemNumber: d.SystemNumber,
			Name:         d.Name,
			Purpose:      d.Purpose,
			AITools:      d.AITools,
			ProjectMemo:  d.ProjectMemo,
			DeletedBy:    d.DeletedBy,
			DeletedAt:    d.DeletedAt,
		})
	}
	return items, nil
}

// Restore reinserta los campos descriptivos del snapshot como un sistema nuevo
// (id y número frescos, progreso y métricas en cero) y elimina el snapshot, en
// una transacción. Restaurar dos veces el mismo snapshot devuelve ErrNotFound.
func (uc *SystemUseCase) Restore(ctx context.Context, snapshotID string) (*dto.SystemResponse, error) {
	snapshot, err := uc.deleted.GetByID(snapshotID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	system := &entity.System{
		ID:          uuid.New().String(),
		CompanyID:   snapshot.CompanyID,
		Name:        snapshot.Name,
		Purpose:     snapshot.Purpose,
		AITools:     snapshot.AITools,
		Status:      entity.SystemPlanning,
		ProjectMemo: snapshot.ProjectMemo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// Un INSERT fallido aborta la transacción, así que el reintento de número
	// envuelve la transacción completa.
	for attempt := 0; ; attempt++ {
		err = uc.tx.Run(ctx, func(tx repository.Tx) error {
			max, err := tx.Systems.MaxNumber(snapshot.CompanyID)
			if err != nil {
				return err
			}
			system.SystemNumber = max + 1
			if err := tx.Systems.Create(system); err != nil {
				return err
			}
			return tx.DeletedSystems.Delete(snapshot.ID)
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) || attempt+1 >= maxNumberRetries {
			return nil, err
		}
	}
	resp := SystemResponseFromEntity(system)
	return &resp, nil
}

func SystemResponseFromEntity(s *entity.System) dto.SystemResponse {
	return dto.SystemResponse{
		ID:                    s.ID,
		CompanyID:             s.CompanyID,
		SystemNumber:          s.SystemNumber,
		Name:                  s.Name,
		Purpose:               s.Purpose,
		AITools:               s.AITools,
		Status:                s.Status,
		Progress:              s.Progress,
		ExpectedTimeReduction: s.ExpectedTimeReduction,
		ActualTimeReduction:   s.ActualTimeReduction,
		ExpectedCostReduction: s.ExpectedCostReduction,
		ActualCostReduction:   s.ActualCostReduction,
		ProjectMemo:           s.ProjectMemo,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
