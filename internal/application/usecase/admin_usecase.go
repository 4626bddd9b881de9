package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// Parámetros fijos del panel de estadísticas.
const (
	statsTopCompanies     = 10
	statsHistogramMonths  = 12
	statsRecentActivities = 50
)

// AdminUseCase casos de uso del panel de administración: estadísticas
// globales, auditoría, sesiones activas, configuración y respaldos.
type AdminUseCase struct {
	stats        repository.StatsRepository
	activityLogs repository.ActivityLogRepository
	userSessions repository.UserSessionRepository
	settings     repository.SettingRepository
	backups      repository.BackupRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(stats repository.StatsRepository, activityLogs repository.ActivityLogRepository, userSessions repository.UserSessionRepository, settings repository.SettingRepository, backups repository.BackupRepository) *AdminUseCase {
	return &AdminUseCase{stats: stats, activityLogs: activityLogs, userSessions: userSessions, settings: settings, backups: backups}
}

// Stats arma el panel de estadísticas. Lecturas puntuales sin caché.
func (uc *AdminUseCase) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	companies, err := uc.stats.CompanyStats(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.stats.UserStats(ctx)
	if err != nil {
		return nil, err
	}
	systems, err := uc.stats.SystemStats(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := uc.stats.SessionStats(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.stats.TopCompaniesBySystems(ctx, statsTopCompanies)
	if err != nil {
		return nil, err
	}
	monthly, err := uc.stats.MonthlySystemCreation(ctx, statsHistogramMonths)
	if err != nil {
		return nil, err
	}
	recent, err := uc.activityLogs.Recent(ctx, statsRecentActivities)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdminStatsResponse{
		Companies: dto.CompanyStatsResponse{
			Total:              companies.Total,
			Active:             companies.Active,
			Inactive:           companies.Inactive,
			TotalContractValue: companies.TotalContractValue,
			PaidAmount:         companies.PaidAmount,
		},
		Users: dto.UserStatsResponse{
			Total:        users.Total,
			Active:       users.Active,
			Admins:       users.Admins,
			WeeklyActive: users.WeeklyActive,
		},
		Systems: dto.SystemStatsResponse{
			Total:              systems.Total,
			TotalTimeReduction: systems.TotalTimeReduction,
			TotalCostReduction: systems.TotalCostReduction,
		},
		Sessions: dto.SessionCountsResponse{
			Total:     sessions.Total,
			Completed: sessions.Completed,
			Scheduled: sessions.Scheduled,
		},
		TopCompanies:     make([]dto.CompanyRankingResponse, 0, len(top)),
		MonthlySystems:   make([]dto.MonthCountResponse, 0, len(monthly)),
		RecentActivities: make([]dto.ActivityLogResponse, 0, len(recent)),
	}
	for _, t := range top {
		resp.TopCompanies = append(resp.TopCompanies, dto.CompanyRankingResponse{
			CompanyID:          t.CompanyID,
			Name:               t.Name,
			SystemCount:        t.SystemCount,
			TotalCostReduction: t.TotalCostReduction,
		})
	}
	for _, m := range monthly {
		resp.MonthlySystems = append(resp.MonthlySystems, dto.MonthCountResponse{Month: m.Month, Count: m.Count})
	}
	for _, l := range recent {
		resp.RecentActivities = append(resp.RecentActivities, ActivityLogResponseFromEntity(l))
	}
	return resp, nil
}

// ActivityLogs devuelve la página filtrada de auditoría con total y total_pages.
func (uc *AdminUseCase) ActivityLogs(ctx context.Context, filter repository.ActivityLogFilter) (*dto.ActivityLogListResponse, error) {
	logs, total, err := uc.activityLogs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ActivityLogListResponse{
		Items: make([]dto.ActivityLogResponse, 0, len(logs)),
		Page: dto.PageResponse{
			Limit:  filter.Limit,
			Offset: filter.Offset,
			Total:  total,
		},
	}
	if filter.Limit > 0 {
		resp.Page.TotalPages = (total + filter.Limit - 1) / filter.Limit
	}
	for _, l := range logs {
		resp.Items = append(resp.Items, ActivityLogResponseFromEntity(l))
	}
	return resp, nil
}

// ActiveSessions lista las sesiones de autenticación vigentes.
func (uc *AdminUseCase) ActiveSessions() ([]dto.ActiveSessionResponse, error) {
	list, err := uc.userSessions.ListActive(time.Now())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActiveSessionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.ActiveSessionResponse{
			ID:          s.ID,
			UserID:      s.UserID,
			Username:    s.Username,
			Role:        s.Role,
			CompanyID:   s.CompanyID,
			CompanyName: s.CompanyName,
			ExpiresAt:   s.ExpiresAt,
			CreatedAt:   s.CreatedAt,
		})
	}
	return items, nil
}

// RevokeSession revoca una sesión puntual. Inexistente -> ErrNotFound (el
// panel distingue revocar de re-revocar).
func (uc *AdminUseCase) RevokeSession(token string) error {
	session, err := uc.userSessions.GetByID(token)
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrNotFound
	}
	return uc.userSessions.Delete(token)
}

// RevokeUserSessions revoca todas las sesiones de un usuario.
func (uc *AdminUseCase) RevokeUserSessions(userID string) error {
	return uc.userSessions.DeleteByUser(userID)
}

// Settings lista la configuración administrable.
func (uc *AdminUseCase) Settings() ([]dto.SettingResponse, error) {
	list, err := uc.settings.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SettingResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SettingResponse{
			Key:       s.Key,
			Value:     s.Value,
			UpdatedBy: s.UpdatedBy,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return items, nil
}

// UpdateSetting cambia el valor de una clave existente.
func (uc *AdminUseCase) UpdateSetting(key, value, updatedBy string) error {
	return uc.settings.Update(key, value, updatedBy, time.Now())
}

// Backups lista los registros de respaldo.
func (uc *AdminUseCase) Backups() ([]dto.BackupResponse, error) {
	list, err := uc.backups.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BackupResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BackupResponse{
			ID:                b.ID,
			BackupType:        b.BackupType,
			CompanyID:         b.CompanyID,
			CompanyName:       b.CompanyName,
			FileName:          b.FileName,
			FileSize:          b.FileSize,
			Status:            b.Status,
			CreatedBy:         b.CreatedBy,
			CreatedByUsername: b.CreatedByUsername,
			CreatedAt:         b.CreatedAt,
		})
	}
	return items, nil
}

// CreateBackup registra los metadatos de un respaldo. El sistema no ejecuta
// el respaldo en sí.
func (uc *AdminUseCase) CreateBackup(in dto.CreateBackupRequest, createdBy string) (*dto.BackupResponse, error) {
	b := &entity.Backup{
		ID:         uuid.New().String(),
		BackupType: in.BackupType,
		CompanyID:  in.CompanyID,
		FileName:   in.FileName,
		FileSize:   in.FileSize,
		Status:     "completed",
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
	}
	if err := uc.backups.Create(b); err != nil {
		return nil, err
	}
	return &dto.BackupResponse{
		ID:         b.ID,
		BackupType: b.BackupType,
		CompanyID:  b.CompanyID,
		FileName:   b.FileName,
		FileSize:   b.FileSize,
		Status:     b.Status,
		CreatedBy:  b.CreatedBy,
		CreatedAt:  b.CreatedAt,
	}, nil
}

// ActivityLogResponseFromEntity convierte la fila de auditoría al DTO.
func ActivityLogResponseFromEntity(l *entity.ActivityLog) dto.ActivityLogResponse {
	return dto.ActivityLogResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Username:    l.Username,
		CompanyID:   l.CompanyID,
		CompanyName: l.CompanyName,
		Action:      l.Action,
		EntityType:  l.EntityType,
		EntityID:    l.EntityID,
		Details:     l.Details,
		IPAddress:   l.IPAddress,
		UserAgent:   l.UserAgent,
		CreatedAt:   l.CreatedAt,
	}
}
