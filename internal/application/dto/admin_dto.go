package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminStatsResponse panel de estadísticas globales.
type AdminStatsResponse struct {
	Companies        CompanyStatsResponse    `json:"companies"`
	Users            UserStatsResponse       `json:"users"`
	Systems          SystemStatsResponse     `json:"systems"`
	Sessions         SessionCountsResponse   `json:"sessions"`
	TopCompanies     []CompanyRankingResponse `json:"top_companies"`
	MonthlySystems   []MonthCountResponse    `json:"monthly_systems"`
	RecentActivities []ActivityLogResponse   `json:"recent_activities"`
}

// CompanyStatsResponse contadores de empresas y valor de contratos.
type CompanyStatsResponse struct {
	Total              int             `json:"total"`
	Active             int             `json:"active"`
	Inactive           int             `json:"inactive"`
	TotalContractValue decimal.Decimal `json:"total_contract_value"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
}

// UserStatsResponse contadores de usuarios.
type UserStatsResponse struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Admins       int `json:"admins"`
	WeeklyActive int `json:"weekly_active"`
}

// SystemStatsResponse conteo y efecto total de sistemas.
type SystemStatsResponse struct {
	Total              int             `json:"total"`
	TotalTimeReduction decimal.Decimal `json:"total_time_reduction"`
	TotalCostReduction decimal.Decimal `json:"total_cost_reduction"`
}

// SessionCountsResponse contadores de sesiones de curriculum.
type SessionCountsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Scheduled int `json:"scheduled"`
}

// CompanyRankingResponse entrada del top de empresas por sistemas.
type CompanyRankingResponse struct {
	CompanyID          string          `json:"company_id"`
	Name               string          `json:"name"`
	SystemCount        int             `json:"system_count"`
	TotalCostReduction decimal.Decimal `json:"total_cost_reduction"`
}

// MonthCountResponse conteo mensual (YYYY-MM).
type MonthCountResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ActivityLogResponse fila de auditoría con campos denormalizados.
type ActivityLogResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	CompanyID   string    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    *string   `json:"entity_id"`
	Details     string    `json:"details"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityLogListResponse página de auditoría.
type ActivityLogListResponse struct {
	Items []ActivityLogResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ImportUserRow una fila del import masivo de usuarios.
type ImportUserRow struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
}

// ImportUsersRequest entrada del import masivo.
type ImportUsersRequest struct {
	Users []ImportUserRow `json:"users" validate:"required,min=1"`
}

// ImportRowError error de una fila del import.
type ImportRowError struct {
	Username string `json:"username"`
	Error    string `json:"error"`
}

// ImportUsersResponse resultado agregado: las filas fallidas no abortan el resto.
type ImportUsersResponse struct {
	Success int              `json:"success"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors"`
}

// ActiveSessionResponse sesión de autenticación vigente (panel admin).
type ActiveSessionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	CompanyID   string    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateNotificationRequest entrada para crear una notificación.
// UserID/CompanyID en nil la vuelven de difusión.
type CreateNotificationRequest struct {
	UserID    *string `json:"user_id" validate:"omitempty,uuid"`
	CompanyID *string `json:"company_id" validate:"omitempty,uuid"`
	Title     string  `json:"title" validate:"required,min=1,max=200"`
	Message   string  `json:"message" validate:"required"`
	Type      string  `json:"type" validate:"omitempty,oneof=info warning alert"`
	Link      string  `json:"link"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	CompanyID *string   `json:"company_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateSettingRequest entrada para cambiar una clave de configuración.
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// SettingResponse salida de una clave de configuración.
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBackupRequest entrada para registrar metadatos de un respaldo.
type CreateBackupRequest struct {
	BackupType string  `json:"backup_type" validate:"required"`
	CompanyID  *string `json:"company_id" validate:"omitempty,uuid"`
	FileName   string  `json:"file_name" validate:"required"`
	FileSize   int64   `json:"file_size" validate:"min=0"`
}

// BackupResponse salida de un registro de respaldo.
type BackupResponse struct {
	ID                string    `json:"id"`
	BackupType        string    `json:"backup_type"`
	CompanyID         *string   `json:"company_id"`
	CompanyName       string    `json:"company_name"`
	FileName          string    `json:"file_name"`
	FileSize          int64     `json:"file_size"`
	Status            string    `json:"status"`
	CreatedBy         string    `json:"created_by"`
	CreatedByUsername string    `json:"created_by_username"`
	CreatedAt         time.Time `json:"created_at"`
}

// UserWithCompanyResponse usuario con su empresa (listado admin).
type UserWithCompanyResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	CompanyName string     `json:"company_name"`
	Username    string     `json:"username"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
}
