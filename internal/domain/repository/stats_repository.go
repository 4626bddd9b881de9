package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CompanyStats contadores globales de empresas.
type CompanyStats struct {
	Total              int
	Active             int
	Inactive           int
	TotalContractValue decimal.Decimal
	PaidAmount         decimal.Decimal
}

// UserStats contadores globales de usuarios.
type UserStats struct {
	Total        int
	Active       int
	Admins       int
	WeeklyActive int // con login en los últimos 7 días
}

// SystemStats contadores y efecto total de sistemas.
type SystemStats struct {
	Total              int
	TotalTimeReduction decimal.Decimal
	TotalCostReduction decimal.Decimal
}

// SessionStats contadores globales de sesiones de curriculum.
type SessionStats struct {
	Total     int
	Completed int
	Scheduled int
}

// CompanyRanking una entrada del top de empresas por cantidad de sistemas.
type CompanyRanking struct {
	CompanyID          string
	Name               string
	SystemCount        int
	TotalCostReduction decimal.Decimal
}

// MonthCount conteo de sistemas creados en un mes (YYYY-MM).
type MonthCount struct {
	Month string
	Count int
}

// StatsRepository consultas read-only de agregados para el panel de administración.
// Todas son lecturas puntuales sin caché: se recalculan en cada llamada.
type StatsRepository interface {
	CompanyStats(ctx context.Context) (CompanyStats, error)
	UserStats(ctx context.Context) (UserStats, error)
	SystemStats(ctx context.Context) (SystemStats, error)
	SessionStats(ctx context.Context) (SessionStats, error)
	TopCompaniesBySystems(ctx context.Context, limit int) ([]CompanyRanking, error)
	MonthlySystemCreation(ctx context.Context, months int) ([]MonthCount, error)
}
