package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de agregados para el panel de administración.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas globales.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CompanyStats contadores globales de empresas no borradas.
func (r *StatsRepo) CompanyStats(ctx context.Context) (repository.CompanyStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE NOT is_active),
			COALESCE(SUM(contract_amount), 0),
			COALESCE(SUM(contract_amount) FILTER (WHERE payment_status = 'paid'), 0)
		FROM companies
		WHERE deleted_at IS NULL`
	var s repository.CompanyStats
	err := r.q.QueryRow(ctx, query).Scan(
		&s.Total, &s.Active, &s.Inactive, &s.TotalContractValue, &s.PaidAmount)
	if err != nil {
		return repository.CompanyStats{}, fmt.Errorf("company stats: %w", err)
	}
	return s, nil
}

// UserStats contadores globales de usuarios.
func (r *StatsRepo) UserStats(ctx context.Context) (repository.UserStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE role = 'admin'),
			COUNT(*) FILTER (WHERE last_login >= now() - interval '7 days')
		FROM users`
	var s repository.UserStats
	err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.Active, &s.Admins, &s.WeeklyActive)
	if err != nil {
		return repository.UserStats{}, fmt.Errorf("user stats: %w", err)
	}
	return s, nil
}

// SystemStats conteo y efecto total de sistemas.
func (r *StatsRepo) SystemStats(ctx context.Context) (repository.SystemStats, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(actual_time_reduction), 0),
			COALESCE(SUM(actual_cost_reduction), 0)
		FROM systems`
	var s repository.SystemStats
	err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.TotalTimeReduction, &s.TotalCostReduction)
	if err != nil {
		return repository.SystemStats{}, fmt.Errorf("system stats: %w", err)
	}
	return s, nil
}

// SessionStats contadores globales de sesiones de curriculum.
func (r *StatsRepo) SessionStats(ctx context.Context) (repository.SessionStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'scheduled')
		FROM sessions`
	var s repository.SessionStats
	err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.Completed, &s.Scheduled)
	if err != nil {
		return repository.SessionStats{}, fmt.Errorf("session stats: %w", err)
	}
	return s, nil
}

// TopCompaniesBySystems ranking de empresas por cantidad de sistemas.
func (r *StatsRepo) TopCompaniesBySystems(ctx context.Context, limit int) ([]repository.CompanyRanking, error) {
	query := `
		SELECT c.id, c.name, COUNT(s.id), COALESCE(SUM(s.actual_cost_reduction), 0)
		FROM companies c
		LEFT JOIN systems s ON s.company_id = c.id
		WHERE c.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY COUNT(s.id) DESC, c.name
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top companies: %w", err)
	}
	defer rows.Close()

	var list []repository.CompanyRanking
	for rows.Next() {
		var item repository.CompanyRanking
		if err := rows.Scan(&item.CompanyID, &item.Name, &item.SystemCount, &item.TotalCostReduction); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// MonthlySystemCreation sistemas creados por mes en los últimos n meses, ascendente.
func (r *StatsRepo) MonthlySystemCreation(ctx context.Context, months int) ([]repository.MonthCount, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(*)
		FROM systems
		WHERE created_at >= date_trunc('month', now()) - ($1 || ' months')::interval
		GROUP BY month
		ORDER BY month`
	rows, err := r.q.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("monthly system creation: %w", err)
	}
	defer rows.Close()

	var list []repository.MonthCount
	for rows.Next() {
		var item repository.MonthCount
		if err := rows.Scan(&item.Month, &item.Count); err != nil {
			return nil, fmt.Errorf("scan month count: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
