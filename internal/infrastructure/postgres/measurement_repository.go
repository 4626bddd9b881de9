package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.MeasurementRepository = (*MeasurementRepo)(nil)

// MeasurementRepo implementación del puerto MeasurementRepository sobre PostgreSQL.
type MeasurementRepo struct {
	q Querier
}

// NewMeasurementRepository construye el adaptador para mediciones de efecto.
func NewMeasurementRepository(q Querier) *MeasurementRepo {
	return &MeasurementRepo{q: q}
}

// Create persiste una nueva medición.
func (r *MeasurementRepo) Create(m *entity.Measurement) error {
	query := `
		INSERT INTO measurements (id, company_id, system_id, measurement_date,
			time_reduction, cost_reduction, measurement_method, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CompanyID, m.SystemID, m.MeasurementDate,
		m.TimeReduction, m.CostReduction, m.MeasurementMethod, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}
	return nil
}

// ListBySystem devuelve las muestras de un sistema, más recientes primero.
func (r *MeasurementRepo) ListBySystem(systemID string) ([]*entity.Measurement, error) {
	query := `
		SELECT id, company_id, system_id, measurement_date,
			time_reduction, cost_reduction, measurement_method, notes, created_at
		FROM measurements
		WHERE system_id = $1
		ORDER BY measurement_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, systemID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Measurement
	for rows.Next() {
		var m entity.Measurement
		if err := rows.Scan(
			&m.ID, &m.CompanyID, &m.SystemID, &m.MeasurementDate,
			&m.TimeReduction, &m.CostReduction, &m.MeasurementMethod, &m.Notes, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// MonthlyTotals agrupa las muestras de la empresa por mes, ascendente.
func (r *MeasurementRepo) MonthlyTotals(companyID string) ([]repository.MonthlyEffect, error) {
	query := `
		SELECT to_char(measurement_date, 'YYYY-MM') AS month,
			SUM(time_reduction), SUM(cost_reduction)
		FROM measurements
		WHERE company_id = $1
		GROUP BY month
		ORDER BY month`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}
	defer rows.Close()

	var list []repository.MonthlyEffect
	for rows.Next() {
		var e repository.MonthlyEffect
		if err := rows.Scan(&e.Month, &e.Time, &e.Cost); err != nil {
			return nil, fmt.Errorf("scan monthly effect: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// DeleteByCompany elimina las mediciones de la empresa (purge en cascada).
func (r *MeasurementRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM measurements WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete measurements by company: %w", err)
	}
	return nil
}
