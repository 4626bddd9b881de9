package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.SystemRepository = (*SystemRepo)(nil)

// SystemRepo implementación del puerto SystemRepository sobre PostgreSQL.
type SystemRepo struct {
	q Querier
}

// NewSystemRepository construye el adaptador para sistemas (proyectos).
func NewSystemRepository(q Querier) *SystemRepo {
	return &SystemRepo{q: q}
}

const systemColumns = `id, company_id, system_number, name, purpose, ai_tools, status, progress,
		expected_time_reduction, actual_time_reduction,
		expected_cost_reduction, actual_cost_reduction,
		project_memo, created_at, updated_at`

// Create inserta el sistema. El par (company_id, system_number) tiene constraint
// único: la colisión se reporta como domain.ErrDuplicate y el caso de uso reintenta.
func (r *SystemRepo) Create(system *entity.System) error {
	query := `
		INSERT INTO systems (` + systemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		system.ID, system.CompanyID, system.SystemNumber, system.Name, system.Purpose,
		marshalList(system.AITools), system.Status, system.Progress,
		system.ExpectedTimeReduction, system.ActualTimeReduction,
		system.ExpectedCostReduction, system.ActualCostReduction,
		system.ProjectMemo, system.CreatedAt, system.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert system: %w", err)
	}
	return nil
}

// GetByNumber obtiene un sistema por empresa y número.
func (r *SystemRepo) GetByNumber(companyID string, systemNumber int) (*entity.System, error) {
	query := `SELECT ` + systemColumns + ` FROM systems WHERE company_id = $1 AND system_number = $2`
	s, err := scanSystem(r.q.QueryRow(context.Background(), query, companyID, systemNumber))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get system: %w", err)
	}
	return s, nil
}

// ListByCompany devuelve los sistemas de la empresa ordenados por número.
func (r *SystemRepo) ListByCompany(companyID string) ([]*entity.System, error) {
	query := `SELECT ` + systemColumns + ` FROM systems WHERE company_id = $1 ORDER BY system_number`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	defer rows.Close()

	var list []*entity.System
	for rows.Next() {
		s, err := scanSystem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan system: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// MaxNumber devuelve el mayor system_number de la empresa, 0 si no hay filas.
func (r *SystemRepo) MaxNumber(companyID string) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(system_number), 0) FROM systems WHERE company_id = $1`, companyID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max system number: %w", err)
	}
	return max, nil
}

// Update reemplaza los campos mutables del sistema.
func (r *SystemRepo) Update(system *entity.System) error {
	query := `
		UPDATE systems SET
			name = $2, purpose = $3, ai_tools = $4, status = $5, progress = $6,
			expected_time_reduction = $7, actual_time_reduction = $8,
			expected_cost_reduction = $9, actual_cost_reduction = $10,
			project_memo = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		system.ID, system.Name, system.Purpose, marshalList(system.AITools),
		system.Status, system.Progress,
		system.ExpectedTimeReduction, system.ActualTimeReduction,
		system.ExpectedCostReduction, system.ActualCostReduction,
		system.ProjectMemo, system.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update system: %w", err)
	}
	return nil
}

// Delete elimina el sistema. El snapshot previo lo maneja el caso de uso.
func (r *SystemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM systems WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete system: %w", err)
	}
	return nil
}

// TotalEffect suma los ahorros reales de los sistemas de la empresa.
// Los NULL (sin medición) suman cero.
func (r *SystemRepo) TotalEffect(companyID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(actual_time_reduction), 0), COALESCE(SUM(actual_cost_reduction), 0)
		FROM systems WHERE company_id = $1`
	var timeRed, costRed decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(&timeRed, &costRed)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("total effect: %w", err)
	}
	return timeRed, costRed, nil
}

// ListAllWithCompany devuelve todos los sistemas con el nombre de su empresa (export).
func (r *SystemRepo) ListAllWithCompany() ([]*repository.SystemWithCompany, error) {
	query := `
		SELECT s.id, s.company_id, s.system_number, s.name, s.purpose, s.ai_tools, s.status, s.progress,
			s.expected_time_reduction, s.actual_time_reduction,
			s.expected_cost_reduction, s.actual_cost_reduction,
			s.project_memo, s.created_at, s.updated_at,
			c.name
		FROM systems s
		JOIN companies c ON c.id = s.company_id
		ORDER BY c.name, s.system_number`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all systems: %w", err)
	}
	defer rows.Close()

	var list []*repository.SystemWithCompany
	for rows.Next() {
		var item repository.SystemWithCompany
		var tools []byte
		if err := rows.Scan(
			&item.ID, &item.CompanyID, &item.SystemNumber, &item.Name, &item.Purpose,
			&tools, &item.Status, &item.Progress,
			&item.ExpectedTimeReduction, &item.ActualTimeReduction,
			&item.ExpectedCostReduction, &item.ActualCostReduction,
			&item.ProjectMemo, &item.CreatedAt, &item.UpdatedAt,
			&item.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan system: %w", err)
		}
		item.AITools = unmarshalList(tools)
		list = append(list, &item)
	}
	return list, rows.Err()
}

// DeleteByCompany elimina los sistemas de la empresa (purge en cascada).
func (r *SystemRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM systems WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete systems by company: %w", err)
	}
	return nil
}

func scanSystem(row pgx.Row) (*entity.System, error) {
	var s entity.System
	var tools []byte
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.SystemNumber, &s.Name, &s.Purpose,
		&tools, &s.Status, &s.Progress,
		&s.ExpectedTimeReduction, &s.ActualTimeReduction,
		&s.ExpectedCostReduction, &s.ActualCostReduction,
		&s.ProjectMemo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.AITools = unmarshalList(tools)
	return &s, nil
}
