package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
// Acepta pool o transacción.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, industry, employee_count, revenue, ai_level, main_challenges,
		contact_name, contact_position, contact_email, contact_phone,
		contract_amount, payment_status, is_active, deleted_at, created_at, updated_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Industry, company.EmployeeCount, company.Revenue,
		company.AILevel, marshalList(company.MainChallenges),
		company.ContactName, company.ContactPosition, company.ContactEmail, company.ContactPhone,
		company.ContractAmount, company.PaymentStatus, company.IsActive,
		company.DeletedAt, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Incluye borradas lógicamente:
// el caller decide si deleted_at importa.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Update reemplaza el perfil completo de la empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET
			name = $2, industry = $3, employee_count = $4, revenue = $5, ai_level = $6,
			main_challenges = $7, contact_name = $8, contact_position = $9,
			contact_email = $10, contact_phone = $11, contract_amount = $12,
			payment_status = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Industry, company.EmployeeCount, company.Revenue,
		company.AILevel, marshalList(company.MainChallenges),
		company.ContactName, company.ContactPosition, company.ContactEmail, company.ContactPhone,
		company.ContractAmount, company.PaymentStatus, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// ListActive devuelve empresas no borradas, más recientes primero.
func (r *CompanyRepo) ListActive() ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListWithCounts como ListActive pero con conteos de usuarios activos y sistemas.
func (r *CompanyRepo) ListWithCounts() ([]*repository.CompanyWithCounts, error) {
	query := `
		SELECT ` + companyColumns + `,
			(SELECT COUNT(*) FROM users u WHERE u.company_id = companies.id AND u.is_active) AS user_count,
			(SELECT COUNT(*) FROM systems s WHERE s.company_id = companies.id) AS system_count
		FROM companies
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies with counts: %w", err)
	}
	defer rows.Close()

	var list []*repository.CompanyWithCounts
	for rows.Next() {
		var item repository.CompanyWithCounts
		var challenges []byte
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Industry, &item.EmployeeCount, &item.Revenue,
			&item.AILevel, &challenges,
			&item.ContactName, &item.ContactPosition, &item.ContactEmail, &item.ContactPhone,
			&item.ContractAmount, &item.PaymentStatus, &item.IsActive,
			&item.DeletedAt, &item.CreatedAt, &item.UpdatedAt,
			&item.UserCount, &item.SystemCount,
		); err != nil {
			return nil, fmt.Errorf("scan company with counts: %w", err)
		}
		item.MainChallenges = unmarshalList(challenges)
		list = append(list, &item)
	}
	return list, rows.Err()
}

// SetActive cambia la bandera is_active de la empresa.
func (r *CompanyRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE companies SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set company active: %w", err)
	}
	return nil
}

// SoftDelete marca deleted_at y desactiva la empresa. La fila persiste.
func (r *CompanyRepo) SoftDelete(id string, when time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE companies SET deleted_at = $2, is_active = false, updated_at = $2 WHERE id = $1`, id, when)
	if err != nil {
		return fmt.Errorf("soft delete company: %w", err)
	}
	return nil
}

// Delete elimina físicamente la fila. Solo lo invoca el purge en cascada,
// después de borrar las filas dependientes.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	var challenges []byte
	err := row.Scan(
		&c.ID, &c.Name, &c.Industry, &c.EmployeeCount, &c.Revenue,
		&c.AILevel, &challenges,
		&c.ContactName, &c.ContactPosition, &c.ContactEmail, &c.ContactPhone,
		&c.ContractAmount, &c.PaymentStatus, &c.IsActive,
		&c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.MainChallenges = unmarshalList(challenges)
	return &c, nil
}
