package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, company_id, username, password_hash, role, is_active, last_login, created_at, updated_at`

// Create persiste un nuevo usuario. Username duplicado -> domain.ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.CompanyID, user.Username, user.PasswordHash, user.Role,
		user.IsActive, user.LastLogin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := r.scanRow(query, id)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByUsername busca por username exacto (ya normalizado por el caller).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	u, err := r.scanRow(query, username)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Update actualiza los campos mutables del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET
			username = $2, password_hash = $3, role = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Role, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateLastLogin registra el timestamp del último login exitoso.
func (r *UserRepo) UpdateLastLogin(id string, when time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET last_login = $2 WHERE id = $1`, id, when)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// SetActiveByCompany propaga la bandera is_active a todos los usuarios de la empresa.
func (r *UserRepo) SetActiveByCompany(companyID string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET is_active = $2, updated_at = now() WHERE company_id = $1`, companyID, active)
	if err != nil {
		return fmt.Errorf("set users active by company: %w", err)
	}
	return nil
}

// ListAllWithCompany devuelve todos los usuarios con el nombre de su empresa.
func (r *UserRepo) ListAllWithCompany() ([]*repository.UserWithCompany, error) {
	query := `
		SELECT u.id, u.company_id, u.username, u.password_hash, u.role, u.is_active,
			u.last_login, u.created_at, u.updated_at, c.name
		FROM users u
		JOIN companies c ON c.id = u.company_id
		ORDER BY c.name, u.username`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*repository.UserWithCompany
	for rows.Next() {
		var item repository.UserWithCompany
		if err := rows.Scan(
			&item.ID, &item.CompanyID, &item.Username, &item.PasswordHash, &item.Role,
			&item.IsActive, &item.LastLogin, &item.CreatedAt, &item.UpdatedAt,
			&item.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// DeleteByCompany elimina todos los usuarios de la empresa (purge en cascada).
func (r *UserRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete users by company: %w", err)
	}
	return nil
}

func (r *UserRepo) scanRow(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.CompanyID, &u.Username, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
