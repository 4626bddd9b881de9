package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.UserSessionRepository = (*UserSessionRepo)(nil)

// UserSessionRepo implementación del puerto UserSessionRepository sobre PostgreSQL.
type UserSessionRepo struct {
	q Querier
}

// NewUserSessionRepository construye el adaptador para sesiones de autenticación.
func NewUserSessionRepository(q Querier) *UserSessionRepo {
	return &UserSessionRepo{q: q}
}

// Create persiste una nueva sesión de autenticación.
func (r *UserSessionRepo) Create(session *entity.UserSession) error {
	query := `
		INSERT INTO user_sessions (id, user_id, company_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		session.ID, session.UserID, session.CompanyID, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user session: %w", err)
	}
	return nil
}

// GetByID devuelve la sesión por token, expirada o no. El caller decide por ExpiresAt.
func (r *UserSessionRepo) GetByID(token string) (*entity.UserSession, error) {
	query := `SELECT id, user_id, company_id, expires_at, created_at FROM user_sessions WHERE id = $1`
	var s entity.UserSession
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&s.ID, &s.UserID, &s.CompanyID, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user session: %w", err)
	}
	return &s, nil
}

// Delete revoca una sesión. Idempotente.
func (r *UserSessionRepo) Delete(token string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM user_sessions WHERE id = $1`, token)
	if err != nil {
		return fmt.Errorf("delete user session: %w", err)
	}
	return nil
}

// DeleteByUser revoca todas las sesiones de un usuario.
func (r *UserSessionRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM user_sessions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete sessions by user: %w", err)
	}
	return nil
}

// DeleteByCompany revoca todas las sesiones de los usuarios de una empresa.
func (r *UserSessionRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM user_sessions WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete sessions by company: %w", err)
	}
	return nil
}

// DeleteExpired purga las sesiones vencidas al instante dado.
func (r *UserSessionRepo) DeleteExpired(now time.Time) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM user_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}
	return nil
}

// ListActive devuelve las sesiones vigentes con datos de usuario y empresa.
func (r *UserSessionRepo) ListActive(now time.Time) ([]*repository.ActiveSession, error) {
	query := `
		SELECT s.id, s.user_id, s.company_id, s.expires_at, s.created_at,
			u.username, u.role, c.name
		FROM user_sessions s
		JOIN users u ON u.id = s.user_id
		JOIN companies c ON c.id = s.company_id
		WHERE s.expires_at > $1
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, now)
	if err != nil {
		return nil, fmt.Errorf("list active sessions: %w", err)
	}
	defer rows.Close()

	var list []*repository.ActiveSession
	for rows.Next() {
		var item repository.ActiveSession
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.CompanyID, &item.ExpiresAt, &item.CreatedAt,
			&item.Username, &item.Role, &item.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan active session: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
