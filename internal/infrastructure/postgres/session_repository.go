package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador para sesiones de curriculum.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

const sessionColumns = `id, company_id, session_number, phase, theme, scheduled_date,
		lesson_content, development_content, status, notes, created_at, updated_at`

// CreateBatch inserta el lote de sesiones sembradas al crear una empresa.
func (r *SessionRepo) CreateBatch(sessions []*entity.Session) error {
	query := `
		INSERT INTO sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, s := range sessions {
		_, err := r.q.Exec(context.Background(), query,
			s.ID, s.CompanyID, s.SessionNumber, s.Phase, s.Theme, s.ScheduledDate,
			s.LessonContent, s.DevelopmentContent, s.Status, s.Notes, s.CreatedAt, s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert session %d: %w", s.SessionNumber, err)
		}
	}
	return nil
}

// ListByCompany devuelve las sesiones de la empresa ordenadas por número.
func (r *SessionRepo) ListByCompany(companyID string) ([]*entity.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE company_id = $1 ORDER BY session_number`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByNumber obtiene una sesión por empresa y número.
func (r *SessionRepo) GetByNumber(companyID string, sessionNumber int) (*entity.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE company_id = $1 AND session_number = $2`
	s, err := scanSession(r.q.QueryRow(context.Background(), query, companyID, sessionNumber))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

// Update reemplaza el registro completo de la sesión.
func (r *SessionRepo) Update(session *entity.Session) error {
	query := `
		UPDATE sessions SET
			theme = $2, scheduled_date = $3, lesson_content = $4,
			development_content = $5, status = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		session.ID, session.Theme, session.ScheduledDate, session.LessonContent,
		session.DevelopmentContent, session.Status, session.Notes, session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// Stats devuelve total y completadas para el ratio de avance.
func (r *SessionRepo) Stats(companyID string) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'completed')
		FROM sessions WHERE company_id = $1`
	var total, completed int
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(&total, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("session stats: %w", err)
	}
	return total, completed, nil
}

// NextScheduled devuelve la sesión agendada futura más próxima, o nil.
func (r *SessionRepo) NextScheduled(companyID string, after time.Time) (*entity.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE company_id = $1 AND status = 'scheduled' AND scheduled_date IS NOT NULL AND scheduled_date >= $2
		ORDER BY scheduled_date
		LIMIT 1`
	s, err := scanSession(r.q.QueryRow(context.Background(), query, companyID, after))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("next scheduled session: %w", err)
	}
	return s, nil
}

// ListAllWithCompany devuelve todas las sesiones con el nombre de su empresa (export).
func (r *SessionRepo) ListAllWithCompany() ([]*repository.SessionWithCompany, error) {
	query := `
		SELECT s.id, s.company_id, s.session_number, s.phase, s.theme, s.scheduled_date,
			s.lesson_content, s.development_content, s.status, s.notes, s.created_at, s.updated_at,
			c.name
		FROM sessions s
		JOIN companies c ON c.id = s.company_id
		ORDER BY c.name, s.session_number`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all sessions: %w", err)
	}
	defer rows.Close()

	var list []*repository.SessionWithCompany
	for rows.Next() {
		var item repository.SessionWithCompany
		if err := rows.Scan(
			&item.ID, &item.CompanyID, &item.SessionNumber, &item.Phase, &item.Theme,
			&item.ScheduledDate, &item.LessonContent, &item.DevelopmentContent,
			&item.Status, &item.Notes, &item.CreatedAt, &item.UpdatedAt,
			&item.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// DeleteByCompany elimina las sesiones de la empresa (purge en cascada).
func (r *SessionRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sessions WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete sessions by company: %w", err)
	}
	return nil
}

func scanSession(row pgx.Row) (*entity.Session, error) {
	var s entity.Session
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.SessionNumber, &s.Phase, &s.Theme, &s.ScheduledDate,
		&s.LessonContent, &s.DevelopmentContent, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
