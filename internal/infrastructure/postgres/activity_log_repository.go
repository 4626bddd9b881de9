package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre PostgreSQL.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador para el rastro de auditoría.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create persiste una fila de auditoría.
func (r *ActivityLogRepo) Create(log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, user_id, company_id, action, entity_type, entity_id,
			details, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.UserID, log.CompanyID, log.Action, log.EntityType, log.EntityID,
		log.Details, log.IPAddress, log.UserAgent, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List devuelve la página filtrada (recientes primero) y el total sin paginar.
// Los JOIN son LEFT: los logs sobreviven al borrado de su usuario o empresa.
func (r *ActivityLogRepo) List(ctx context.Context, filter repository.ActivityLogFilter) ([]*entity.ActivityLog, int, error) {
	cond := sq.And{}
	if filter.CompanyID != "" {
		cond = append(cond, sq.Eq{"al.company_id": filter.CompanyID})
	}
	if filter.Action != "" {
		cond = append(cond, sq.Eq{"al.action": filter.Action})
	}
	if filter.EntityType != "" {
		cond = append(cond, sq.Eq{"al.entity_type": filter.EntityType})
	}

	countSQL, countArgs, err := sq.Select("COUNT(*)").
		From("activity_logs al").
		Where(cond).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activity logs: %w", err)
	}

	builder := sq.Select(
		"al.id", "al.user_id", "al.company_id", "al.action", "al.entity_type", "al.entity_id",
		"al.details", "al.ip_address", "al.user_agent", "al.created_at",
		"COALESCE(u.username, '')", "COALESCE(c.name, '')",
	).
		From("activity_logs al").
		LeftJoin("users u ON u.id = al.user_id").
		LeftJoin("companies c ON c.id = al.company_id").
		Where(cond).
		OrderBy("al.created_at DESC").
		PlaceholderFormat(sq.Dollar)
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.CompanyID, &l.Action, &l.EntityType, &l.EntityID,
			&l.Details, &l.IPAddress, &l.UserAgent, &l.CreatedAt,
			&l.Username, &l.CompanyName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, total, rows.Err()
}

// Recent devuelve las últimas n actividades con username y empresa.
func (r *ActivityLogRepo) Recent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	logs, _, err := r.List(ctx, repository.ActivityLogFilter{Limit: limit})
	return logs, err
}
