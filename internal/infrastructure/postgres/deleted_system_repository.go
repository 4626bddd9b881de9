package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.DeletedSystemRepository = (*DeletedSystemRepo)(nil)

// DeletedSystemRepo implementación del puerto DeletedSystemRepository sobre PostgreSQL.
type DeletedSystemRepo struct {
	q Querier
}

// NewDeletedSystemRepository construye el adaptador para snapshots de sistemas borrados.
func NewDeletedSystemRepository(q Querier) *DeletedSystemRepo {
	return &DeletedSystemRepo{q: q}
}

// Create persiste el snapshot tomado antes de borrar un sistema.
func (r *DeletedSystemRepo) Create(snapshot *entity.DeletedSystem) error {
	query := `
		INSERT INTO deleted_systems (id, system_id, company_id, system_number, name, purpose,
			ai_tools, project_memo, deleted_by, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		snapshot.ID, snapshot.SystemID, snapshot.CompanyID, snapshot.SystemNumber,
		snapshot.Name, snapshot.Purpose, marshalList(snapshot.AITools),
		snapshot.ProjectMemo, snapshot.DeletedBy, snapshot.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deleted system: %w", err)
	}
	return nil
}

// GetByID obtiene un snapshot por ID.
func (r *DeletedSystemRepo) GetByID(id string) (*entity.DeletedSystem, error) {
	query := `
		SELECT id, system_id, company_id, system_number, name, purpose, ai_tools,
			project_memo, deleted_by, deleted_at
		FROM deleted_systems WHERE id = $1`
	var d entity.DeletedSystem
	var tools []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.SystemID, &d.CompanyID, &d.SystemNumber, &d.Name, &d.Purpose,
		&tools, &d.ProjectMemo, &d.DeletedBy, &d.DeletedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deleted system: %w", err)
	}
	d.AITools = unmarshalList(tools)
	return &d, nil
}

// List devuelve snapshots recientes primero, opcionalmente filtrados por empresa.
func (r *DeletedSystemRepo) List(ctx context.Context, companyID string, limit int) ([]*entity.DeletedSystem, error) {
	builder := sq.Select(
		"id", "system_id", "company_id", "system_number", "name", "purpose",
		"ai_tools", "project_memo", "deleted_by", "deleted_at",
	).
		From("deleted_systems").
		OrderBy("deleted_at DESC").
		PlaceholderFormat(sq.Dollar)
	if companyID != "" {
		builder = builder.Where(sq.Eq{"company_id": companyID})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deleted systems query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deleted systems: %w", err)
	}
	defer rows.Close()

	var list []*entity.DeletedSystem
	for rows.Next() {
		var d entity.DeletedSystem
		var tools []byte
		if err := rows.Scan(
			&d.ID, &d.SystemID, &d.CompanyID, &d.SystemNumber, &d.Name, &d.Purpose,
			&tools, &d.ProjectMemo, &d.DeletedBy, &d.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan deleted system: %w", err)
		}
		d.AITools = unmarshalList(tools)
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete remueve el snapshot (tras restaurar).
func (r *DeletedSystemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM deleted_systems WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deleted system: %w", err)
	}
	return nil
}
