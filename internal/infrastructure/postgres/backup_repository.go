package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.BackupRepository = (*BackupRepo)(nil)

// BackupRepo implementación del puerto BackupRepository sobre PostgreSQL.
type BackupRepo struct {
	q Querier
}

// NewBackupRepository construye el adaptador para registros de respaldo.
func NewBackupRepository(q Querier) *BackupRepo {
	return &BackupRepo{q: q}
}

// Create persiste los metadatos de un respaldo.
func (r *BackupRepo) Create(b *entity.Backup) error {
	query := `
		INSERT INTO backups (id, backup_type, company_id, file_name, file_size, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.BackupType, b.CompanyID, b.FileName, b.FileSize, b.Status, b.CreatedBy, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert backup: %w", err)
	}
	return nil
}

// List devuelve los registros con username del creador, recientes primero.
func (r *BackupRepo) List() ([]*entity.Backup, error) {
	query := `
		SELECT b.id, b.backup_type, b.company_id, b.file_name, b.file_size, b.status,
			b.created_by, b.created_at,
			COALESCE(u.username, ''), COALESCE(c.name, '')
		FROM backups b
		LEFT JOIN users u ON u.id = b.created_by
		LEFT JOIN companies c ON c.id = b.company_id
		ORDER BY b.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	defer rows.Close()

	var list []*entity.Backup
	for rows.Next() {
		var b entity.Backup
		if err := rows.Scan(
			&b.ID, &b.BackupType, &b.CompanyID, &b.FileName, &b.FileSize, &b.Status,
			&b.CreatedBy, &b.CreatedAt,
			&b.CreatedByUsername, &b.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan backup: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
