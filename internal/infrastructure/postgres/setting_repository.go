package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación del puerto SettingRepository sobre PostgreSQL.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador para la configuración clave/valor.
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// List devuelve todas las claves ordenadas alfabéticamente.
func (r *SettingRepo) List() ([]*entity.SystemSetting, error) {
	query := `SELECT key, value, updated_by, updated_at FROM system_settings ORDER BY key`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var list []*entity.SystemSetting
	for rows.Next() {
		var s entity.SystemSetting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedBy, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update cambia el valor de una clave existente. Clave desconocida -> domain.ErrNotFound.
func (r *SettingRepo) Update(key, value, updatedBy string, when time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE system_settings SET value = $2, updated_by = $3, updated_at = $4 WHERE key = $1`,
		key, value, updatedBy, when)
	if err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
