package repository

import "github.com/tu-usuario/coaching-pro/internal/domain/entity"

// BackupRepository define el puerto para registros de respaldo (solo metadatos).
type BackupRepository interface {
	Create(b *entity.Backup) error
	// List devuelve los registros con username del creador, recientes primero.
	List() ([]*entity.Backup, error)
}
