package repository

import (
	"time"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// SettingRepository define el puerto para la configuración clave/valor del sistema.
type SettingRepository interface {
	List() ([]*entity.SystemSetting, error)
	// Update cambia el valor de una clave existente. Devuelve domain.ErrNotFound
	// si la clave no existe.
	Update(key, value, updatedBy string, when time.Time) error
}
