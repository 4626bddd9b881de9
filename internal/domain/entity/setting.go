package entity

import "time"

// SystemSetting es un par clave/valor de configuración administrable.
// La clave es única.
type SystemSetting struct {
	Key       string
	Value     string
	UpdatedBy string
	UpdatedAt time.Time
}
