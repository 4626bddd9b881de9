package entity

import "time"

// Backup registra los metadatos de un respaldo (tipo, archivo, tamaño, autor).
// El sistema no ejecuta el respaldo en sí; esto es solo registro.
type Backup struct {
	ID         string
	BackupType string
	CompanyID  *string // nil = respaldo global
	FileName   string
	FileSize   int64
	Status     string
	CreatedBy  string
	CreatedAt  time.Time

	// Denormalizado en consultas.
	CreatedByUsername string
	CompanyName       string
}
