package entity

import "time"

// Notification es un aviso dirigido a un usuario y/o empresa.
// UserID y CompanyID en nil significan difusión (visible para todos).
type Notification struct {
	ID        string
	UserID    *string
	CompanyID *string
	Title     string
	Message   string
	Type      string // info, warning, alert
	Link      string
	IsRead    bool
	CreatedAt time.Time
}
