package repository

import "context"

// Tx agrupa los repositorios atados a una misma transacción.
// Lo produce el TxRunner de infraestructura.
type Tx struct {
	Companies      CompanyRepository
	Users          UserRepository
	Sessions       SessionRepository
	Systems        SystemRepository
	Measurements   MeasurementRepository
	UserSessions   UserSessionRepository
	Notifications  NotificationRepository
	DeletedSystems DeletedSystemRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn retorna nil,
// Rollback en caso contrario. Usado por las escrituras multi-fila (alta de
// empresa con siembra de sesiones, toggle en cascada, purge, snapshot+delete,
// restore) para eliminar estados parcialmente aplicados.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Tx) error) error
}
