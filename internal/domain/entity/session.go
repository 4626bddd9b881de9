package entity

import "time"

// Estados de una sesión de curriculum. No hay máquina de estados estricta:
// cualquier estado puede reasignarse a cualquier otro vía actualización directa.
const (
	SessionScheduled   = "scheduled"
	SessionCompleted   = "completed"
	SessionCancelled   = "cancelled"
	SessionRescheduled = "rescheduled"
)

// Session es una de las 24 sesiones de curriculum de una empresa, agrupadas en
// 3 fases (habilidades individuales, integración, maestría). Se siembran al dar
// de alta la empresa y solo se mutan por actualización; nunca se borran sueltas,
// solo en cascada con la empresa.
type Session struct {
	ID                 string
	CompanyID          string
	SessionNumber      int // 1..24, único por empresa
	Phase              int // 1, 2 o 3
	Theme              string
	ScheduledDate      *time.Time
	LessonContent      string
	DevelopmentContent string
	Status             string // ver constantes Session*
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PhaseForNumber calcula la fase a la que pertenece un número de sesión
// dado el tamaño de fase configurado (8 por defecto: 1-8, 9-16, 17-24).
func PhaseForNumber(sessionNumber, sessionsPerPhase int) int {
	if sessionsPerPhase <= 0 {
		return 1
	}
	return (sessionNumber-1)/sessionsPerPhase + 1
}
