package dto

import "time"

// UpdateSessionRequest entrada para actualizar una sesión de curriculum
// (reemplazo completo del registro editable).
type UpdateSessionRequest struct {
	Theme              string     `json:"theme"`
	ScheduledDate      *time.Time `json:"scheduled_date"`
	LessonContent      string     `json:"lesson_content"`
	DevelopmentContent string     `json:"development_content"`
	Status             string     `json:"status" validate:"required,oneof=scheduled completed cancelled rescheduled"`
	Notes              string     `json:"notes"`
}

// SessionResponse salida de una sesión de curriculum.
type SessionResponse struct {
	ID                 string     `json:"id"`
	CompanyID          string     `json:"company_id"`
	SessionNumber      int        `json:"session_number"`
	Phase              int        `json:"phase"`
	Theme              string     `json:"theme"`
	ScheduledDate      *time.Time `json:"scheduled_date"`
	LessonContent      string     `json:"lesson_content"`
	DevelopmentContent string     `json:"development_content"`
	Status             string     `json:"status"`
	Notes              string     `json:"notes"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// SessionStatsResponse ratio de avance del programa.
type SessionStatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}
