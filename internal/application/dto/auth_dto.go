package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required"`
}

// SessionUserResponse usuario autenticado (sin hash).
type SessionUserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}

// LoginResponse salida de login exitoso. El token viaja solo en la cookie.
type LoginResponse struct {
	User SessionUserResponse `json:"user"`
}

// SessionStatusResponse salida de GET /api/auth/session.
type SessionStatusResponse struct {
	Authenticated bool                 `json:"authenticated"`
	User          *SessionUserResponse `json:"user,omitempty"`
}
