package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest entrada para dar de alta una empresa (admin).
// Username/Password opcionales crean la cuenta de acceso de la empresa.
type CreateCompanyRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Industry        string           `json:"industry"`
	EmployeeCount   *int             `json:"employee_count"`
	Revenue         *decimal.Decimal `json:"revenue"`
	AILevel         string           `json:"ai_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	MainChallenges  []string         `json:"main_challenges"`
	ContactName     string           `json:"contact_name"`
	ContactPosition string           `json:"contact_position"`
	ContactEmail    string           `json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string           `json:"contact_phone"`
	ContractAmount  decimal.Decimal  `json:"contract_amount"`
	PaymentStatus   string           `json:"payment_status" validate:"omitempty,oneof=pending paid partial"`
	Username        string           `json:"username" validate:"omitempty,min=1,max=100"`
	Password        string           `json:"password" validate:"omitempty,min=4"`
}

// UpdateCompanyRequest entrada para actualizar el perfil (reemplazo completo).
type UpdateCompanyRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Industry        string           `json:"industry"`
	EmployeeCount   *int             `json:"employee_count"`
	Revenue         *decimal.Decimal `json:"revenue"`
	AILevel         string           `json:"ai_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	MainChallenges  []string         `json:"main_challenges"`
	ContactName     string           `json:"contact_name"`
	ContactPosition string           `json:"contact_position"`
	ContactEmail    string           `json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string           `json:"contact_phone"`
	ContractAmount  decimal.Decimal  `json:"contract_amount"`
	PaymentStatus   string           `json:"payment_status" validate:"omitempty,oneof=pending paid partial"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Industry        string           `json:"industry"`
	EmployeeCount   *int             `json:"employee_count"`
	Revenue         *decimal.Decimal `json:"revenue"`
	AILevel         string           `json:"ai_level"`
	MainChallenges  []string         `json:"main_challenges"`
	ContactName     string           `json:"contact_name"`
	ContactPosition string           `json:"contact_position"`
	ContactEmail    string           `json:"contact_email"`
	ContactPhone    string           `json:"contact_phone"`
	ContractAmount  decimal.Decimal  `json:"contract_amount"`
	PaymentStatus   string           `json:"payment_status"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// CompanyWithCountsResponse empresa con conteos para el listado de administración.
type CompanyWithCountsResponse struct {
	CompanyResponse
	UserCount   int `json:"user_count"`
	SystemCount int `json:"system_count"`
}

// ToggleActiveRequest entrada para activar/desactivar una empresa y sus usuarios.
type ToggleActiveRequest struct {
	IsActive bool `json:"is_active"`
}
