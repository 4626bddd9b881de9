package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSystemRequest entrada para registrar un sistema. El número se asigna
// en el servidor.
type CreateSystemRequest struct {
	Name                  string           `json:"name" validate:"required,min=1,max=200"`
	Purpose               string           `json:"purpose"`
	AITools               []string         `json:"ai_tools"`
	Status                string           `json:"status" validate:"omitempty,oneof=planning development testing production operation"`
	Progress              int              `json:"progress" validate:"min=0,max=100"`
	ExpectedTimeReduction *decimal.Decimal `json:"expected_time_reduction"`
	ExpectedCostReduction *decimal.Decimal `json:"expected_cost_reduction"`
	ProjectMemo           string           `json:"project_memo"`
}

// UpdateSystemRequest entrada para actualizar un sistema (reemplazo completo).
type UpdateSystemRequest struct {
	Name                  string           `json:"name" validate:"required,min=1,max=200"`
	Purpose               string           `json:"purpose"`
	AITools               []string         `json:"ai_tools"`
	Status                string           `json:"status" validate:"required,oneof=planning development testing production operation"`
	Progress              int              `json:"progress" validate:"min=0,max=100"`
	ExpectedTimeReduction *decimal.Decimal `json:"expected_time_reduction"`
	ActualTimeReduction   *decimal.Decimal `json:"actual_time_reduction"`
	ExpectedCostReduction *decimal.Decimal `json:"expected_cost_reduction"`
	ActualCostReduction   *decimal.Decimal `json:"actual_cost_reduction"`
	ProjectMemo           string           `json:"project_memo"`
}

// SystemResponse salida de un sistema.
type SystemResponse struct {
	ID                    string           `json:"id"`
	CompanyID             string           `json:"company_id"`
	SystemNumber          int              `json:"system_number"`
	Name                  string           `json:"name"`
	Purpose               string           `json:"purpose"`
	AITools               []string         `json:"ai_tools"`
	Status                string           `json:"status"`
	Progress              int              `json:"progress"`
	ExpectedTimeReduction *decimal.Decimal `json:"expected_time_reduction"`
	ActualTimeReduction   *decimal.Decimal `json:"actual_time_reduction"`
	ExpectedCostReduction *decimal.Decimal `json:"expected_cost_reduction"`
	ActualCostReduction   *decimal.Decimal `json:"actual_cost_reduction"`
	ProjectMemo           string           `json:"project_memo"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// SystemDetailResponse sistema con sus mediciones (recientes primero).
type SystemDetailResponse struct {
	SystemResponse
	Measurements []MeasurementResponse `json:"measurements"`
}

// DeletedSystemResponse snapshot de un sistema borrado.
type DeletedSystemResponse struct {
	ID           string    `json:"id"`
	SystemID     string    `json:"system_id"`
	CompanyID    string    `json:"company_id"`
	SystemNumber int       `json:"system_number"`
	Name         string    `json:"name"`
	Purpose      string    `json:"purpose"`
	AITools      []string  `json:"ai_tools"`
	ProjectMemo  string    `json:"project_memo"`
	DeletedBy    string    `json:"deleted_by"`
	DeletedAt    time.Time `json:"deleted_at"`
}
