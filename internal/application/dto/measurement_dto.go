package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMeasurementRequest entrada para registrar una medición de efecto.
type CreateMeasurementRequest struct {
	SystemID          string          `json:"system_id" validate:"required,uuid"`
	MeasurementDate   time.Time       `json:"measurement_date" validate:"required"`
	TimeReduction     decimal.Decimal `json:"time_reduction"`
	CostReduction     decimal.Decimal `json:"cost_reduction"`
	MeasurementMethod string          `json:"measurement_method"`
	Notes             string          `json:"notes"`
}

// MeasurementResponse salida de una medición.
type MeasurementResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	SystemID          string          `json:"system_id"`
	MeasurementDate   time.Time       `json:"measurement_date"`
	TimeReduction     decimal.Decimal `json:"time_reduction"`
	CostReduction     decimal.Decimal `json:"cost_reduction"`
	MeasurementMethod string          `json:"measurement_method"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
}

// MonthlyEffectResponse agregado mensual de mediciones.
type MonthlyEffectResponse struct {
	Month         string          `json:"month"` // YYYY-MM
	TimeReduction decimal.Decimal `json:"time_reduction"`
	CostReduction decimal.Decimal `json:"cost_reduction"`
}

// MeasurementOverviewResponse vista de efecto de la empresa: sistemas con sus
// ahorros, agregados mensuales y efecto total con ROI.
type MeasurementOverviewResponse struct {
	Systems     []SystemResponse        `json:"systems"`
	Monthly     []MonthlyEffectResponse `json:"monthly"`
	TotalEffect TotalEffectResponse     `json:"total_effect"`
}
