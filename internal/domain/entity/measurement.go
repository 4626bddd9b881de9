package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Measurement es una muestra puntual de ahorro de tiempo/costo atribuida a un
// System. Las muestras se agregan por mes en las vistas; el ROI se calcula
// sobre System.ActualCostReduction, no sobre estas filas (ver DESIGN.md).
type Measurement struct {
	ID                string
	CompanyID         string
	SystemID          string
	MeasurementDate   time.Time
	TimeReduction     decimal.Decimal // horas/día
	CostReduction     decimal.Decimal // unidades de ahorro reportadas
	MeasurementMethod string
	Notes             string
	CreatedAt         time.Time
}
