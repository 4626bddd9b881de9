package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de madurez en IA de una empresa cliente.
const (
	AILevelBeginner     = "beginner"
	AILevelIntermediate = "intermediate"
	AILevelAdvanced     = "advanced"
)

// Estados de pago del contrato.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentPartial = "partial"
)

// Company representa una empresa cliente inscrita en el programa de acompañamiento (tenant).
// El borrado es lógico: DeletedAt marca la fila sin eliminarla, preservando el historial.
type Company struct {
	ID              string
	Name            string
	Industry        string
	EmployeeCount   *int
	Revenue         *decimal.Decimal
	AILevel         string // ver constantes AILevel*
	MainChallenges  []string
	ContactName     string
	ContactPosition string
	ContactEmail    string
	ContactPhone    string
	ContractAmount  decimal.Decimal // monto del contrato en moneda base, denominador del ROI
	PaymentStatus   string          // ver constantes Payment*
	IsActive        bool
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsDeleted informa si la empresa fue dada de baja lógicamente.
func (c *Company) IsDeleted() bool {
	return c.DeletedAt != nil
}
