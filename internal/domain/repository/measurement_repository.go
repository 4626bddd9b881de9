package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// MonthlyEffect es el agregado mensual de las mediciones de una empresa.
type MonthlyEffect struct {
	Month string // YYYY-MM
	Time  decimal.Decimal
	Cost  decimal.Decimal
}

// MeasurementRepository define el puerto de persistencia para mediciones de efecto.
type MeasurementRepository interface {
	Create(m *entity.Measurement) error
	// ListBySystem devuelve las muestras de un sistema, más recientes primero.
	ListBySystem(systemID string) ([]*entity.Measurement, error)
	// MonthlyTotals agrupa las muestras de la empresa por mes, ascendente.
	MonthlyTotals(companyID string) ([]MonthlyEffect, error)
	DeleteByCompany(companyID string) error
}
