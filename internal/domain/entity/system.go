package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un sistema (proyecto interno de desarrollo).
// Progreso y estado son campos independientes: status=production no fuerza progress=100.
const (
	SystemPlanning    = "planning"
	SystemDevelopment = "development"
	SystemTesting     = "testing"
	SystemProduction  = "production"
	SystemOperation   = "operation"
)

// System es un proyecto de desarrollo interno que la empresa construye durante
// el programa, con seguimiento de progreso y de ahorros medidos.
// SystemNumber es secuencial y único por empresa (max+1 al crear).
type System struct {
	ID                    string
	CompanyID             string
	SystemNumber          int
	Name                  string
	Purpose               string
	AITools               []string
	Status                string // ver constantes System*
	Progress              int    // 0..100
	ExpectedTimeReduction *decimal.Decimal // horas/día
	ActualTimeReduction   *decimal.Decimal
	ExpectedCostReduction *decimal.Decimal // unidades de ahorro reportadas
	ActualCostReduction   *decimal.Decimal
	ProjectMemo           string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// DeletedSystem es el snapshot de un System al momento de borrarlo, que habilita
// la restauración. Solo conserva los campos descriptivos; progreso y métricas de
// efecto se pierden junto con la identidad original.
type DeletedSystem struct {
	ID           string
	SystemID     string // id original del System borrado
	CompanyID    string
	SystemNumber int // número original, informativo; al restaurar se asigna uno nuevo
	Name         string
	Purpose      string
	AITools      []string
	ProjectMemo  string
	DeletedBy    string
	DeletedAt    time.Time
}
