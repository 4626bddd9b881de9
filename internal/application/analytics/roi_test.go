package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/coaching-pro/internal/application/analytics"
	"github.com/tu-usuario/coaching-pro/pkg/config"
)

var roiProgram = config.ProgramConfig{
	TotalSessions:      24,
	SessionsPerPhase:   8,
	ContractFallback:   4_000_000,
	CostUnitMultiplier: 10_000,
}

// ──────────────────────────────────────────────────────────────────────────────
// ROI = ahorro × multiplicador / contrato × 100, redondeado a 1 decimal.
// ──────────────────────────────────────────────────────────────────────────────

// 400 unidades de ahorro × 10.000 = 4.000.000 contra un contrato de 4.000.000:
// recuperó exactamente el contrato, ROI 100%.
func TestROI_ContratoRecuperadoExacto(t *testing.T) {
	got := analytics.ROI(decimal.NewFromInt(400), decimal.NewFromInt(4_000_000), roiProgram)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "ROI esperado 100, obtenido %s", got)
}

func TestROI_MitadDelContrato(t *testing.T) {
	got := analytics.ROI(decimal.NewFromInt(200), decimal.NewFromInt(4_000_000), roiProgram)
	assert.True(t, got.Equal(decimal.NewFromInt(50)), "ROI esperado 50, obtenido %s", got)
}

// Contrato en cero usa el monto por defecto del programa (4.000.000).
func TestROI_ContratoCeroUsaFallback(t *testing.T) {
	conContrato := analytics.ROI(decimal.NewFromInt(400), decimal.NewFromInt(4_000_000), roiProgram)
	sinContrato := analytics.ROI(decimal.NewFromInt(400), decimal.Zero, roiProgram)
	assert.True(t, conContrato.Equal(sinContrato),
		"con contrato cero el cálculo debe equivaler al del monto por defecto")
}

// Si el fallback también es cero, el ROI es cero: nunca división por cero.
func TestROI_SinContratoNiFallbackEsCero(t *testing.T) {
	program := roiProgram
	program.ContractFallback = 0
	got := analytics.ROI(decimal.NewFromInt(400), decimal.Zero, program)
	assert.True(t, got.IsZero(), "sin denominador el ROI debe ser 0, obtenido %s", got)
}

func TestROI_SinAhorroEsCero(t *testing.T) {
	got := analytics.ROI(decimal.Zero, decimal.NewFromInt(4_000_000), roiProgram)
	assert.True(t, got.IsZero())
}

// El resultado se redondea a un decimal.
func TestROI_RedondeoAUnDecimal(t *testing.T) {
	// 100 × 10.000 / 3.000.000 × 100 = 33.333... → 33.3
	got := analytics.ROI(decimal.NewFromInt(100), decimal.NewFromInt(3_000_000), roiProgram)
	assert.True(t, got.Equal(decimal.NewFromFloat(33.3)), "ROI esperado 33.3, obtenido %s", got)

	// 200 × 10.000 / 3.000.000 × 100 = 66.666... → 66.7 (redondeo, no truncado)
	got = analytics.ROI(decimal.NewFromInt(200), decimal.NewFromInt(3_000_000), roiProgram)
	assert.True(t, got.Equal(decimal.NewFromFloat(66.7)), "ROI esperado 66.7, obtenido %s", got)
}

// Ahorros fraccionarios no pierden precisión en la conversión a moneda.
func TestROI_AhorroFraccionario(t *testing.T) {
	// 12.5 × 10.000 = 125.000 / 4.000.000 × 100 = 3.125 → 3.1
	got := analytics.ROI(decimal.NewFromFloat(12.5), decimal.NewFromInt(4_000_000), roiProgram)
	assert.True(t, got.Equal(decimal.NewFromFloat(3.1)), "ROI esperado 3.1, obtenido %s", got)
}

func TestROI_PuedeSuperarCien(t *testing.T) {
	got := analytics.ROI(decimal.NewFromInt(1_000), decimal.NewFromInt(4_000_000), roiProgram)
	assert.True(t, got.Equal(decimal.NewFromInt(250)), "el ROI no se recorta en 100%%")
}
