package usecase_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

func buildExportFixture() (*usecase.ExportUseCase, *fakeCompanyRepo, *fakeSystemRepo) {
	companies := newFakeCompanyRepo()
	users := newFakeUserRepo()
	systems := newFakeSystemRepo()
	sessions := newFakeSessionRepo()
	return usecase.NewExportUseCase(companies, users, systems, sessions), companies, systems
}

// parseCSV quita el BOM y devuelve las filas parseadas con encoding/csv, es
// decir, exactamente lo que verá una hoja de cálculo.
func parseCSV(t *testing.T, content []byte) [][]string {
	t.Helper()
	require.True(t, bytes.HasPrefix(content, bomUTF8), "el archivo debe arrancar con BOM UTF-8")
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, bomUTF8)))
	rows, err := r.ReadAll()
	require.NoError(t, err, "el CSV exportado debe ser RFC 4180 parseable")
	return rows
}

func TestExport_TipoDesconocidoRetornaValidation(t *testing.T) {
	uc, _, _ := buildExportFixture()
	_, _, err := uc.Export("reportes")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExport_NombreDeArchivoConFecha(t *testing.T) {
	uc, _, _ := buildExportFixture()
	_, filename, err := uc.Export("companies")
	require.NoError(t, err)
	assert.Equal(t, "companies_"+time.Now().Format("2006-01-02")+".csv", filename)
}

// Nombres con comas, comillas y apóstrofes deben sobrevivir el viaje de ida y
// vuelta por el quoting RFC 4180.
func TestExportCompanies_QuotingRoundTrip(t *testing.T) {
	uc, companies, _ := buildExportFixture()

	employees := 120
	require.NoError(t, companies.Create(&entity.Company{
		ID:             "c-1",
		Name:           `O'Brien, "Hijos" & Cía.`,
		Industry:       "Logística",
		EmployeeCount:  &employees,
		AILevel:        entity.AILevelBeginner,
		ContactName:    "Ana\nO'Brien",
		ContactEmail:   "ana@obrien.example",
		ContractAmount: decimal.NewFromInt(5_000_000),
		PaymentStatus:  entity.PaymentPaid,
		IsActive:       true,
		CreatedAt:      time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}))

	content, _, err := uc.Export("companies")
	require.NoError(t, err)

	rows := parseCSV(t, content)
	require.Len(t, rows, 2, "encabezado + una fila")
	assert.Equal(t, "id", rows[0][0])

	row := rows[1]
	assert.Equal(t, `O'Brien, "Hijos" & Cía.`, row[1], "el nombre vuelve intacto, comas y comillas incluidas")
	assert.Equal(t, "120", row[3])
	assert.Equal(t, "Ana\nO'Brien", row[5], "los saltos de línea embebidos también sobreviven")
	assert.Equal(t, "5000000", row[7])
	assert.Equal(t, "true", row[9])
	assert.Equal(t, "2026-03-15 10:30:00", row[10])
}

// Las borradas lógicamente no se exportan.
func TestExportCompanies_ExcluyeBorradas(t *testing.T) {
	uc, companies, _ := buildExportFixture()

	now := time.Now()
	require.NoError(t, companies.Create(&entity.Company{ID: "c-1", Name: "Viva"}))
	require.NoError(t, companies.Create(&entity.Company{ID: "c-2", Name: "Borrada", DeletedAt: &now}))

	content, _, err := uc.Export("companies")
	require.NoError(t, err)

	rows := parseCSV(t, content)
	require.Len(t, rows, 2)
	assert.Equal(t, "Viva", rows[1][1])
}

func TestExportSystems_CamposOpcionalesVacios(t *testing.T) {
	uc, _, systems := buildExportFixture()

	systems.companyNames["c-1"] = "Acme"
	actual := decimal.NewFromFloat(2.5)
	require.NoError(t, systems.Create(&entity.System{
		ID: "s-1", CompanyID: "c-1", SystemNumber: 1, Name: "Con métricas",
		AITools: []string{"Claude", "GPT-4"}, Status: entity.SystemOperation,
		Progress: 90, ActualTimeReduction: &actual,
	}))
	require.NoError(t, systems.Create(&entity.System{
		ID: "s-2", CompanyID: "c-1", SystemNumber: 2, Name: "Sin métricas",
		Status: entity.SystemPlanning,
	}))

	content, _, err := uc.Export("systems")
	require.NoError(t, err)

	rows := parseCSV(t, content)
	require.Len(t, rows, 3)
	assert.Equal(t, "Claude; GPT-4", rows[1][5])
	assert.Equal(t, "2.5", rows[1][8])
	assert.Equal(t, "", rows[2][8], "métrica ausente exporta celda vacía, no cero")
	assert.Equal(t, "", rows[2][9])
}

// Un export sin filas sigue siendo un CSV válido con encabezado.
func TestExport_SinFilasSoloEncabezado(t *testing.T) {
	uc, _, _ := buildExportFixture()

	content, _, err := uc.Export("users")
	require.NoError(t, err)

	rows := parseCSV(t, content)
	require.Len(t, rows, 1)
	assert.True(t, strings.HasPrefix(rows[0][0], "id"))
}
