package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// utf8BOM al inicio del archivo para que hojas de cálculo detecten UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportUseCase genera exports CSV (RFC 4180, BOM UTF-8) de los datasets
// administrativos: companies, users, systems y sessions.
type ExportUseCase struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	systems   repository.SystemRepository
	sessions  repository.SessionRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(companies repository.CompanyRepository, users repository.UserRepository, systems repository.SystemRepository, sessions repository.SessionRepository) *ExportUseCase {
	return &ExportUseCase{companies: companies, users: users, systems: systems, sessions: sessions}
}

// Export genera el CSV del dataset pedido. Tipo desconocido -> ErrValidation.
// Devuelve el contenido y el nombre de archivo sugerido (con fecha).
func (uc *ExportUseCase) Export(exportType string) ([]byte, string, error) {
	var header []string
	var rows [][]string

	switch exportType {
	case "companies":
		list, err := uc.companies.ListActive()
		if err != nil {
			return nil, "", err
		}
		header = []string{"id", "name", "industry", "employee_count", "ai_level",
			"contact_name", "contact_email", "contract_amount", "payment_status",
			"is_active", "created_at"}
		for _, c := range list {
			rows = append(rows, []string{
				c.ID, c.Name, c.Industry, intPtrString(c.EmployeeCount), c.AILevel,
				c.ContactName, c.ContactEmail, c.ContractAmount.String(), c.PaymentStatus,
				strconv.FormatBool(c.IsActive), formatTime(c.CreatedAt),
			})
		}
	case "users":
		list, err := uc.users.ListAllWithCompany()
		if err != nil {
			return nil, "", err
		}
		header = []string{"id", "username", "company", "role", "is_active", "last_login", "created_at"}
		for _, u := range list {
			lastLogin := ""
			if u.LastLogin != nil {
				lastLogin = formatTime(*u.LastLogin)
			}
			rows = append(rows, []string{
				u.ID, u.Username, u.CompanyName, u.Role,
				strconv.FormatBool(u.IsActive), lastLogin, formatTime(u.CreatedAt),
			})
		}
	case "systems":
		list, err := uc.systems.ListAllWithCompany()
		if err != nil {
			return nil, "", err
		}
		header = []string{"id", "company", "system_number", "name", "purpose", "ai_tools",
			"status", "progress", "actual_time_reduction", "actual_cost_reduction", "created_at"}
		for _, s := range list {
			rows = append(rows, []string{
				s.ID, s.CompanyName, strconv.Itoa(s.SystemNumber), s.Name, s.Purpose,
				strings.Join(s.AITools, "; "), s.Status, strconv.Itoa(s.Progress),
				decimalPtrString(s.ActualTimeReduction), decimalPtrString(s.ActualCostReduction),
				formatTime(s.CreatedAt),
			})
		}
	case "sessions":
		list, err := uc.sessions.ListAllWithCompany()
		if err != nil {
			return nil, "", err
		}
		header = []string{"id", "company", "session_number", "phase", "theme",
			"scheduled_date", "status", "notes"}
		for _, s := range list {
			scheduled := ""
			if s.ScheduledDate != nil {
				scheduled = formatTime(*s.ScheduledDate)
			}
			rows = append(rows, []string{
				s.ID, s.CompanyName, strconv.Itoa(s.SessionNumber), strconv.Itoa(s.Phase),
				s.Theme, scheduled, s.Status, s.Notes,
			})
		}
	default:
		return nil, "", domain.ErrValidation
	}

	content, err := writeCSV(header, rows)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s_%s.csv", exportType, time.Now().Format("2006-01-02"))
	return content, filename, nil
}

// writeCSV serializa con encoding/csv (quoting RFC 4180) y antepone el BOM.
func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func intPtrString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func decimalPtrString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
