package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
)

// AdminCompanyHandler maneja el ciclo de vida de empresas y usuarios desde el
// panel de administración, más export e import masivo.
type AdminCompanyHandler struct {
	companies *usecase.CompanyUseCase
	users     *usecase.UserUseCase
	export    *usecase.ExportUseCase
	audit     *usecase.AuditRecorder
}

// NewAdminCompanyHandler construye el handler.
func NewAdminCompanyHandler(companies *usecase.CompanyUseCase, users *usecase.UserUseCase, export *usecase.ExportUseCase, audit *usecase.AuditRecorder) *AdminCompanyHandler {
	return &AdminCompanyHandler{companies: companies, users: users, export: export, audit: audit}
}

// ListCompanies godoc
// @Summary      Listar empresas con conteos
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.CompanyWithCountsResponse
// @Router       /api/admin/companies [get]
func (h *AdminCompanyHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.companies.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateCompany godoc
// @Summary      Dar de alta una empresa (siembra el curriculum completo)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/companies [post]
func (h *AdminCompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.companies.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, out.ID, "create", "company", &out.ID,
		fiber.Map{"name": out.Name}, requestMeta(c))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SoftDeleteCompany godoc
// @Summary      Baja lógica de empresa (usuarios desactivados, logs preservados)
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{id} [delete]
func (h *AdminCompanyHandler) SoftDeleteCompany(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.companies.SoftDelete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, id, "soft_delete", "company", &id, nil, requestMeta(c))
	return c.JSON(fiber.Map{"success": true})
}

// PurgeCompany godoc
// @Summary      Borrado físico en cascada (preserva activity_logs)
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{id}/purge [delete]
func (h *AdminCompanyHandler) PurgeCompany(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.companies.Purge(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, id, "purge", "company", &id, nil, requestMeta(c))
	return c.JSON(fiber.Map{"success": true})
}

// ToggleCompanyActive godoc
// @Summary      Activar/desactivar empresa y sus usuarios
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la empresa"
// @Param        body  body  dto.ToggleActiveRequest  true  "Estado deseado"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{id}/toggle-active [put]
func (h *AdminCompanyHandler) ToggleCompanyActive(c *fiber.Ctx) error {
	var in dto.ToggleActiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	if err := h.companies.ToggleActive(c.Context(), id, in.IsActive); err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, id, "toggle_active", "company", &id,
		fiber.Map{"is_active": in.IsActive}, requestMeta(c))
	return c.JSON(fiber.Map{"success": true})
}

// ListUsers godoc
// @Summary      Listar todos los usuarios con su empresa
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.UserWithCompanyResponse
// @Router       /api/admin/users [get]
func (h *AdminCompanyHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.users.ListAllWithCompany()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ImportUsers godoc
// @Summary      Alta masiva de usuarios (las filas fallidas no abortan)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportUsersRequest  true  "Filas a importar"
// @Success      200   {object}  dto.ImportUsersResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/import/users [post]
func (h *AdminCompanyHandler) ImportUsers(c *fiber.Ctx) error {
	var in dto.ImportUsersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Users) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "users no puede estar vacío"})
	}
	out := h.users.Import(in)
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, p.CompanyID, "import", "user", nil,
		fiber.Map{"success": out.Success, "failed": out.Failed}, requestMeta(c))
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar dataset a CSV (BOM UTF-8)
// @Tags         admin
// @Produce      text/csv
// @Param        type  path  string  true  "companies | users | systems | sessions"
// @Success      200   {string}  string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/export/{type} [get]
func (h *AdminCompanyHandler) Export(c *fiber.Ctx) error {
	exportType := c.Params("type")
	content, filename, err := h.export.Export(exportType)
	if err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, p.CompanyID, "export", exportType, nil, nil, requestMeta(c))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(content)
}
