package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
)

// SystemHandler maneja los sistemas (proyectos internos) de una empresa.
type SystemHandler struct {
	uc    *usecase.SystemUseCase
	audit *usecase.AuditRecorder
}

// NewSystemHandler construye el handler.
func NewSystemHandler(uc *usecase.SystemUseCase, audit *usecase.AuditRecorder) *SystemHandler {
	return &SystemHandler{uc: uc, audit: audit}
}

// List godoc
// @Summary      Listar sistemas
// @Tags         systems
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.SystemResponse
// @Router       /api/systems/{companyId} [get]
func (h *SystemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar sistema
// @Tags         systems
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                   true  "ID de la empresa"
// @Param        body       body  dto.CreateSystemRequest  true  "Datos del sistema"
// @Success      201  {object}  dto.SystemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/systems/{companyId} [post]
func (h *SystemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSystemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	companyID := c.Params("companyId")
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, companyID, "create", "system", &out.ID,
		fiber.Map{"name": out.Name, "system_number": out.SystemNumber}, requestMeta(c))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByNumber godoc
// @Summary      Detalle de un sistema con sus mediciones
// @Tags         systems
// @Produce      json
// @Param        companyId     path  string  true  "ID de la empresa"
// @Param        systemNumber  path  int     true  "Número de sistema"
// @Success      200  {object}  dto.SystemDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/systems/{companyId}/{systemNumber} [get]
func (h *SystemHandler) GetByNumber(c *fiber.Ctx) error {
	number, err := c.ParamsInt("systemNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de sistema inválido"})
	}
	out, err := h.uc.GetByNumber(c.Params("companyId"), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sistema
// @Tags         systems
// @Accept       json
// @Produce      json
// @Param        companyId     path  string                   true  "ID de la empresa"
// @Param        systemNumber  path  int                      true  "Número de sistema"
// @Param        body          body  dto.UpdateSystemRequest  true  "Campos editables"
// @Success      200  {object}  dto.SystemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/systems/{companyId}/{systemNumber} [put]
func (h *SystemHandler) Update(c *fiber.Ctx) error {
	number, err := c.ParamsInt("systemNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de sistema inválido"})
	}
	var in dto.UpdateSystemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Progress < 0 || in.Progress > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido y progress entre 0 y 100"})
	}
	companyID := c.Params("companyId")
	out, err := h.uc.Update(companyID, number, in)
	if err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, companyID, "update", "system", &out.ID,
		fiber.Map{"system_number": out.SystemNumber}, requestMeta(c))
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar sistema (con snapshot restaurable)
// @Tags         systems
// @Produce      json
// @Param        companyId     path  string  true  "ID de la empresa"
// @Param        systemNumber  path  int     true  "Número de sistema"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/systems/{companyId}/{systemNumber} [delete]
func (h *SystemHandler) Delete(c *fiber.Ctx) error {
	number, err := c.ParamsInt("systemNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de sistema inválido"})
	}
	companyID := c.Params("companyId")
	p := GetPrincipal(c)
	if err := h.uc.Delete(c.Context(), companyID, number, p.UserID); err != nil {
		return respondError(c, err)
	}
	h.audit.Record(p.UserID, companyID, "delete", "system", nil,
		fiber.Map{"system_number": number}, requestMeta(c))
	return c.JSON(fiber.Map{"success": true})
}

// requestMeta extrae IP y user agent para el rastro de auditoría.
func requestMeta(c *fiber.Ctx) usecase.RequestMeta {
	return usecase.RequestMeta{
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}
}
