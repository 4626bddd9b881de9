package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
)

// SessionHandler maneja el curriculum de sesiones de una empresa.
type SessionHandler struct {
	uc *usecase.SessionUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *usecase.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// List godoc
// @Summary      Listar sesiones de curriculum
// @Tags         sessions
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.SessionResponse
// @Router       /api/sessions/{companyId} [get]
func (h *SessionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByNumber godoc
// @Summary      Obtener sesión por número
// @Tags         sessions
// @Produce      json
// @Param        companyId      path  string  true  "ID de la empresa"
// @Param        sessionNumber  path  int     true  "Número de sesión"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{companyId}/{sessionNumber} [get]
func (h *SessionHandler) GetByNumber(c *fiber.Ctx) error {
	number, err := c.ParamsInt("sessionNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de sesión inválido"})
	}
	out, err := h.uc.GetByNumber(c.Params("companyId"), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sesión de curriculum
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        companyId      path  string                    true  "ID de la empresa"
// @Param        sessionNumber  path  int                       true  "Número de sesión"
// @Param        body           body  dto.UpdateSessionRequest  true  "Registro completo"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{companyId}/{sessionNumber} [put]
func (h *SessionHandler) Update(c *fiber.Ctx) error {
	number, err := c.ParamsInt("sessionNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de sesión inválido"})
	}
	var in dto.UpdateSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !validSessionStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
	}
	out, err := h.uc.Update(c.Params("companyId"), number, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func validSessionStatus(s string) bool {
	switch s {
	case "scheduled", "completed", "cancelled", "rescheduled":
		return true
	}
	return false
}
