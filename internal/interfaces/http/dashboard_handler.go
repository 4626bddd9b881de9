package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/coaching-pro/internal/application/analytics"
)

// DashboardHandler maneja el resumen del programa de una empresa.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Dashboard del programa de una empresa
// @Tags         dashboard
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.DashboardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/{companyId} [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
