package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/coaching-pro/internal/application/analytics"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
)

// MeasurementHandler maneja mediciones de efecto y la vista agregada.
type MeasurementHandler struct {
	uc     *usecase.MeasurementUseCase
	effect *appanalytics.EffectUseCase
}

// NewMeasurementHandler construye el handler.
func NewMeasurementHandler(uc *usecase.MeasurementUseCase, effect *appanalytics.EffectUseCase) *MeasurementHandler {
	return &MeasurementHandler{uc: uc, effect: effect}
}

// Overview godoc
// @Summary      Vista de efecto: sistemas, agregados mensuales y ROI
// @Tags         measurements
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MeasurementOverviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/measurements/{companyId} [get]
func (h *MeasurementHandler) Overview(c *fiber.Ctx) error {
	out, err := h.effect.Overview(c.Context(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar medición de efecto
// @Tags         measurements
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                        true  "ID de la empresa"
// @Param        body       body  dto.CreateMeasurementRequest  true  "Datos de la medición"
// @Success      201  {object}  dto.MeasurementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/measurements/{companyId} [post]
func (h *MeasurementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMeasurementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SystemID == "" || in.MeasurementDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "system_id y measurement_date son requeridos"})
	}
	out, err := h.uc.Create(c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
