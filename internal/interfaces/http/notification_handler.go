package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
)

// NotificationHandler maneja las notificaciones visibles para el usuario
// autenticado y la creación desde el panel admin.
type NotificationHandler struct {
	uc    *usecase.NotificationUseCase
	audit *usecase.AuditRecorder
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase, audit *usecase.AuditRecorder) *NotificationHandler {
	return &NotificationHandler{uc: uc, audit: audit}
}

// List godoc
// @Summary      Notificaciones visibles para el usuario autenticado
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	out, err := h.uc.ListVisible(p.UserID, p.CompanyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear notificación (dirigida o de difusión)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "Notificación"
// @Success      201   {object}  dto.NotificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/notifications [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y message son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, p.CompanyID, "create", "notification", &out.ID,
		fiber.Map{"title": out.Title}, requestMeta(c))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MarkRead godoc
// @Summary      Marcar una notificación como leída
// @Tags         notifications
// @Produce      json
// @Param        id  path  string  true  "ID de la notificación"
// @Success      200  {object}  map[string]bool
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := h.uc.MarkRead(c.Params("id"), p.UserID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// MarkAllRead godoc
// @Summary      Marcar todas las notificaciones como leídas
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := h.uc.MarkAllRead(p.UserID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
