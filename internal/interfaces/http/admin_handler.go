package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// AdminHandler maneja el resto del panel de administración: estadísticas,
// auditoría, sesiones activas, sistemas borrados, configuración y respaldos.
type AdminHandler struct {
	admin   *usecase.AdminUseCase
	systems *usecase.SystemUseCase
	audit   *usecase.AuditRecorder
}

// NewAdminHandler construye el handler.
func NewAdminHandler(admin *usecase.AdminUseCase, systems *usecase.SystemUseCase, audit *usecase.AuditRecorder) *AdminHandler {
	return &AdminHandler{admin: admin, systems: systems, audit: audit}
}

// Stats godoc
// @Summary      Panel de estadísticas globales
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.admin.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ActivityLogs godoc
// @Summary      Auditoría paginada con filtros
// @Tags         admin
// @Produce      json
// @Param        page        query  int     false  "Página (desde 1)"  default(1)
// @Param        limit       query  int     false  "Filas por página"  default(50)
// @Param        company_id  query  string  false  "Filtro por empresa"
// @Param        action      query  string  false  "Filtro por acción"
// @Param        entity_type query  string  false  "Filtro por entidad"
// @Success      200  {object}  dto.ActivityLogListResponse
// @Router       /api/admin/activity-logs [get]
func (h *AdminHandler) ActivityLogs(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	filter := repository.ActivityLogFilter{
		CompanyID:  c.Query("company_id"),
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
	out, err := h.admin.ActivityLogs(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ActiveSessions godoc
// @Summary      Sesiones de autenticación vigentes
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.ActiveSessionResponse
// @Router       /api/admin/sessions [get]
func (h *AdminHandler) ActiveSessions(c *fiber.Ctx) error {
	out, err := h.admin.ActiveSessions()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RevokeSession godoc
// @Summary      Revocar una sesión puntual
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Token de sesión"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/sessions/{id} [delete]
func (h *AdminHandler) RevokeSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.admin.RevokeSession(id); err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, p.CompanyID, "revoke_session", "user_session", &id, nil, requestMeta(c))
	return c.JSON(fiber.Map{"success": true})
}

// RevokeUserSessions godoc
// @Summary      Revocar todas las sesiones de un usuario
// @Tags         admin
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {object}  map[string]bool
// @Router       /api/admin/sessions/user/{userId} [delete]
func (h *AdminHandler) RevokeUserSessions(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := h.admin.RevokeUserSessions(userID); err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, p.CompanyID, "revoke_user_sessions", "user_session", &userID, nil, requestMeta(c))
	return c.JSON(fiber.Map{"success": true})
}

// ListDeletedSystems godoc
// @Summary      Snapshots de sistemas borrados
// @Tags         admin
// @Produce      json
// @Param        company_id  query  string  false  "Filtro por empresa"
// @Success      200  {array}  dto.DeletedSystemResponse
// @Router       /api/admin/deleted-systems [get]
func (h *AdminHandler) ListDeletedSystems(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	out, err := h.systems.ListDeleted(c.Context(), c.Query("company_id"), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RestoreSystem godoc
// @Summary      Restaurar un sistema borrado (id y número frescos)
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID del snapshot"
// @Success      200  {object}  dto.SystemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/deleted-systems/{id}/restore [post]
func (h *AdminHandler) RestoreSystem(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.systems.Restore(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	p := GetPrincipal(c)
	h.audit.Record(p.UserID, out.CompanyID, "restore", "system", &out.ID,
		fiber.Map{"snapshot_id": id, "system_number": out.SystemNumber}, requestMeta(c))
	return c.JSON(out)
}

// Settings godoc
// @Summary      Listar configuración del sistema
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.SettingResponse
// @Router       /api/admin/settings [get]
func (h *AdminHandler) Settings(c *fiber.Ctx) error {
	out, err := h.admin.Settings()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateSetting godoc
// @Summary      Actualizar una clave de configuración
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        key   path  string                    true  "Clave"
// @Param        body  body  dto.UpdateSettingRequest  true  "Nuevo valor"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/settings/{key} [put]
func (h *AdminHandler) UpdateSetting(c *fiber.Ctx) error {
	var in dto.UpdateSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	key := c.Params("key")
	p := GetPrincipal(c)
	if err := h.admin.UpdateSetting(key, in.Value, p.UserID); err != nil {
		return respondError(c, err)
	}
	h.audit.Record(p.UserID, p.CompanyID, "update", "setting", &key,
		fiber.Map{"value": in.Value}, requestMeta(c))
	return c.JSON(fiber.Map{"success": true})
}

// Backups godoc
// @Summary      Listar registros de respaldo
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.BackupResponse
// @Router       /api/admin/backups [get]
func (h *AdminHandler) Backups(c *fiber.Ctx) error {
	out, err := h.admin.Backups()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateBackup godoc
// @Summary      Registrar metadatos de un respaldo
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBackupRequest  true  "Metadatos"
// @Success      201   {object}  dto.BackupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/backups [post]
func (h *AdminHandler) CreateBackup(c *fiber.Ctx) error {
	var in dto.CreateBackupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BackupType == "" || in.FileName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "backup_type y file_name son requeridos"})
	}
	p := GetPrincipal(c)
	out, err := h.admin.CreateBackup(in, p.UserID)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.Record(p.UserID, p.CompanyID, "create", "backup", &out.ID,
		fiber.Map{"file_name": out.FileName}, requestMeta(c))
	return c.Status(fiber.StatusCreated).JSON(out)
}
