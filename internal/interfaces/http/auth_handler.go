package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/coaching-pro/internal/application/auth"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/pkg/config"
)

// AuthHandler maneja login, logout y el estado de la sesión.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	cfg config.SessionConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username y password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, token, err := h.uc.Login(in)
	if err != nil {
		// Mensaje único: no se distingue usuario inexistente de password malo.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "BAD_CREDENTIALS", Message: "credenciales inválidas"})
	}
	c.Cookie(h.sessionCookie(token, time.Now().Add(h.uc.TTL())))
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Cookies(h.cfg.CookieName)); err != nil {
		return respondError(c, err)
	}
	// Cookie vencida en el pasado para que el browser la descarte.
	c.Cookie(h.sessionCookie("", time.Now().Add(-time.Hour)))
	return c.JSON(fiber.Map{"success": true})
}

// Session godoc
// @Summary      Estado de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionStatusResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	principal, err := h.uc.Validate(c.Cookies(h.cfg.CookieName))
	if err != nil {
		return c.JSON(dto.SessionStatusResponse{Authenticated: false})
	}
	return c.JSON(dto.SessionStatusResponse{
		Authenticated: true,
		User: &dto.SessionUserResponse{
			ID:        principal.UserID,
			Username:  principal.Username,
			Role:      principal.Role,
			CompanyID: principal.CompanyID,
		},
	})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    value,
		Expires:  expires,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
