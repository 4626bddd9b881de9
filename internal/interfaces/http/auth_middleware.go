package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/coaching-pro/internal/application/auth"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
)

// Locals key para el principal autenticado.
const LocalPrincipal = "principal"

// SessionValidator resuelve el token de la cookie a un principal.
// Lo implementa auth.AuthUseCase; la interfaz permite fakes en tests.
type SessionValidator interface {
	Validate(token string) (*auth.Principal, error)
}

// RequireSession valida la cookie de sesión y deja el principal tipado en
// c.Locals. Sin cookie, token desconocido o expirado responde 401.
func RequireSession(validator SessionValidator, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
		}
		principal, err := validator.Validate(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión inválida o expirada"})
		}
		c.Locals(LocalPrincipal, *principal)
		return c.Next()
	}
}

// RequireAdmin corta con 403 si el principal no es administrador.
// Debe montarse después de RequireSession.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if !p.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol de administrador"})
		}
		return c.Next()
	}
}

// RequireCompanyAccess centraliza la regla multi-tenant: el admin accede a
// cualquier empresa, un usuario solo a la suya. param es el nombre del
// parámetro de ruta con el id de empresa.
func RequireCompanyAccess(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p.IsAdmin() {
			return c.Next()
		}
		if c.Params(param) != p.CompanyID {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a esa empresa"})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal dejado por RequireSession.
func GetPrincipal(c *fiber.Ctx) auth.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return auth.Principal{}
	}
	p, _ := v.(auth.Principal)
	return p
}
