package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrValidation      = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrSessionExpired  = errors.New("sesión expirada o inexistente")
	ErrCompanyInactive = errors.New("empresa inactiva")
)
