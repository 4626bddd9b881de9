package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/coaching-pro/internal/application/analytics"
	"github.com/tu-usuario/coaching-pro/internal/application/auth"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
	"github.com/tu-usuario/coaching-pro/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionCfg config.SessionConfig

	AuthUC         *auth.AuthUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	EffectUC       *appanalytics.EffectUseCase
	CompanyUC      *usecase.CompanyUseCase
	SessionUC      *usecase.SessionUseCase
	SystemUC       *usecase.SystemUseCase
	MeasurementUC  *usecase.MeasurementUseCase
	UserUC         *usecase.UserUseCase
	AdminUC        *usecase.AdminUseCase
	ExportUC       *usecase.ExportUseCase
	NotificationUC *usecase.NotificationUseCase
	Audit          *usecase.AuditRecorder
}

// Router registra las rutas de la API.
// El orden importa: /api/auth queda antes del RequireSession; todo lo demás
// bajo /api exige sesión, y /api/admin además exige rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionCfg)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Resto de /api: sesión obligatoria
	api.Use(RequireSession(deps.AuthUC, deps.SessionCfg.CookieName))

	// Dashboard del tenant
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/:companyId", RequireCompanyAccess("companyId"), dashboardHandler.GetSummary)

	// Perfil de empresa
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := api.Group("/companies/:id", RequireCompanyAccess("id"))
	companies.Get("/", companyHandler.GetByID)
	companies.Put("/", companyHandler.Update)

	// Curriculum de sesiones
	sessionHandler := NewSessionHandler(deps.SessionUC)
	sessions := api.Group("/sessions/:companyId", RequireCompanyAccess("companyId"))
	sessions.Get("/", sessionHandler.List)
	sessions.Get("/:sessionNumber", sessionHandler.GetByNumber)
	sessions.Put("/:sessionNumber", sessionHandler.Update)

	// Sistemas
	systemHandler := NewSystemHandler(deps.SystemUC, deps.Audit)
	systems := api.Group("/systems/:companyId", RequireCompanyAccess("companyId"))
	systems.Get("/", systemHandler.List)
	systems.Post("/", systemHandler.Create)
	systems.Get("/:systemNumber", systemHandler.GetByNumber)
	systems.Put("/:systemNumber", systemHandler.Update)
	systems.Delete("/:systemNumber", systemHandler.Delete)

	// Mediciones de efecto
	measurementHandler := NewMeasurementHandler(deps.MeasurementUC, deps.EffectUC)
	measurements := api.Group("/measurements/:companyId", RequireCompanyAccess("companyId"))
	measurements.Get("/", measurementHandler.Overview)
	measurements.Post("/", measurementHandler.Create)

	// Notificaciones del usuario autenticado
	notificationHandler := NewNotificationHandler(deps.NotificationUC, deps.Audit)
	api.Get("/notifications", notificationHandler.List)
	api.Put("/notifications/read-all", notificationHandler.MarkAllRead)
	api.Put("/notifications/:id/read", notificationHandler.MarkRead)

	// Panel de administración
	admin := api.Group("/admin", RequireAdmin())

	adminCompanyHandler := NewAdminCompanyHandler(deps.CompanyUC, deps.UserUC, deps.ExportUC, deps.Audit)
	admin.Get("/companies", adminCompanyHandler.ListCompanies)
	admin.Post("/companies", adminCompanyHandler.CreateCompany)
	admin.Delete("/companies/:id", adminCompanyHandler.SoftDeleteCompany)
	admin.Delete("/companies/:id/purge", adminCompanyHandler.PurgeCompany)
	admin.Put("/companies/:id/toggle-active", adminCompanyHandler.ToggleCompanyActive)
	admin.Get("/users", adminCompanyHandler.ListUsers)
	admin.Post("/import/users", adminCompanyHandler.ImportUsers)
	admin.Get("/export/:type", adminCompanyHandler.Export)

	adminHandler := NewAdminHandler(deps.AdminUC, deps.SystemUC, deps.Audit)
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/activity-logs", adminHandler.ActivityLogs)
	admin.Get("/sessions", adminHandler.ActiveSessions)
	admin.Delete("/sessions/user/:userId", adminHandler.RevokeUserSessions)
	admin.Delete("/sessions/:id", adminHandler.RevokeSession)
	admin.Get("/deleted-systems", adminHandler.ListDeletedSystems)
	admin.Post("/deleted-systems/:id/restore", adminHandler.RestoreSystem)
	admin.Get("/settings", adminHandler.Settings)
	admin.Put("/settings/:key", adminHandler.UpdateSetting)
	admin.Get("/backups", adminHandler.Backups)
	admin.Post("/backups", adminHandler.CreateBackup)
	admin.Post("/notifications", notificationHandler.Create)
}
