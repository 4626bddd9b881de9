package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/tu-usuario/coaching-pro/internal/application/analytics"
	"github.com/tu-usuario/coaching-pro/internal/application/auth"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
	"github.com/tu-usuario/coaching-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/coaching-pro/internal/interfaces/http"
	"github.com/tu-usuario/coaching-pro/pkg/config"
	"github.com/tu-usuario/coaching-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	userSessionRepo := postgres.NewUserSessionRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	systemRepo := postgres.NewSystemRepository(pool)
	measurementRepo := postgres.NewMeasurementRepository(pool)
	deletedSystemRepo := postgres.NewDeletedSystemRepository(pool)
	activityLogRepo := postgres.NewActivityLogRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	backupRepo := postgres.NewBackupRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, userSessionRepo, cfg.Session, log)
	audit := usecase.NewAuditRecorder(activityLogRepo, log)

	companyUC := usecase.NewCompanyUseCase(companyRepo, txRunner, cfg.Program)
	sessionUC := usecase.NewSessionUseCase(sessionRepo)
	systemUC := usecase.NewSystemUseCase(systemRepo, measurementRepo, deletedSystemRepo, txRunner)
	measurementUC := usecase.NewMeasurementUseCase(measurementRepo, systemRepo)
	userUC := usecase.NewUserUseCase(userRepo, companyRepo)
	adminUC := usecase.NewAdminUseCase(statsRepo, activityLogRepo, userSessionRepo, settingRepo, backupRepo)
	exportUC := usecase.NewExportUseCase(companyRepo, userRepo, systemRepo, sessionRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)

	dashboardUC := appanalytics.NewDashboardUseCase(companyRepo, sessionRepo, systemRepo, cfg.Program)
	effectUC := appanalytics.NewEffectUseCase(companyRepo, systemRepo, measurementRepo, cfg.Program)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// La sesión viaja en cookie, así que el front necesita credenciales.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Coaching Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionCfg:     cfg.Session,
		AuthUC:         authUC,
		DashboardUC:    dashboardUC,
		EffectUC:       effectUC,
		CompanyUC:      companyUC,
		SessionUC:      sessionUC,
		SystemUC:       systemUC,
		MeasurementUC:  measurementUC,
		UserUC:         userUC,
		AdminUC:        adminUC,
		ExportUC:       exportUC,
		NotificationUC: notificationUC,
		Audit:          audit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
