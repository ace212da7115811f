package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/assettrack-console/internal/application/auth"
	"github.com/jhoicas/assettrack-console/internal/application/console/form"
	"github.com/jhoicas/assettrack-console/internal/application/console/resource"
	"github.com/jhoicas/assettrack-console/internal/application/console/workspace"
	"github.com/jhoicas/assettrack-console/internal/application/report"
	"github.com/jhoicas/assettrack-console/internal/application/service"
	"github.com/jhoicas/assettrack-console/internal/infrastructure/gateway"
	infrapdf "github.com/jhoicas/assettrack-console/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/assettrack-console/internal/interfaces/http"
	"github.com/jhoicas/assettrack-console/pkg/config"
	"github.com/jhoicas/assettrack-console/pkg/logger"
)

// Intervalo del barrido de workspaces inactivos.
const sweepInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando consola")

	gw := gateway.New(gateway.Config{BaseURL: cfg.Backend.BaseURL, Timeout: cfg.Backend.Timeout}, log)
	services := service.NewServices(gw)
	catalog := resource.NewCatalog(services)

	workspaces := workspace.NewRegistry(catalog, workspace.Options{
		IdleTimeout:         cfg.Workspace.IdleTimeout,
		PageSize:            cfg.UI.PageSize,
		Debounce:            cfg.UI.Debounce,
		StaleAfter:          cfg.UI.StaleAfter,
		NotificationTimeout: cfg.UI.NotificationTimeout,
	}, log)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go workspaces.Run(ctx, sweepInterval)

	authUC := auth.NewAuthUseCase(gw, services.Users, log)
	reportUC := report.NewReportUseCase(services.SubCategories, services.Assets, infrapdf.NewMarotoReportGenerator(cfg.App.Name))

	app := httpRouter.NewApp(cfg.App.Name, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ReportUC:   reportUC,
		Catalog:    catalog,
		Workspaces: workspaces,
		Validator:  form.NewValidator(),
		Cookies:    httpRouter.CookieConfig{Expiry: cfg.Cookie.Expiry, Secure: cfg.Cookie.Secure},
		Log:        log,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
