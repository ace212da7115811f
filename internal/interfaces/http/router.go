package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/assettrack-console/internal/application/auth"
	"github.com/jhoicas/assettrack-console/internal/application/console/form"
	"github.com/jhoicas/assettrack-console/internal/application/console/resource"
	"github.com/jhoicas/assettrack-console/internal/application/console/workspace"
	"github.com/jhoicas/assettrack-console/internal/application/report"
	"github.com/jhoicas/assettrack-console/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ReportUC   *report.ReportUseCase
	Catalog    *resource.Catalog
	Workspaces *workspace.Registry
	Validator  *form.Validator
	Cookies    CookieConfig
	Log        *logger.Logger
}

// NewApp crea la aplicación Fiber con las vistas embebidas, recover y el log de peticiones.
func NewApp(appName string, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      appName,
		Views:        NewViewEngine(),
		ErrorHandler: ErrorHandler(log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log.Named("http")))
	return app
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	validator := deps.Validator
	if validator == nil {
		validator = form.NewValidator()
	}
	b := base{registry: deps.Workspaces, log: log}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": c.App().Config().AppName})
	})

	// Público
	authHandler := NewAuthHandler(deps.AuthUC, deps.Workspaces, validator, deps.Cookies)
	app.Get("/", authHandler.SignInPage)
	app.Post("/", authHandler.SignIn)
	app.Get("/create-account", authHandler.SignUpPage)
	app.Post("/create-account", authHandler.SignUp)
	app.Get("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie access_token)
	dashboard := app.Group("/dashboard", AuthMiddleware(deps.AuthUC, deps.Workspaces, deps.Cookies, log))

	dashboardHandler := NewDashboardHandler(b)
	dashboard.Get("/", dashboardHandler.Dashboard)
	dashboard.Get("/notification", dashboardHandler.Notification)
	dashboard.Post("/notification/dismiss", dashboardHandler.DismissNotification)

	// Exportaciones: registradas antes que las rutas con :resource/:id
	exportHandler := NewExportHandler(deps.ReportUC, b)
	dashboard.Get("/sub-categories/export", exportHandler.SubCategoriesCSV)
	dashboard.Get("/assets/report", exportHandler.AssetReport)

	resourceHandler := NewResourceHandler(deps.Catalog, deps.Workspaces, b)
	guard := resourceHandler.RequireResourceRole()
	resources := dashboard.Group("/:resource")
	resources.Get("/", guard, resourceHandler.List)
	resources.Post("/search", guard, resourceHandler.Search)
	resources.Post("/cancel", guard, resourceHandler.Cancel)
	resources.Get("/new", guard, resourceHandler.New)
	resources.Post("/", guard, resourceHandler.Create)
	resources.Get("/:id/edit", guard, resourceHandler.Edit)
	resources.Get("/:id/delete", guard, resourceHandler.DeleteDialog)
	resources.Post("/:id/delete", guard, resourceHandler.Delete)
	resources.Post("/:id", guard, resourceHandler.Update)
}
