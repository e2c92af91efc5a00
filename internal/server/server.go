package server

import (
	"mentoria-be/internal/bootstrap"
	"mentoria-be/internal/config"
	"mentoria-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Stripe-Signature",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse[any]("ok", nil))
	})

	// Routes
	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", "Server is running on http://localhost:"+s.cfg.App.Port, nil)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")
	jwt := serverutils.JwtMiddleware(cfg.App.JwtSecret)

	c.PaymentController.RegisterRoutes(api, jwt)
	c.MeetingController.RegisterRoutes(api, jwt)
	c.ComplaintController.RegisterRoutes(api, jwt)

	c.MentorController.RegisterRoutes(api, jwt)
	c.SlotController.RegisterRoutes(api, jwt)
	c.PlanController.RegisterRoutes(api, jwt)

	c.AdminController.RegisterRoutes(api, jwt)
	c.ChatbotController.RegisterRoutes(api, jwt)

	c.NotificationHandler.RegisterRoutes(api, jwt)
}
