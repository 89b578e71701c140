package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	handler "github.com/krishkalaria12/chrono-snap/handlers"
	"github.com/krishkalaria12/chrono-snap/middleware"
	"go.uber.org/zap"
)

// NewApp builds the Fiber app with JSON error bodies in the same
// {error, details} shape the handlers use.
func NewApp(bodyLimitMB int) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:   "chrono-snap",
		BodyLimit: bodyLimitMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
}

func SetupRoutes(app *fiber.App, h *handler.Handler, log *zap.Logger) {
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api", middleware.RequestLogger(log))
	api.Get("/health", h.Health)
	api.Get("/time-periods", h.TimePeriods)
	api.Post("/time-travel", h.TimeTravel)

	// Media
	images := api.Group("/images")
	images.Get("/", h.ListImages)
	images.Get("/:filename", h.GetImage)

	api.Get("/transformations", h.ListTransformations)
}
