package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-data-ingestor/internal/ingestor"
)

var validate = validator.New()

// ingestRequest is the local trigger payload, mirroring the Lambda event.
type ingestRequest struct {
	City string `json:"city" validate:"omitempty,min=1,max=128"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. The local API
// is a thin trigger adapter: it forwards the event to the handler and relays
// the handler's envelope verbatim.
func RegisterRoutes(app *fiber.App, handler *ingestor.Handler) {
	v1 := app.Group("/api/v1")

	v1.Post("/ingest", func(c *fiber.Ctx) error {
		var req ingestRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := handler.Handle(c.Context(), ingestor.TriggerEvent{City: req.City})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(result.StatusCode).SendString(result.Body)
	})
}
