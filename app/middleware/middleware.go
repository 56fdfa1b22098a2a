package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func SetupMiddleware(router fiber.Router) {

	router.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "*",
		AllowCredentials: true,
	}))
	router.Use(errorHandle)
	router.Use(logRequest)

}

// errorHandle is the single place handler errors become responses. Nothing
// past here sees an uncaught failure.
func errorHandle(c *fiber.Ctx) error {

	err := c.Next()
	if err == nil {
		return nil
	}

	log.Error().Err(err).Str("endpoint", c.Path()).Msg("Request failed")

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registro não encontrado"})
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func logRequest(c *fiber.Ctx) error {
	log.Info().Str("method", c.Method()).Str("endpoint", c.Path()).Msg("Request endpoint")
	return c.Next()
}
