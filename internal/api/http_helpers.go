package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jkleiven/repwise/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiValidationError(c *fiber.Ctx, fieldErrors services.ValidationErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fieldErrors,
	})
}
