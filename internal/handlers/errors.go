package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/iahmedraza4/translation-agent/internal/models"
)

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// PageErrorHandler renders an oversized form post back onto the page's error
// region. Everything else goes through ErrorHandler.
func (h *TranslateHandler) PageErrorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) && e.Code == fiber.StatusRequestEntityTooLarge &&
		c.Method() == fiber.MethodPost && c.Path() == "/translate" {
		data := h.page("")
		data["Error"] = models.Failure(fmt.Errorf("input exceeds the %d MB limit", MaxBodyBytes>>20)).Display()
		return c.Status(fiber.StatusRequestEntityTooLarge).Render("index", data)
	}
	return ErrorHandler(c, err)
}
