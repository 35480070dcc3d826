package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/iahmedraza4/translation-agent/internal/models"
	"github.com/iahmedraza4/translation-agent/utils"
)

const EmptyInputWarning = "Please enter some text to translate."

// MaxBodyBytes caps a single request body, form or JSON.
const MaxBodyBytes = 4 * 1024 * 1024

type Translator interface {
	Translate(ctx context.Context, text string) models.TranslationResult
}

type TranslateHandler struct {
	translator Translator
	model      string
	language   string
}

// NewTranslateHandler builds the handler. language is the display name of
// the target language shown on the page.
func NewTranslateHandler(t Translator, model, language string) *TranslateHandler {
	return &TranslateHandler{translator: t, model: model, language: language}
}

func (h *TranslateHandler) page(input string) fiber.Map {
	return fiber.Map{
		"Title":   "Translation Agent",
		"Tagline": fmt.Sprintf("This is the best AI Agent for translating any text into %s", h.language),
		"Input":   input,
	}
}

// Index renders the empty form.
func (h *TranslateHandler) Index(c *fiber.Ctx) error {
	return c.Render("index", h.page(""))
}

// Submit handles the form post and renders exactly one of warning, result or error.
func (h *TranslateHandler) Submit(c *fiber.Ctx) error {
	text := c.FormValue("text")
	data := h.page(text)

	if strings.TrimSpace(text) == "" {
		data["Warning"] = EmptyInputWarning
		return c.Render("index", data)
	}

	res := h.translator.Translate(c.UserContext(), text)
	if res.OK() {
		data["Result"] = res.Display()
	} else {
		data["Error"] = res.Display()
	}
	return c.Render("index", data)
}

func (h *TranslateHandler) Translate(c *fiber.Ctx) error {
	var req models.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
	}
	if strings.TrimSpace(req.Text) == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, EmptyInputWarning)
	}

	res := h.translator.Translate(c.UserContext(), req.Text)
	if !res.OK() {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, res.Display())
	}

	return c.JSON(models.TranslateResponse{
		Translation: res.Output,
	})
}

func (h *TranslateHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"model":    h.model,
		"language": h.language,
	})
}

// validationMessage maps a missing text field onto the empty-input warning.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.Field() == "Text" && fe.Tag() == "required" {
		return EmptyInputWarning
	}
	return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
}
