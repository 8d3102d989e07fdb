package auth

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/hothcommerce/storefront/internal/envelope"
)

var validate = validator.New()

type Handler struct {
	service *Service
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return envelope.Fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(payload); err != nil {
		return envelope.Fail(c, fiber.StatusBadRequest, registerValidationMessage(err))
	}

	now := time.Now().UTC()
	session := h.service.Register(payload.Email, payload.Name, now)
	return envelope.OKAt(c, session, "Registration successful", now.Format(time.RFC3339))
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return envelope.Fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(payload); err != nil {
		return envelope.Fail(c, fiber.StatusBadRequest, loginValidationMessage(err))
	}

	now := time.Now().UTC()
	session := h.service.Login(payload.Email, now)
	return envelope.OKAt(c, session, "Login successful", now.Format(time.RFC3339))
}

func registerValidationMessage(err error) string {
	return validationMessage(err, map[string]string{
		"Email":    "Valid email is required",
		"Password": "Password must be at least 8 characters",
		"Name":     "Name is required",
	})
}

func loginValidationMessage(err error) string {
	return validationMessage(err, map[string]string{
		"Email":    "Valid email is required",
		"Password": "Password is required",
	})
}

// validationMessage flattens validator errors into one user-facing string,
// keeping the per-field wording of the API contract.
func validationMessage(err error, messages map[string]string) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()]; ok {
			out = append(out, msg)
		} else {
			out = append(out, fe.Error())
		}
	}
	return strings.Join(out, "; ")
}
