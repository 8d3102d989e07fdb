package product

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hothcommerce/storefront/internal/envelope"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.getProducts)
	r.Get("/:id", h.getProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	return envelope.OK(c, h.service.List(), "Products retrieved successfully")
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	return envelope.OK(c, h.service.Get(c.Params("id")), "Product retrieved successfully")
}
