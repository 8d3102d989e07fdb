package order

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hothcommerce/storefront/internal/envelope"
)

type Handler struct {
	service *Service
}

// submitRequest is the accepted submission body. Only total is echoed back;
// items and the address are parsed but not validated or priced.
type submitRequest struct {
	Total           float64    `json:"total"`
	Items           []CartItem `json:"items"`
	ShippingAddress *Address   `json:"shippingAddress"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.getOrders)
	r.Post("/", h.submitOrder)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	return envelope.OK(c, h.service.History(), "Orders retrieved successfully")
}

func (h *Handler) submitOrder(c *fiber.Ctx) error {
	payload := new(submitRequest)
	if err := c.BodyParser(payload); err != nil {
		return envelope.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	ord := h.service.Submit(payload.Total, time.Now())
	return envelope.OKAt(c, ord, "Order submitted successfully", ord.CreatedAt)
}
