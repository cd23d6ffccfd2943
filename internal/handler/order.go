package handler

import (
	"errors"

	"arova-be/internal/order"

	"github.com/gofiber/fiber/v2"
)

type orderConfirmationResponse struct {
	Success bool         `json:"success"`
	Order   *order.Order `json:"order"`
	Badges  Badges       `json:"badges"`
}

// OrderConfirmation renders one persisted order by id.
func (h *Handler) OrderConfirmation(c *fiber.Ctx) error {
	ctx := c.UserContext()
	orderID := c.Params("orderId")

	o, err := h.orderSvc.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success":  false,
				"message":  "Order not found.",
				"redirect": "/shop",
			})
		}
		return h.internalError(c, "failed to load order", err)
	}

	return c.JSON(orderConfirmationResponse{
		Success: true,
		Order:   o,
		Badges:  h.badges(ctx),
	})
}

type orderListResponse struct {
	Success bool          `json:"success"`
	Orders  []order.Order `json:"orders"`
	Badges  Badges        `json:"badges"`
}

// ListOrders renders the order history.
func (h *Handler) ListOrders(c *fiber.Ctx) error {
	ctx := c.UserContext()

	orders, err := h.orderSvc.ListOrders(ctx)
	if err != nil {
		return h.internalError(c, "failed to list orders", err)
	}

	return c.JSON(orderListResponse{
		Success: true,
		Orders:  orders,
		Badges:  h.badges(ctx),
	})
}
