package handler

import (
	"errors"

	"arova-be/internal/cart"
	"arova-be/internal/checkout"
	"arova-be/internal/logger"
	"arova-be/internal/order"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const emptyCartMessage = "Your cart is empty. Please add items before checking out."

type checkoutViewResponse struct {
	Success        bool            `json:"success"`
	Items          []cart.CartItem `json:"items"`
	Subtotal       float64         `json:"subtotal"`
	Shipping       float64         `json:"shipping"`
	Total          float64         `json:"total"`
	DefaultCountry string          `json:"defaultCountry"`
	Countries      []string        `json:"countries"`
	Badges         Badges          `json:"badges"`
}

// GetCheckout renders the checkout page. Arriving with an empty cart
// trips the entry guard and sends the caller back to the cart page.
func (h *Handler) GetCheckout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	items, err := h.cartSvc.Items(ctx)
	if err != nil {
		return h.internalError(c, "failed to load cart", err)
	}

	if len(items) == 0 {
		return c.JSON(fiber.Map{
			"success":  false,
			"message":  emptyCartMessage,
			"redirect": "/cart",
		})
	}

	subtotal, err := h.cartSvc.Subtotal(ctx)
	if err != nil {
		return h.internalError(c, "failed to total cart", err)
	}

	shipping := h.checkoutSvc.ShippingRate()

	return c.JSON(checkoutViewResponse{
		Success:        true,
		Items:          items,
		Subtotal:       subtotal,
		Shipping:       shipping,
		Total:          subtotal + shipping,
		DefaultCountry: "India",
		Countries:      []string{"India", "USA", "Canada", "UK"},
		Badges:         h.badges(ctx),
	})
}

type checkoutSubmitResponse struct {
	Success  bool         `json:"success"`
	Message  string       `json:"message,omitempty"`
	Order    *order.Order `json:"order,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
	Badges   Badges       `json:"badges"`
}

// SubmitCheckout validates the shipping form and places the order.
func (h *Handler) SubmitCheckout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var info checkout.ShippingInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request",
		})
	}

	o, err := h.checkoutSvc.Submit(ctx, info)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.Is(err, checkout.ErrCartEmpty):
			// distinct notice plus a path back to the catalog listing
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success":  false,
				"message":  emptyCartMessage,
				"redirect": "/shop",
			})
		case errors.As(err, &verr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"message": "Please fill in all required fields correctly.",
				"errors":  verr.Fields,
			})
		default:
			logger.FromCtx(ctx).Error("checkout failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Something went wrong.",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(checkoutSubmitResponse{
		Success:  true,
		Message:  "Order placed successfully.",
		Order:    o,
		Redirect: "/order-confirmation/" + o.ID,
		Badges:   h.badges(ctx),
	})
}
