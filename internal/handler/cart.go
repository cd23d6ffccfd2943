package handler

import (
	"errors"

	"arova-be/internal/cart"
	"arova-be/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type cartResponse struct {
	Success  bool            `json:"success"`
	Items    []cart.CartItem `json:"items"`
	Subtotal float64         `json:"subtotal"`
	Badges   Badges          `json:"badges"`
}

// GetCart renders the cart page.
func (h *Handler) GetCart(c *fiber.Ctx) error {
	ctx := c.UserContext()

	items, err := h.cartSvc.Items(ctx)
	if err != nil {
		return h.internalError(c, "failed to load cart", err)
	}

	subtotal, err := h.cartSvc.Subtotal(ctx)
	if err != nil {
		return h.internalError(c, "failed to total cart", err)
	}

	return c.JSON(cartResponse{
		Success:  true,
		Items:    items,
		Subtotal: subtotal,
		Badges:   h.badges(ctx),
	})
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
}

type cartMutationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Item    *cart.CartItem `json:"item,omitempty"`
	Badges  Badges         `json:"badges"`
}

// AddToCart puts one unit of a product in the cart.
func (h *Handler) AddToCart(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request",
		})
	}

	item, err := h.cartSvc.AddToCart(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, cart.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "The product you are looking for does not exist.",
			})
		}
		return h.internalError(c, "failed to add to cart", err)
	}

	return c.Status(fiber.StatusCreated).JSON(cartMutationResponse{
		Success: true,
		Message: item.Product.Name + " added to cart!",
		Item:    item,
		Badges:  h.badges(ctx),
	})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartQuantity sets a line's quantity; zero removes the line.
func (h *Handler) UpdateCartQuantity(c *fiber.Ctx) error {
	ctx := c.UserContext()
	productID := c.Params("productId")

	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request",
		})
	}

	if err := h.cartSvc.UpdateQuantity(ctx, productID, req.Quantity); err != nil {
		return h.internalError(c, "failed to update cart", err)
	}

	return c.JSON(cartMutationResponse{
		Success: true,
		Message: "Cart updated",
		Badges:  h.badges(ctx),
	})
}

// RemoveFromCart deletes a product's line from the cart.
func (h *Handler) RemoveFromCart(c *fiber.Ctx) error {
	ctx := c.UserContext()
	productID := c.Params("productId")

	if err := h.cartSvc.RemoveFromCart(ctx, productID); err != nil {
		return h.internalError(c, "failed to remove from cart", err)
	}

	return c.JSON(cartMutationResponse{
		Success: true,
		Message: "Cart updated",
		Badges:  h.badges(ctx),
	})
}

func (h *Handler) internalError(c *fiber.Ctx, msg string, err error) error {
	logger.FromCtx(c.UserContext()).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Something went wrong.",
	})
}
