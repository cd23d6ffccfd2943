package handler

import (
	"errors"

	"arova-be/internal/wishlist"

	"github.com/gofiber/fiber/v2"
)

type wishlistResponse struct {
	Success bool            `json:"success"`
	Items   []wishlist.Item `json:"items"`
	Badges  Badges          `json:"badges"`
}

// GetWishlist renders the wishlist page.
func (h *Handler) GetWishlist(c *fiber.Ctx) error {
	ctx := c.UserContext()

	items, err := h.wishlistSvc.Items(ctx)
	if err != nil {
		return h.internalError(c, "failed to load wishlist", err)
	}

	return c.JSON(wishlistResponse{
		Success: true,
		Items:   items,
		Badges:  h.badges(ctx),
	})
}

type addToWishlistRequest struct {
	ProductID string `json:"productId"`
}

type wishlistMutationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Item    *wishlist.Item `json:"item,omitempty"`
	Badges  Badges         `json:"badges"`
}

// AddToWishlist saves a product for later. Duplicates collapse.
func (h *Handler) AddToWishlist(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req addToWishlistRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request",
		})
	}

	item, err := h.wishlistSvc.Add(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, wishlist.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "The product you are looking for does not exist.",
			})
		}
		return h.internalError(c, "failed to add to wishlist", err)
	}

	return c.Status(fiber.StatusCreated).JSON(wishlistMutationResponse{
		Success: true,
		Message: item.Product.Name + " added to wishlist!",
		Item:    item,
		Badges:  h.badges(ctx),
	})
}

// RemoveFromWishlist drops a saved product. Absent ids are a no-op.
func (h *Handler) RemoveFromWishlist(c *fiber.Ctx) error {
	ctx := c.UserContext()
	productID := c.Params("productId")

	if err := h.wishlistSvc.Remove(ctx, productID); err != nil {
		return h.internalError(c, "failed to remove from wishlist", err)
	}

	return c.JSON(wishlistMutationResponse{
		Success: true,
		Message: "Removed from wishlist",
		Badges:  h.badges(ctx),
	})
}
