package handler

import (
	"errors"

	"arova-be/internal/catalog"
	"arova-be/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type shopResponse struct {
	Success  bool              `json:"success"`
	Title    string            `json:"title"`
	Products []catalog.Product `json:"products"`
	Message  string            `json:"message,omitempty"`
	Badges   Badges            `json:"badges"`
}

// Shop renders the product listing, optionally narrowed by the
// category query parameter.
func (h *Handler) Shop(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var category *string
	if q := c.Query("category"); q != "" {
		category = &q
	}

	products, err := h.catalogSvc.ListProducts(ctx, category)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Something went wrong.",
		})
	}

	resp := shopResponse{
		Success:  true,
		Title:    "All Products",
		Products: products,
		Badges:   h.badges(ctx),
	}
	if category != nil {
		resp.Title = "Shop " + titleCase(*category) + "'s Collection"
	}
	if len(products) == 0 {
		resp.Message = "No products found for this category."
	}

	return c.JSON(resp)
}

type productResponse struct {
	Success    bool             `json:"success"`
	Product    *catalog.Product `json:"product"`
	InWishlist bool             `json:"inWishlist"`
	Badges     Badges           `json:"badges"`
}

// ProductDetail renders one product. Unknown ids get a not-found view
// with a path back to the shop.
func (h *Handler) ProductDetail(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	product, err := h.catalogSvc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success":  false,
				"message":  "The product you are looking for does not exist.",
				"redirect": "/shop",
			})
		}
		logger.FromCtx(ctx).Error("failed to load product", zap.String("product_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Something went wrong.",
		})
	}

	inWishlist, err := h.wishlistSvc.Contains(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to check wishlist", zap.Error(err))
	}

	return c.JSON(productResponse{
		Success:    true,
		Product:    product,
		InWishlist: inWishlist,
		Badges:     h.badges(ctx),
	})
}
