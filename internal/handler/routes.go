package handler

import "github.com/gofiber/fiber/v2"

// Register wires the storefront route map onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Get("/", h.Home)
	app.Get("/shop", h.Shop)
	app.Get("/collection", h.Collection)
	app.Get("/benefits", h.Benefits)
	app.Get("/product/:id", h.ProductDetail)

	app.Get("/cart", h.GetCart)
	app.Post("/cart", h.AddToCart)
	app.Put("/cart/:productId", h.UpdateCartQuantity)
	app.Delete("/cart/:productId", h.RemoveFromCart)

	app.Get("/wishlist", h.GetWishlist)
	app.Post("/wishlist", h.AddToWishlist)
	app.Delete("/wishlist/:productId", h.RemoveFromWishlist)

	app.Get("/checkout", h.GetCheckout)
	app.Post("/checkout", h.SubmitCheckout)

	app.Get("/order-confirmation/:orderId", h.OrderConfirmation)
	app.Get("/orders", h.ListOrders)
}
