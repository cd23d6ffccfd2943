// Package handler exposes the storefront surface over HTTP. Every page
// response carries the header badge counts so a mutation's effect is
// visible in the very response that confirms it.
package handler

import (
	"context"

	"arova-be/internal/cart"
	"arova-be/internal/catalog"
	"arova-be/internal/checkout"
	"arova-be/internal/logger"
	"arova-be/internal/order"
	"arova-be/internal/wishlist"

	"go.uber.org/zap"
)

type Handler struct {
	catalogSvc  catalog.Service
	cartSvc     cart.Service
	wishlistSvc wishlist.Service
	checkoutSvc checkout.Service
	orderSvc    order.Service
}

func New(
	catalogSvc catalog.Service,
	cartSvc cart.Service,
	wishlistSvc wishlist.Service,
	checkoutSvc checkout.Service,
	orderSvc order.Service,
) *Handler {
	return &Handler{
		catalogSvc:  catalogSvc,
		cartSvc:     cartSvc,
		wishlistSvc: wishlistSvc,
		checkoutSvc: checkoutSvc,
		orderSvc:    orderSvc,
	}
}

// Badges are the header counters shown on every page.
type Badges struct {
	CartCount     int `json:"cartCount"`
	WishlistCount int `json:"wishlistCount"`
}

func (h *Handler) badges(ctx context.Context) Badges {
	cartCount, err := h.cartSvc.TotalQuantity(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to count cart items", zap.Error(err))
	}

	wishlistCount, err := h.wishlistSvc.Count(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to count wishlist items", zap.Error(err))
	}

	return Badges{CartCount: cartCount, WishlistCount: wishlistCount}
}
