package checkout

import (
	"context"
	"time"

	"arova-be/internal/cart"
	"arova-be/internal/logger"
	"arova-be/internal/order"
	"arova-be/internal/utils"

	"go.uber.org/zap"
)

// Service runs the checkout flow: validate the form, synthesize an
// immutable order from the live cart, persist it, clear the cart.
// Payment is simulated and never fails.
type Service interface {
	Submit(ctx context.Context, info ShippingInfo) (*order.Order, error)
	// ShippingRate is the flat rate charged on every order. The checkout
	// view quotes it so the summary matches the order Submit persists.
	ShippingRate() float64
}

type service struct {
	cartSvc      cart.Service
	orderRepo    order.Repository
	shippingRate float64
}

func NewService(cartSvc cart.Service, orderRepo order.Repository, shippingRate float64) Service {
	return &service{
		cartSvc:      cartSvc,
		orderRepo:    orderRepo,
		shippingRate: shippingRate,
	}
}

func (s *service) ShippingRate() float64 {
	return s.shippingRate
}

func (s *service) Submit(ctx context.Context, info ShippingInfo) (*order.Order, error) {
	log := logger.FromCtx(ctx)

	// 1. Guard: nothing to check out
	items, err := s.cartSvc.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		log.Warn("checkout submitted with empty cart")
		return nil, ErrCartEmpty
	}

	// 2. Validate the whole form; no order is persisted on failure
	if fields := Validate(info); len(fields) > 0 {
		log.Info("checkout blocked by validation", zap.Int("failing_fields", len(fields)))
		return nil, &ValidationError{Fields: fields}
	}

	// 3. Snapshot the cart and compute totals
	orderItems := make([]order.OrderItem, 0, len(items))
	var subtotal float64
	for _, item := range items {
		orderItems = append(orderItems, order.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Image:     item.Product.Image,
		})
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	o := &order.Order{
		ID:           utils.GenerateOrderNumber(),
		Date:         time.Now().UTC(),
		CustomerInfo: info.toCustomerInfo(),
		Items:        orderItems,
		Subtotal:     subtotal,
		Shipping:     s.shippingRate,
		Total:        subtotal + s.shippingRate,
		Status:       order.StatusPending,
	}

	// 4. Persist, then clear the live cart. The snapshot above is
	// independent of the cart, so clearing cannot touch it.
	if err := s.orderRepo.Append(ctx, o); err != nil {
		return nil, err
	}

	if err := s.cartSvc.Clear(ctx); err != nil {
		// the order is already durable; report the inconsistency
		log.Error("order persisted but cart clear failed",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int("items", len(o.Items)),
		zap.Float64("total", o.Total),
	)

	return o, nil
}
