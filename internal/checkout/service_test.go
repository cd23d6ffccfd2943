package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"arova-be/internal/cart"
	"arova-be/internal/catalog"
	"arova-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of cart.Service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddToCart(ctx context.Context, productID string) (*cart.CartItem, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) Items(ctx context.Context) ([]cart.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.CartItem), args.Error(1)
}

func (m *MockCartService) Subtotal(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCartService) TotalQuantity(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Get(0).(int), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Append(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func twoLineCart() []cart.CartItem {
	return []cart.CartItem{
		{Product: catalog.Product{ID: "a", Name: "A", Price: 10.00}, Quantity: 2},
		{Product: catalog.Product{ID: "b", Name: "B", Price: 5.00}, Quantity: 1},
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	ctx := context.Background()

	cartSvc := new(MockCartService)
	orderRepo := new(MockOrderRepository)
	cartSvc.On("Items", ctx).Return([]cart.CartItem{}, nil)

	svc := NewService(cartSvc, orderRepo, 0.00)
	_, err := svc.Submit(ctx, validShippingInfo())

	assert.ErrorIs(t, err, ErrCartEmpty)
	orderRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitAllFieldsEmpty(t *testing.T) {
	ctx := context.Background()

	cartSvc := new(MockCartService)
	orderRepo := new(MockOrderRepository)
	cartSvc.On("Items", ctx).Return(twoLineCart(), nil)

	svc := NewService(cartSvc, orderRepo, 0.00)
	_, err := svc.Submit(ctx, ShippingInfo{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 9)

	// zero orders persisted, cart untouched
	orderRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	cartSvc.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestSubmitInvalidEmail(t *testing.T) {
	ctx := context.Background()

	cartSvc := new(MockCartService)
	orderRepo := new(MockOrderRepository)
	cartSvc.On("Items", ctx).Return(twoLineCart(), nil)

	info := validShippingInfo()
	info.Email = "foo"

	svc := NewService(cartSvc, orderRepo, 0.00)
	_, err := svc.Submit(ctx, info)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "Email is invalid.", verr.Fields["email"])
	orderRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitSuccess(t *testing.T) {
	ctx := context.Background()

	cartSvc := new(MockCartService)
	orderRepo := new(MockOrderRepository)
	cartSvc.On("Items", ctx).Return(twoLineCart(), nil)
	cartSvc.On("Clear", ctx).Return(nil)

	var persisted *order.Order
	orderRepo.On("Append", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*order.Order)
		}).
		Return(nil)

	svc := NewService(cartSvc, orderRepo, 0.00)
	o, err := svc.Submit(ctx, validShippingInfo())

	require.NoError(t, err)
	require.NotNil(t, o)

	// exactly one order appended, and it is the returned one
	orderRepo.AssertNumberOfCalls(t, "Append", 1)
	assert.Same(t, persisted, o)

	// totals: $10.00 x2 + $5.00 x1 with free shipping
	assert.InDelta(t, 25.00, o.Subtotal, 1e-9)
	assert.InDelta(t, 0.00, o.Shipping, 1e-9)
	assert.InDelta(t, 25.00, o.Total, 1e-9)

	assert.Equal(t, order.StatusPending, o.Status)
	assert.True(t, strings.HasPrefix(o.ID, "ORDER-"))
	assert.False(t, o.Date.IsZero())

	// snapshot copies the cart lines
	require.Len(t, o.Items, 2)
	assert.Equal(t, "a", o.Items[0].ProductID)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, "b", o.Items[1].ProductID)

	// form snapshot lands in customerInfo
	assert.Equal(t, "Asha", o.CustomerInfo.FirstName)
	assert.Equal(t, "India", o.CustomerInfo.Country)

	// cart cleared after the snapshot
	cartSvc.AssertCalled(t, "Clear", ctx)
}

func TestSubmitShippingRate(t *testing.T) {
	ctx := context.Background()

	cartSvc := new(MockCartService)
	orderRepo := new(MockOrderRepository)
	cartSvc.On("Items", ctx).Return(twoLineCart(), nil)
	cartSvc.On("Clear", ctx).Return(nil)
	orderRepo.On("Append", ctx, mock.Anything).Return(nil)

	svc := NewService(cartSvc, orderRepo, 4.50)
	o, err := svc.Submit(ctx, validShippingInfo())

	require.NoError(t, err)
	assert.InDelta(t, 25.00, o.Subtotal, 1e-9)
	assert.InDelta(t, 4.50, o.Shipping, 1e-9)
	assert.InDelta(t, 29.50, o.Total, 1e-9)
	assert.Equal(t, o.Shipping, svc.ShippingRate())
}

func TestSubmitPersistFailure(t *testing.T) {
	ctx := context.Background()

	cartSvc := new(MockCartService)
	orderRepo := new(MockOrderRepository)
	cartSvc.On("Items", ctx).Return(twoLineCart(), nil)
	orderRepo.On("Append", ctx, mock.Anything).Return(errors.New("disk full"))

	svc := NewService(cartSvc, orderRepo, 0.00)
	_, err := svc.Submit(ctx, validShippingInfo())

	assert.Error(t, err)
	// cart must survive a failed persist
	cartSvc.AssertNotCalled(t, "Clear", mock.Anything)
}

// The persisted snapshot must be unaffected by the cart clearing that
// follows it, exercised against the real cart container.
func TestSubmitSnapshotSurvivesClear(t *testing.T) {
	ctx := context.Background()

	catalogRepo, err := catalog.NewRepository()
	require.NoError(t, err)

	cartSvc := cart.NewService(cart.NewMemoryRepository(), catalogRepo)
	_, err = cartSvc.AddToCart(ctx, "midnight-oud")
	require.NoError(t, err)
	_, err = cartSvc.AddToCart(ctx, "midnight-oud")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	var persisted *order.Order
	orderRepo.On("Append", ctx, mock.Anything).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*order.Order) }).
		Return(nil)

	svc := NewService(cartSvc, orderRepo, 0.00)
	_, err = svc.Submit(ctx, validShippingInfo())
	require.NoError(t, err)

	// cart is empty now
	items, err := cartSvc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// snapshot still holds the line
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, 2, persisted.Items[0].Quantity)
}
