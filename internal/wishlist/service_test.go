package wishlist

import (
	"context"
	"testing"

	"arova-be/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogRepository is a mock for the catalog repository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func newTestService(t *testing.T) (Service, *MockCatalogRepository) {
	t.Helper()
	catalogRepo := new(MockCatalogRepository)
	return NewService(NewMemoryRepository(), catalogRepo), catalogRepo
}

func TestWishlistAddAndContains(t *testing.T) {
	ctx := context.Background()
	rose := catalog.Product{ID: "velvet-rose", Name: "Velvet Rose", Price: 29.99}

	svc, catalogRepo := newTestService(t)
	catalogRepo.On("GetByID", ctx, "velvet-rose").Return(&rose, nil)

	// Contains flips to true immediately after Add
	in, err := svc.Contains(ctx, "velvet-rose")
	require.NoError(t, err)
	assert.False(t, in)

	_, err = svc.Add(ctx, "velvet-rose")
	require.NoError(t, err)

	in, err = svc.Contains(ctx, "velvet-rose")
	require.NoError(t, err)
	assert.True(t, in)
}

func TestWishlistNoDuplicates(t *testing.T) {
	ctx := context.Background()
	rose := catalog.Product{ID: "velvet-rose", Name: "Velvet Rose", Price: 29.99}

	svc, catalogRepo := newTestService(t)
	catalogRepo.On("GetByID", ctx, "velvet-rose").Return(&rose, nil)

	_, err := svc.Add(ctx, "velvet-rose")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "velvet-rose")
	require.NoError(t, err)

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWishlistRemove(t *testing.T) {
	ctx := context.Background()
	rose := catalog.Product{ID: "velvet-rose", Name: "Velvet Rose", Price: 29.99}

	svc, catalogRepo := newTestService(t)
	catalogRepo.On("GetByID", ctx, "velvet-rose").Return(&rose, nil)

	_, err := svc.Add(ctx, "velvet-rose")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "velvet-rose"))

	// Contains flips to false immediately after Remove
	in, err := svc.Contains(ctx, "velvet-rose")
	require.NoError(t, err)
	assert.False(t, in)

	// Removing again stays a no-op
	require.NoError(t, svc.Remove(ctx, "velvet-rose"))
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	ctx := context.Background()

	svc, catalogRepo := newTestService(t)
	catalogRepo.On("GetByID", ctx, "nope").Return(nil, nil)

	_, err := svc.Add(ctx, "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistInsertionOrder(t *testing.T) {
	ctx := context.Background()
	rose := catalog.Product{ID: "velvet-rose", Name: "Velvet Rose"}
	oud := catalog.Product{ID: "midnight-oud", Name: "Midnight Oud"}

	svc, catalogRepo := newTestService(t)
	catalogRepo.On("GetByID", ctx, "velvet-rose").Return(&rose, nil)
	catalogRepo.On("GetByID", ctx, "midnight-oud").Return(&oud, nil)

	_, err := svc.Add(ctx, "velvet-rose")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "midnight-oud")
	require.NoError(t, err)

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "velvet-rose", items[0].Product.ID)
	assert.Equal(t, "midnight-oud", items[1].Product.ID)
}
