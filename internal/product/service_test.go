package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

type mockRepository struct {
	FindByIDFunc      func(ctx context.Context, id string) (*domain.Product, error)
	FindByDealerFunc  func(ctx context.Context, dealerID string) ([]domain.Product, error)
	FindAvailableFunc func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	InsertFunc        func(ctx context.Context, p domain.Product) error
	UpdateFunc        func(ctx context.Context, p domain.Product) error
	DeleteFunc        func(ctx context.Context, id string, dealerID string) error
}

func (m *mockRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRepository) FindByDealer(ctx context.Context, dealerID string) ([]domain.Product, error) {
	return m.FindByDealerFunc(ctx, dealerID)
}

func (m *mockRepository) FindAvailable(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return m.FindAvailableFunc(ctx, filter)
}

func (m *mockRepository) Insert(ctx context.Context, p domain.Product) error {
	return m.InsertFunc(ctx, p)
}

func (m *mockRepository) Update(ctx context.Context, p domain.Product) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockRepository) Delete(ctx context.Context, id string, dealerID string) error {
	return m.DeleteFunc(ctx, id, dealerID)
}

type mockShopRepository struct {
	FindByIDAndOwnerFunc func(ctx context.Context, id string, ownerID string) (*domain.Shop, error)
}

func (m *mockShopRepository) FindByIDAndOwner(ctx context.Context, id string, ownerID string) (*domain.Shop, error) {
	return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
}

func ownedShop(status domain.ShopStatus) *mockShopRepository {
	return &mockShopRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id string, ownerID string) (*domain.Shop, error) {
			return &domain.Shop{ID: id, OwnerID: ownerID, Status: status}, nil
		},
	}
}

func TestCreate_AppliesDefaults(t *testing.T) {
	var inserted domain.Product
	repo := &mockRepository{
		InsertFunc: func(ctx context.Context, p domain.Product) error {
			inserted = p
			return nil
		},
	}

	svc := NewService(repo, ownedShop(domain.ShopStatusVerified))

	created, err := svc.Create(context.Background(), domain.Product{
		ID:       "prod-1",
		ShopID:   "shop-1",
		DealerID: "dealer-1",
		Name:     "Tomatoes",
		Price:    50,
		Quantity: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, "kg", inserted.Unit)
	require.NotNil(t, inserted.WarehouseQuantity)
	assert.Equal(t, 10, *inserted.WarehouseQuantity)
	assert.True(t, inserted.IsAvailable)
	assert.True(t, created.IsAvailable)
}

func TestCreate_ZeroQuantityNotAvailable(t *testing.T) {
	repo := &mockRepository{
		InsertFunc: func(ctx context.Context, p domain.Product) error {
			assert.False(t, p.IsAvailable)
			return nil
		},
	}

	svc := NewService(repo, ownedShop(domain.ShopStatusVerified))

	_, err := svc.Create(context.Background(), domain.Product{
		ID: "prod-1", ShopID: "shop-1", DealerID: "dealer-1", Name: "Tomatoes",
	})
	assert.NoError(t, err)
}

func TestCreate_UnverifiedShopForbidden(t *testing.T) {
	repo := &mockRepository{
		InsertFunc: func(ctx context.Context, p domain.Product) error {
			t.Fatal("insert should not be attempted")
			return nil
		},
	}

	svc := NewService(repo, ownedShop(domain.ShopStatusPending))

	_, err := svc.Create(context.Background(), domain.Product{
		ID: "prod-1", ShopID: "shop-1", DealerID: "dealer-1", Name: "Tomatoes", Quantity: 10,
	})

	fe, ok := apperrors.IsForbiddenError(err)
	require.True(t, ok)
	assert.Contains(t, fe.Message, "verified")
}

func TestCreate_ShopNotOwned(t *testing.T) {
	shopRepo := &mockShopRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id string, ownerID string) (*domain.Shop, error) {
			return nil, apperrors.NewNotFoundError("shop not found")
		},
	}
	repo := &mockRepository{
		InsertFunc: func(ctx context.Context, p domain.Product) error {
			t.Fatal("insert should not be attempted")
			return nil
		},
	}

	svc := NewService(repo, shopRepo)

	_, err := svc.Create(context.Background(), domain.Product{
		ID: "prod-1", ShopID: "shop-1", DealerID: "dealer-1", Name: "Tomatoes",
	})

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestUpdate_PartialFields(t *testing.T) {
	existing := domain.Product{
		ID: "prod-1", DealerID: "dealer-1", Name: "Tomatoes",
		Price: 50, Quantity: 10, Unit: "kg", IsPublished: true, IsAvailable: true,
	}

	var updated domain.Product
	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			p := existing
			return &p, nil
		},
		UpdateFunc: func(ctx context.Context, p domain.Product) error {
			updated = p
			return nil
		},
	}

	svc := NewService(repo, ownedShop(domain.ShopStatusVerified))

	newPrice := 60.0
	_, err := svc.Update(context.Background(), "dealer-1", "prod-1", UpdateProductRequest{Price: &newPrice})

	require.NoError(t, err)
	assert.Equal(t, 60.0, updated.Price)
	assert.Equal(t, "Tomatoes", updated.Name)
	assert.Equal(t, 10, updated.Quantity)
}

func TestUpdate_RestockReassertsAvailability(t *testing.T) {
	existing := domain.Product{
		ID: "prod-1", DealerID: "dealer-1", Name: "Tomatoes",
		Quantity: 0, IsPublished: true, IsAvailable: false,
	}

	var updated domain.Product
	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			p := existing
			return &p, nil
		},
		UpdateFunc: func(ctx context.Context, p domain.Product) error {
			updated = p
			return nil
		},
	}

	svc := NewService(repo, ownedShop(domain.ShopStatusVerified))

	restock := 8
	_, err := svc.Update(context.Background(), "dealer-1", "prod-1", UpdateProductRequest{Quantity: &restock})

	require.NoError(t, err)
	assert.Equal(t, 8, updated.Quantity)
	assert.True(t, updated.IsAvailable)
}

func TestUpdate_OtherDealersProductLooksNotFound(t *testing.T) {
	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return &domain.Product{ID: id, DealerID: "dealer-1"}, nil
		},
		UpdateFunc: func(ctx context.Context, p domain.Product) error {
			t.Fatal("update should not be attempted")
			return nil
		},
	}

	svc := NewService(repo, ownedShop(domain.ShopStatusVerified))

	name := "Onions"
	_, err := svc.Update(context.Background(), "dealer-2", "prod-1", UpdateProductRequest{Name: &name})

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
