package product

import (
	"context"

	"agromart/internal/domain"
)

type CatalogUseCase interface {
	Browse(ctx context.Context, req BrowseProductsRequest) (*BrowseProductsResponse, error)
	ListDealerProducts(ctx context.Context, dealerID string) ([]DealerProductDTO, error)
	AddProduct(ctx context.Context, dealerID string, req AddProductRequest) (*DealerProductDTO, error)
	UpdateProduct(ctx context.Context, dealerID string, productID string, req UpdateProductRequest) (*DealerProductDTO, error)
	DeleteProduct(ctx context.Context, dealerID string, productID string) error
}

type Service interface {
	Browse(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ListByDealer(ctx context.Context, dealerID string) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, dealerID string, productID string, req UpdateProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, dealerID string, productID string) error
}

type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByDealer(ctx context.Context, dealerID string) ([]domain.Product, error)
	FindAvailable(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) error
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id string, dealerID string) error
}

type ShopRepository interface {
	FindByIDAndOwner(ctx context.Context, id string, ownerID string) (*domain.Shop, error)
}
