package product

import (
	"context"

	"github.com/google/uuid"

	"agromart/internal/domain"
)

type catalogUseCase struct {
	service Service
}

func NewCatalogUseCase(service Service) CatalogUseCase {
	return &catalogUseCase{service: service}
}

func (uc *catalogUseCase) Browse(ctx context.Context, req BrowseProductsRequest) (*BrowseProductsResponse, error) {
	found, err := uc.service.Browse(ctx, domain.ProductFilter{
		Search:   req.Search,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		return nil, err
	}

	products := make([]ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, ProductDTO{
			ID:          p.ID,
			ShopID:      p.ShopID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Price:       p.Price,
			Quantity:    p.Quantity,
			Unit:        p.Unit,
			ImageURL:    p.ImageURL,
			CreatedAt:   p.CreatedAt,
		})
	}

	return &BrowseProductsResponse{
		Success:  true,
		Products: products,
	}, nil
}

func (uc *catalogUseCase) ListDealerProducts(ctx context.Context, dealerID string) ([]DealerProductDTO, error) {
	found, err := uc.service.ListByDealer(ctx, dealerID)
	if err != nil {
		return nil, err
	}

	products := make([]DealerProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, toDealerDTO(p))
	}

	return products, nil
}

func (uc *catalogUseCase) AddProduct(ctx context.Context, dealerID string, req AddProductRequest) (*DealerProductDTO, error) {
	created, err := uc.service.Create(ctx, domain.Product{
		ID:                uuid.NewString(),
		ShopID:            req.ShopID,
		DealerID:          dealerID,
		Name:              req.Name,
		Category:          req.Category,
		Description:       req.Description,
		Price:             req.Price,
		Quantity:          req.Quantity,
		WarehouseQuantity: req.WarehouseQuantity,
		Unit:              req.Unit,
		ImageURL:          req.ImageURL,
		IsPublished:       req.IsPublished,
	})
	if err != nil {
		return nil, err
	}

	dto := toDealerDTO(*created)
	return &dto, nil
}

func (uc *catalogUseCase) UpdateProduct(ctx context.Context, dealerID string, productID string, req UpdateProductRequest) (*DealerProductDTO, error) {
	updated, err := uc.service.Update(ctx, dealerID, productID, req)
	if err != nil {
		return nil, err
	}

	dto := toDealerDTO(*updated)
	return &dto, nil
}

func (uc *catalogUseCase) DeleteProduct(ctx context.Context, dealerID string, productID string) error {
	return uc.service.Delete(ctx, dealerID, productID)
}

func toDealerDTO(p domain.Product) DealerProductDTO {
	return DealerProductDTO{
		ID:                p.ID,
		ShopID:            p.ShopID,
		Name:              p.Name,
		Category:          p.Category,
		Description:       p.Description,
		Price:             p.Price,
		Quantity:          p.Quantity,
		WarehouseQuantity: p.WarehouseQuantity,
		Unit:              p.Unit,
		ImageURL:          p.ImageURL,
		IsPublished:       p.IsPublished,
		IsAvailable:       p.IsAvailable,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
