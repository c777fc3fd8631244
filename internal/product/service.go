package product

import (
	"context"
	"time"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

type catalogService struct {
	repo     Repository
	shopRepo ShopRepository
}

func NewService(repo Repository, shopRepo ShopRepository) Service {
	return &catalogService{
		repo:     repo,
		shopRepo: shopRepo,
	}
}

func (s *catalogService) Browse(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.repo.FindAvailable(ctx, filter)
}

func (s *catalogService) ListByDealer(ctx context.Context, dealerID string) ([]domain.Product, error) {
	return s.repo.FindByDealer(ctx, dealerID)
}

func (s *catalogService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	shop, err := s.shopRepo.FindByIDAndOwner(ctx, p.ShopID, p.DealerID)
	if err != nil {
		return nil, err
	}

	if !shop.AcceptsProducts() {
		return nil, apperrors.NewForbiddenError("cannot add products: shop must be verified by admin first")
	}

	if p.Unit == "" {
		p.Unit = "kg"
	}
	if p.WarehouseQuantity == nil {
		wq := p.Quantity
		p.WarehouseQuantity = &wq
	}
	p.IsAvailable = p.Quantity > 0

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *catalogService) Update(ctx context.Context, dealerID string, productID string, req UpdateProductRequest) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Products owned by other dealers look nonexistent.
	if p.DealerID != dealerID {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
		if p.Quantity > 0 {
			p.IsAvailable = true
		} else {
			p.IsAvailable = false
		}
	}
	if req.WarehouseQuantity != nil {
		wq := *req.WarehouseQuantity
		p.WarehouseQuantity = &wq
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}

	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *catalogService) Delete(ctx context.Context, dealerID string, productID string) error {
	return s.repo.Delete(ctx, productID, dealerID)
}
