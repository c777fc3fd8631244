package usecase

import (
	"context"

	"agromart/internal/domain"
)

type ListOrdersUseCase struct {
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
}

func NewListOrdersUseCase(orderRepo OrderRepository, orderItemRepo OrderItemRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

func (uc *ListOrdersUseCase) ListFarmerOrders(ctx context.Context, farmerID string) ([]domain.Order, error) {
	orders, err := uc.orderRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	return uc.attachItems(ctx, orders)
}

func (uc *ListOrdersUseCase) ListDealerOrders(ctx context.Context, dealerID string) ([]domain.Order, error) {
	orders, err := uc.orderRepo.ListByDealer(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	return uc.attachItems(ctx, orders)
}

func (uc *ListOrdersUseCase) ListAllOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	orders, err := uc.orderRepo.ListAll(ctx, status)
	if err != nil {
		return nil, err
	}
	return uc.attachItems(ctx, orders)
}

func (uc *ListOrdersUseCase) attachItems(ctx context.Context, orders []domain.Order) ([]domain.Order, error) {
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	grouped, err := uc.orderItemRepo.FindByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = grouped[orders[i].ID]
	}

	return orders, nil
}
