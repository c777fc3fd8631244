package usecase

import (
	"context"

	"agromart/internal/domain"
	"agromart/internal/dto"
)

type StockReservationService interface {
	ReserveAndCreate(ctx context.Context, order domain.Order, lines []dto.OrderLine) (*domain.Order, error)
	ReleaseAndCancel(ctx context.Context, order domain.Order) error
}

type OrderRepository interface {
	FindByIDAndFarmer(ctx context.Context, id string, farmerID string) (*domain.Order, error)
	FindByIDAndDealer(ctx context.Context, id string, dealerID string) (*domain.Order, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]domain.Order, error)
	ListByDealer(ctx context.Context, dealerID string) ([]domain.Order, error)
	ListAll(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type OrderItemRepository interface {
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	FindByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error)
}

type ShopRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Shop, error)
}

type UserRepository interface {
	FindActiveAdmins(ctx context.Context) ([]domain.User, error)
}

// Notifier is fire-and-forget: implementations must never fail the
// workflow transition that triggered the event.
type Notifier interface {
	Send(ctx context.Context, userID string, message string, notifType domain.NotificationType)
}
