package usecase

import (
	"context"

	"agromart/internal/domain"
	"agromart/internal/dto"
)

type mockReservationService struct {
	ReserveAndCreateFunc func(ctx context.Context, order domain.Order, lines []dto.OrderLine) (*domain.Order, error)
	ReleaseAndCancelFunc func(ctx context.Context, order domain.Order) error
}

func (m *mockReservationService) ReserveAndCreate(ctx context.Context, order domain.Order, lines []dto.OrderLine) (*domain.Order, error) {
	return m.ReserveAndCreateFunc(ctx, order, lines)
}

func (m *mockReservationService) ReleaseAndCancel(ctx context.Context, order domain.Order) error {
	return m.ReleaseAndCancelFunc(ctx, order)
}

type mockOrderRepository struct {
	FindByIDAndFarmerFunc func(ctx context.Context, id string, farmerID string) (*domain.Order, error)
	FindByIDAndDealerFunc func(ctx context.Context, id string, dealerID string) (*domain.Order, error)
	ListByFarmerFunc      func(ctx context.Context, farmerID string) ([]domain.Order, error)
	ListByDealerFunc      func(ctx context.Context, dealerID string) ([]domain.Order, error)
	ListAllFunc           func(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
	UpdateStatusFunc      func(ctx context.Context, id string, status domain.OrderStatus) error
}

func (m *mockOrderRepository) FindByIDAndFarmer(ctx context.Context, id string, farmerID string) (*domain.Order, error) {
	return m.FindByIDAndFarmerFunc(ctx, id, farmerID)
}

func (m *mockOrderRepository) FindByIDAndDealer(ctx context.Context, id string, dealerID string) (*domain.Order, error) {
	return m.FindByIDAndDealerFunc(ctx, id, dealerID)
}

func (m *mockOrderRepository) ListByFarmer(ctx context.Context, farmerID string) ([]domain.Order, error) {
	return m.ListByFarmerFunc(ctx, farmerID)
}

func (m *mockOrderRepository) ListByDealer(ctx context.Context, dealerID string) ([]domain.Order, error) {
	return m.ListByDealerFunc(ctx, dealerID)
}

func (m *mockOrderRepository) ListAll(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	return m.ListAllFunc(ctx, status)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return m.UpdateStatusFunc(ctx, id, status)
}

type mockOrderItemRepository struct {
	FindByOrderIDFunc  func(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	FindByOrderIDsFunc func(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error)
}

func (m *mockOrderItemRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	return m.FindByOrderIDFunc(ctx, orderID)
}

func (m *mockOrderItemRepository) FindByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	return m.FindByOrderIDsFunc(ctx, orderIDs)
}

type mockShopRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Shop, error)
}

func (m *mockShopRepository) FindByID(ctx context.Context, id string) (*domain.Shop, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockUserRepository struct {
	FindActiveAdminsFunc func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserRepository) FindActiveAdmins(ctx context.Context) ([]domain.User, error) {
	return m.FindActiveAdminsFunc(ctx)
}

type sentNotification struct {
	UserID  string
	Message string
	Type    domain.NotificationType
}

type mockNotifier struct {
	Sent []sentNotification
	Ctxs []context.Context
}

func (m *mockNotifier) Send(ctx context.Context, userID string, message string, notifType domain.NotificationType) {
	m.Sent = append(m.Sent, sentNotification{UserID: userID, Message: message, Type: notifType})
	m.Ctxs = append(m.Ctxs, ctx)
}
