package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

func dealerOrderRepo(order domain.Order) *mockOrderRepository {
	return &mockOrderRepository{
		FindByIDAndDealerFunc: func(ctx context.Context, id string, dealerID string) (*domain.Order, error) {
			if id != order.ID || dealerID != order.DealerID {
				return nil, apperrors.NewNotFoundError("order not found")
			}
			o := order
			return &o, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id string, status domain.OrderStatus) error {
			return nil
		},
	}
}

func TestUpdateStatus_ForwardTransition(t *testing.T) {
	order := domain.Order{ID: "order-1", DealerID: "dealer-1", FarmerID: "farmer-1", Status: domain.OrderStatusPlaced}

	var persisted domain.OrderStatus
	repo := dealerOrderRepo(order)
	repo.UpdateStatusFunc = func(ctx context.Context, id string, status domain.OrderStatus) error {
		persisted = status
		return nil
	}
	reservationSvc := &mockReservationService{
		ReleaseAndCancelFunc: func(ctx context.Context, o domain.Order) error {
			t.Fatal("release should not run on a forward transition")
			return nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewUpdateStatusUseCase(repo, itemsRepo(nil), reservationSvc, notifier, zap.NewNop(), 3)

	updated, err := uc.UpdateStatus(context.Background(), "dealer-1", "order-1", domain.OrderStatusAssigned)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusAssigned, updated.Status)
	assert.Equal(t, domain.OrderStatusAssigned, persisted)
}

func TestUpdateStatus_NotifiesFarmerWithBothStatuses(t *testing.T) {
	order := domain.Order{ID: "order-abcdef", DealerID: "dealer-1", FarmerID: "farmer-1", Status: domain.OrderStatusInTransit}
	reservationSvc := &mockReservationService{}
	notifier := &mockNotifier{}

	uc := NewUpdateStatusUseCase(dealerOrderRepo(order), itemsRepo(nil), reservationSvc, notifier, zap.NewNop(), 3)

	_, err := uc.UpdateStatus(context.Background(), "dealer-1", "order-abcdef", domain.OrderStatusDelivered)

	assert.NoError(t, err)
	assert.Len(t, notifier.Sent, 1)
	assert.Equal(t, "farmer-1", notifier.Sent[0].UserID)
	assert.Contains(t, notifier.Sent[0].Message, "in_transit")
	assert.Contains(t, notifier.Sent[0].Message, "delivered")
	assert.Contains(t, notifier.Sent[0].Message, "#abcdef")
}

func TestUpdateStatus_NotificationSurvivesRequestCancellation(t *testing.T) {
	order := domain.Order{ID: "order-1", DealerID: "dealer-1", FarmerID: "farmer-1", Status: domain.OrderStatusPlaced}

	ctx, cancel := context.WithCancel(context.Background())
	repo := dealerOrderRepo(order)
	repo.UpdateStatusFunc = func(ctx context.Context, id string, status domain.OrderStatus) error {
		cancel()
		return nil
	}
	notifier := &mockNotifier{}

	uc := NewUpdateStatusUseCase(repo, itemsRepo(nil), &mockReservationService{}, notifier, zap.NewNop(), 3)

	_, err := uc.UpdateStatus(ctx, "dealer-1", "order-1", domain.OrderStatusAssigned)

	assert.NoError(t, err)
	assert.Len(t, notifier.Sent, 1)
	assert.NoError(t, notifier.Ctxs[0].Err())
}

func TestUpdateStatus_SkippingStatusRejected(t *testing.T) {
	order := domain.Order{ID: "order-1", DealerID: "dealer-1", FarmerID: "farmer-1", Status: domain.OrderStatusPlaced}
	notifier := &mockNotifier{}

	uc := NewUpdateStatusUseCase(dealerOrderRepo(order), itemsRepo(nil), &mockReservationService{}, notifier, zap.NewNop(), 3)

	_, err := uc.UpdateStatus(context.Background(), "dealer-1", "order-1", domain.OrderStatusDelivered)

	ce, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
	assert.Contains(t, ce.Message, "placed")
	assert.Contains(t, ce.Message, "delivered")
	assert.Empty(t, notifier.Sent)
}

func TestUpdateStatus_BackwardTransitionRejected(t *testing.T) {
	order := domain.Order{ID: "order-1", DealerID: "dealer-1", FarmerID: "farmer-1", Status: domain.OrderStatusReady}

	uc := NewUpdateStatusUseCase(dealerOrderRepo(order), itemsRepo(nil), &mockReservationService{}, &mockNotifier{}, zap.NewNop(), 3)

	_, err := uc.UpdateStatus(context.Background(), "dealer-1", "order-1", domain.OrderStatusAssigned)

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
}

func TestUpdateStatus_TerminalOrderRejected(t *testing.T) {
	order := domain.Order{ID: "order-1", DealerID: "dealer-1", FarmerID: "farmer-1", Status: domain.OrderStatusDelivered}

	uc := NewUpdateStatusUseCase(dealerOrderRepo(order), itemsRepo(nil), &mockReservationService{}, &mockNotifier{}, zap.NewNop(), 3)

	_, err := uc.UpdateStatus(context.Background(), "dealer-1", "order-1", domain.OrderStatusCancelled)

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
}

func TestUpdateStatus_CancellationReleasesStock(t *testing.T) {
	order := domain.Order{ID: "order-1", DealerID: "dealer-1", FarmerID: "farmer-1", Status: domain.OrderStatusAssigned}
	items := []domain.OrderItem{{ID: "item-1", OrderID: "order-1", ProductID: "prod-1", Quantity: 2, Price: 30}}

	var released *domain.Order
	reservationSvc := &mockReservationService{
		ReleaseAndCancelFunc: func(ctx context.Context, o domain.Order) error {
			released = &o
			return nil
		},
	}
	repo := dealerOrderRepo(order)
	repo.UpdateStatusFunc = func(ctx context.Context, id string, status domain.OrderStatus) error {
		t.Fatal("plain status update should not run for cancellation")
		return nil
	}
	notifier := &mockNotifier{}

	uc := NewUpdateStatusUseCase(repo, itemsRepo(items), reservationSvc, notifier, zap.NewNop(), 3)

	updated, err := uc.UpdateStatus(context.Background(), "dealer-1", "order-1", domain.OrderStatusCancelled)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, updated.Status)
	assert.NotNil(t, released)
	assert.Equal(t, items, released.Items)
	assert.Len(t, notifier.Sent, 1)
}

func TestUpdateStatus_OtherDealersOrderLooksNotFound(t *testing.T) {
	order := domain.Order{ID: "order-1", DealerID: "dealer-1", FarmerID: "farmer-1", Status: domain.OrderStatusPlaced}

	uc := NewUpdateStatusUseCase(dealerOrderRepo(order), itemsRepo(nil), &mockReservationService{}, &mockNotifier{}, zap.NewNop(), 3)

	_, err := uc.UpdateStatus(context.Background(), "dealer-2", "order-1", domain.OrderStatusAssigned)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
