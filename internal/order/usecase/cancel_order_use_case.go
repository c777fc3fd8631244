package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

type CancelOrderUseCase struct {
	orderRepo        OrderRepository
	orderItemRepo    OrderItemRepository
	reservationSvc   StockReservationService
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewCancelOrderUseCase(
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	reservationSvc StockReservationService,
	logger *zap.Logger,
	maxRetryAttempts int,
) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo:        orderRepo,
		orderItemRepo:    orderItemRepo,
		reservationSvc:   reservationSvc,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

// CancelOrder is the farmer-initiated cancellation. The lookup is
// ownership scoped, so another farmer's order id is indistinguishable
// from a nonexistent one.
func (uc *CancelOrderUseCase) CancelOrder(ctx context.Context, farmerID string, orderID string) (*domain.Order, error) {
	order, err := uc.orderRepo.FindByIDAndFarmer(ctx, orderID, farmerID)
	if err != nil {
		return nil, err
	}

	if !order.CancellableByFarmer() {
		return nil, apperrors.NewConflictError("order cannot be cancelled at this stage")
	}

	items, err := uc.orderItemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	if err := uc.releaseWithRetry(ctx, *order); err != nil {
		return nil, err
	}

	order.Status = domain.OrderStatusCancelled
	return order, nil
}

func (uc *CancelOrderUseCase) releaseWithRetry(ctx context.Context, order domain.Order) error {
	for attempt := 1; attempt <= uc.maxRetryAttempts; attempt++ {
		err := uc.reservationSvc.ReleaseAndCancel(ctx, order)
		if err == nil {
			return nil
		}

		if !isDeadlockError(err) {
			return err
		}

		if attempt < uc.maxRetryAttempts {
			uc.logger.Warn("deadlock detected, retrying",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", uc.maxRetryAttempts),
				zap.String("orderId", order.ID),
			)
			time.Sleep(backoffFor(attempt))
		}
	}

	return apperrors.NewDeadlockError("max retries exceeded")
}
