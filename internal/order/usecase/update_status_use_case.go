package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

type UpdateStatusUseCase struct {
	orderRepo        OrderRepository
	orderItemRepo    OrderItemRepository
	reservationSvc   StockReservationService
	notifier         Notifier
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewUpdateStatusUseCase(
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	reservationSvc StockReservationService,
	notifier Notifier,
	logger *zap.Logger,
	maxRetryAttempts int,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orderRepo:        orderRepo,
		orderItemRepo:    orderItemRepo,
		reservationSvc:   reservationSvc,
		notifier:         notifier,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

// UpdateStatus drives the dealer-side state machine. Transitions follow
// the forward lattice; cancellation additionally restores the stock the
// order reserved. Double restoration is guarded inside the release
// transaction by the conditional status flip.
func (uc *UpdateStatusUseCase) UpdateStatus(
	ctx context.Context,
	dealerID string,
	orderID string,
	newStatus domain.OrderStatus,
) (*domain.Order, error) {
	order, err := uc.orderRepo.FindByIDAndDealer(ctx, orderID, dealerID)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if !oldStatus.CanTransitionTo(newStatus) {
		return nil, apperrors.NewConflictError(fmt.Sprintf(
			"cannot transition order from %s to %s", oldStatus, newStatus,
		))
	}

	if newStatus == domain.OrderStatusCancelled {
		items, err := uc.orderItemRepo.FindByOrderID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		order.Items = items

		if err := uc.releaseWithRetry(ctx, *order); err != nil {
			return nil, err
		}
	} else {
		if err := uc.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
			return nil, err
		}
	}

	order.Status = newStatus

	// The transition is committed; the farmer notification must outlive
	// the request context.
	uc.notifier.Send(context.WithoutCancel(ctx), order.FarmerID,
		fmt.Sprintf("Your order #%s status changed from %s to %s", shortOrderID(order.ID), oldStatus, newStatus),
		domain.NotificationTypeOrder,
	)

	uc.logger.Info("order status updated",
		zap.String("orderId", orderID),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(newStatus)),
	)

	return order, nil
}

func (uc *UpdateStatusUseCase) releaseWithRetry(ctx context.Context, order domain.Order) error {
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
