package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agromart/internal/domain"
	"agromart/internal/dto"
	apperrors "agromart/internal/errors"
)

type PlaceOrderUseCase struct {
	reservationSvc   StockReservationService
	shopRepo         ShopRepository
	userRepo         UserRepository
	notifier         Notifier
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewPlaceOrderUseCase(
	reservationSvc StockReservationService,
	shopRepo ShopRepository,
	userRepo UserRepository,
	notifier Notifier,
	logger *zap.Logger,
	maxRetryAttempts int,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		reservationSvc:   reservationSvc,
		shopRepo:         shopRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

// PlaceOrder validates the request against the shop and catalog,
// reserves stock atomically, and creates the order with price
// snapshots. Notifications go out only after the order is committed.
func (uc *PlaceOrderUseCase) PlaceOrder(
	ctx context.Context,
	farmerID string,
	farmerName string,
	req dto.PlaceOrderRequest,
) (*domain.Order, error) {
	uc.logger.Info("place order started",
		zap.String("farmerId", farmerID),
		zap.String("shopId", req.ShopID),
		zap.Int("lineCount", len(req.Products)),
	)

	shop, err := uc.shopRepo.FindByID(ctx, req.ShopID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("shop not found")
		}
		return nil, err
	}

	paymentMode := domain.PaymentMode(req.PaymentMode)
	if req.PaymentMode == "" {
		paymentMode = domain.PaymentModeCOD
	}
	if !paymentMode.IsValid() {
		return nil, apperrors.NewValidationError("paymentMode must be cod or online")
	}

	lines := make([]dto.OrderLine, len(req.Products))
	for i, p := range req.Products {
		lines[i] = dto.OrderLine{ProductID: p.ProductID, Quantity: p.Quantity}
	}

	// Lock products in a stable order to avoid deadlocks between
	// concurrent placements touching the same products.
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	now := time.Now().UTC()
	order := domain.Order{
		ID:              uuid.NewString(),
		FarmerID:        farmerID,
		DealerID:        shop.OwnerID,
		ShopID:          shop.ID,
		Status:          domain.OrderStatusPlaced,
		PaymentMode:     paymentMode,
		DeliveryAddress: req.DeliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := uc.reserveWithRetry(ctx, order, lines)
	if err != nil {
		return nil, err
	}

	// The order is committed; notifications must outlive a client that
	// disconnects right after placement.
	notifyCtx := context.WithoutCancel(ctx)

	uc.notifier.Send(notifyCtx, shop.OwnerID,
		fmt.Sprintf("New order #%s received from %s", shortOrderID(created.ID), farmerName),
		domain.NotificationTypeOrder,
	)

	admins, err := uc.userRepo.FindActiveAdmins(notifyCtx)
	if err != nil {
		// The order is already committed; losing admin notifications is
		// not worth failing the placement.
		uc.logger.Warn("failed to load admins for notification", zap.Error(err))
	}
	for _, admin := range admins {
		uc.notifier.Send(notifyCtx, admin.ID,
			fmt.Sprintf("Farmer %s placed a new order", farmerName),
			domain.NotificationTypeOrder,
		)
	}

	return created, nil
}

func (uc *PlaceOrderUseCase) reserveWithRetry(ctx context.Context, order domain.Order, lines []dto.OrderLine) (*domain.Order, error) {
	for attempt := 1; attempt <= uc.maxRetryAttempts; attempt++ {
		created, err := uc.reservationSvc.ReserveAndCreate(ctx, order, lines)
		if err == nil {
			return created, nil
		}

		if !isDeadlockError(err) {
			return nil, err
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

	return nil, apperrors.NewDeadlockError("max retries exceeded")
}

// shortOrderID yields the human-facing order reference used in
// notification messages.
func shortOrderID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
