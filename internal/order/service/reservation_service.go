package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agromart/internal/domain"
	"agromart/internal/dto"
	apperrors "agromart/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type ProductRepository interface {
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Product, error)
	ReserveStock(ctx context.Context, tx *sql.Tx, id string, quantity int) error
	RestoreStock(ctx context.Context, tx *sql.Tx, id string, quantity int) error
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error
	MarkCancelledTx(ctx context.Context, tx *sql.Tx, id string) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) error
}

// ReservationService runs the stock side of the order workflow. Every
// operation is all-or-nothing: reservation locks each product row,
// validates it, and decrements stock inside a single RepeatableRead
// transaction, so a failing line rolls back every earlier line.
type ReservationService struct {
	db            TransactionManager
	productRepo   ProductRepository
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewReservationService(
	db TransactionManager,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *ReservationService {
	return &ReservationService{
		db:            db,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
		txTimeout:     txTimeout,
	}
}

// ReserveAndCreate validates every line against the catalog, reserves
// stock, and persists the order with its price snapshots. The caller
// must pass lines sorted by product id ascending to keep lock order
// consistent across concurrent placements.
func (s *ReservationService) ReserveAndCreate(ctx context.Context, order domain.Order, lines []dto.OrderLine) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Rollback on any exit path. MySQL ignores rollback after commit.
	defer tx.Rollback()

	totalAmount := 0.0
	items := make([]domain.OrderItem, 0, len(lines))

	for _, line := range lines {
		item, err := s.reserveLine(txCtx, tx, order.ID, line)
		if err != nil {
			s.logger.Warn("line reservation failed",
				zap.String("orderId", order.ID),
				zap.String("productId", line.ProductID),
				zap.Int("quantity", line.Quantity),
				zap.Error(err),
			)
			return nil, err
		}

		totalAmount += item.Price * float64(item.Quantity)
		items = append(items, *item)
	}

	order.TotalAmount = totalAmount
	order.Items = items

	if err := s.orderRepo.Insert(txCtx, tx, order); err != nil {
		s.logger.Error("failed to insert order", zap.String("orderId", order.ID), zap.Error(err))
		return nil, err
	}

	for _, item := range items {
		if err := s.orderItemRepo.Insert(txCtx, tx, item); err != nil {
			s.logger.Error("failed to insert order item", zap.String("orderId", order.ID), zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("orderId", order.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order reserved and created",
		zap.String("orderId", order.ID),
		zap.Int("lineCount", len(items)),
		zap.Float64("totalAmount", totalAmount),
	)

	return &order, nil
}

func (s *ReservationService) reserveLine(ctx context.Context, tx *sql.Tx, orderID string, line dto.OrderLine) (*domain.OrderItem, error) {
	product, err := s.productRepo.FindByIDForUpdate(ctx, tx, line.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.IsPublished || !product.IsAvailable {
		return nil, apperrors.NewUnavailableError(fmt.Sprintf("product %s is not available", product.Name))
	}

	if product.Quantity < line.Quantity {
		return nil, apperrors.NewInsufficientStockError(fmt.Sprintf(
			"insufficient stock for %s: available %d, requested %d",
			product.Name, product.Quantity, line.Quantity,
		))
	}

	// The conditional update re-checks the quantity guard, so the
	// decrement stays atomic even without the row lock above.
	if err := s.productRepo.ReserveStock(ctx, tx, line.ProductID, line.Quantity); err != nil {
		return nil, err
	}

	// Price snapshot: captured under the row lock, immutable afterwards.
	return &domain.OrderItem{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		Price:     product.Price,
	}, nil
}

// ReleaseAndCancel marks the order cancelled and restores the exact
// quantities it reserved, in one transaction. Products deleted since
// placement are skipped silently. The status flip runs first and is
// conditional on the order not already being cancelled, so concurrent
// cancellations restore stock at most once; the loser gets a
// ConflictError.
func (s *ReservationService) ReleaseAndCancel(ctx context.Context, order domain.Order) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.orderRepo.MarkCancelledTx(txCtx, tx, order.ID); err != nil {
		s.logger.Warn("order not cancellable", zap.String("orderId", order.ID), zap.Error(err))
		return err
	}

	for _, item := range order.Items {
		if err := s.productRepo.RestoreStock(txCtx, tx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error("failed to restore stock",
				zap.String("orderId", order.ID),
				zap.String("productId", item.ProductID),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("orderId", order.ID), zap.Error(err))
		return err
	}

	s.logger.Info("order cancelled and stock restored",
		zap.String("orderId", order.ID),
		zap.Int("lineCount", len(order.Items)),
	)

	return nil
}
