package repository

import (
	"context"
	"database/sql"
	"fmt"

	"agromart/internal/domain"
	"agromart/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, farmerId, dealerId, shopId, status, paymentMode,
	deliveryAddress, totalAmount, createdAt, updatedAt`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.FarmerID, &order.DealerID, &order.ShopID,
		&order.Status, &order.PaymentMode, &order.DeliveryAddress,
		&order.TotalAmount, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	query := `
		INSERT INTO Orders (id, farmerId, dealerId, shopId, status, paymentMode,
		                    deliveryAddress, totalAmount, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(ctx, query,
		order.ID, order.FarmerID, order.DealerID, order.ShopID,
		order.Status, order.PaymentMode, order.DeliveryAddress,
		order.TotalAmount, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByIDAndFarmer(ctx context.Context, id string, farmerID string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE id = ? AND farmerId = ?`, orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id, farmerID))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id and farmer: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindByIDAndDealer(ctx context.Context, id string, dealerID string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE id = ? AND dealerId = ?`, orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id, dealerID))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id and dealer: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) ListByFarmer(ctx context.Context, farmerID string) ([]domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE farmerId = ? ORDER BY createdAt DESC`, orderColumns)
	return r.list(ctx, query, farmerID)
}

func (r *MySQLOrderRepository) ListByDealer(ctx context.Context, dealerID string) ([]domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE dealerId = ? ORDER BY createdAt DESC`, orderColumns)
	return r.list(ctx, query, dealerID)
}

func (r *MySQLOrderRepository) ListAll(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	if status != nil {
		query := fmt.Sprintf(`SELECT %s FROM Orders WHERE status = ? ORDER BY createdAt DESC`, orderColumns)
		return r.list(ctx, query, *status)
	}

	query := fmt.Sprintf(`SELECT %s FROM Orders ORDER BY createdAt DESC`, orderColumns)
	return r.list(ctx, query)
}

func (r *MySQLOrderRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// MarkCancelledTx flips the order to cancelled inside a
// stock-restoration transaction. The status guard makes cancellation
// first-writer-wins: a racing second cancel affects zero rows and must
// not restore stock again.
func (r *MySQLOrderRepository) MarkCancelledTx(ctx context.Context, tx *sql.Tx, id string) error {
	query := `UPDATE Orders SET status = ? WHERE id = ? AND status <> ?`

	result, err := tx.ExecContext(ctx, query, domain.OrderStatusCancelled, id, domain.OrderStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancelling order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewConflictError("order is already cancelled")
	}

	return nil
}

// UpdateStatus updates the status outside any transaction, for
// transitions with no stock side effect.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}

	return nil
}
