package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"agromart/internal/domain"
	"agromart/internal/errors"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

const productColumns = `id, shopId, dealerId, name, category, description, price,
	quantity, warehouseQuantity, unit, imageUrl, isPublished, isAvailable,
	createdAt, updatedAt`

func scanProduct(row interface{ Scan(...interface{}) error }) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.ShopID, &p.DealerID, &p.Name, &p.Category, &p.Description,
		&p.Price, &p.Quantity, &p.WarehouseQuantity, &p.Unit, &p.ImageURL,
		&p.IsPublished, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Product WHERE id = ?`, productColumns)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return p, nil
}

// FindByIDForUpdate locks the product row for the duration of the
// enclosing transaction.
func (r *MySQLProductRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Product WHERE id = ? FOR UPDATE`, productColumns)

	p, err := scanProduct(tx.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product for update: %w", err)
	}

	return p, nil
}

// ReserveStock decrements farmer-visible and warehouse stock in one
// conditional update. The quantity guard makes the decrement atomic:
// zero rows affected means the available stock changed underneath us.
func (r *MySQLProductRepository) ReserveStock(ctx context.Context, tx *sql.Tx, id string, quantity int) error {
	// MySQL evaluates SET assignments left to right against already
	// updated values, so the isAvailable check reads the new quantity.
	// The WHERE guard still sees the pre-update quantity.
	query := `
		UPDATE Product
		SET quantity = quantity - ?,
		    warehouseQuantity = CASE
		        WHEN warehouseQuantity IS NULL THEN NULL
		        ELSE GREATEST(warehouseQuantity - ?, 0)
		    END,
		    isAvailable = IF(quantity <= 0, 0, isAvailable)
		WHERE id = ? AND quantity >= ?
	`

	result, err := tx.ExecContext(ctx, query, quantity, quantity, id, quantity)
	if err != nil {
		return fmt.Errorf("reserving stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewInsufficientStockError(fmt.Sprintf("insufficient stock for product %s", id))
	}

	return nil
}

// RestoreStock reverses a reservation and re-asserts availability.
func (r *MySQLProductRepository) RestoreStock(ctx context.Context, tx *sql.Tx, id string, quantity int) error {
	query := `
		UPDATE Product
		SET quantity = quantity + ?,
		    warehouseQuantity = CASE
		        WHEN warehouseQuantity IS NULL THEN NULL
		        ELSE warehouseQuantity + ?
		    END,
		    isAvailable = 1
		WHERE id = ?
	`

	_, err := tx.ExecContext(ctx, query, quantity, quantity, id)
	if err != nil {
		return fmt.Errorf("restoring stock: %w", err)
	}

	return nil
}

func (r *MySQLProductRepository) Insert(ctx context.Context, p domain.Product) error {
	query := `
		INSERT INTO Product (id, shopId, dealerId, name, category, description, price,
		                     quantity, warehouseQuantity, unit, imageUrl, isPublished,
		                     isAvailable, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.ShopID, p.DealerID, p.Name, p.Category, p.Description, p.Price,
		p.Quantity, p.WarehouseQuantity, p.Unit, p.ImageURL, p.IsPublished,
		p.IsAvailable, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

func (r *MySQLProductRepository) Update(ctx context.Context, p domain.Product) error {
	query := `
		UPDATE Product
		SET name = ?, category = ?, description = ?, price = ?, quantity = ?,
		    warehouseQuantity = ?, unit = ?, imageUrl = ?, isPublished = ?,
		    isAvailable = ?, updatedAt = ?
		WHERE id = ? AND dealerId = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Category, p.Description, p.Price, p.Quantity,
		p.WarehouseQuantity, p.Unit, p.ImageURL, p.IsPublished,
		p.IsAvailable, p.UpdatedAt,
		p.ID, p.DealerID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", p.ID))
	}

	return nil
}

func (r *MySQLProductRepository) Delete(ctx context.Context, id string, dealerID string) error {
	query := `DELETE FROM Product WHERE id = ? AND dealerId = ?`

	result, err := r.db.ExecContext(ctx, query, id, dealerID)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}

	return nil
}

func (r *MySQLProductRepository) FindByDealer(ctx context.Context, dealerID string) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Product WHERE dealerId = ? ORDER BY createdAt DESC`, productColumns)

	rows, err := r.db.QueryContext(ctx, query, dealerID)
	if err != nil {
		return nil, fmt.Errorf("querying dealer products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// FindAvailable returns published, available products with positive
// stock, narrowed by the optional browse filters.
func (r *MySQLProductRepository) FindAvailable(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	conditions := []string{"isPublished = 1", "isAvailable = 1", "quantity > 0"}
	args := []interface{}{}

	if filter.Search != "" {
		conditions = append(conditions, "(name LIKE ? OR description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "price <= ?")
		args = append(args, *filter.MaxPrice)
	}

	query := fmt.Sprintf(`SELECT %s FROM Product WHERE %s ORDER BY createdAt DESC`,
		productColumns, strings.Join(conditions, " AND "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying available products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}
