package repository

import (
	"context"
	"database/sql"
	"fmt"

	"agromart/internal/domain"
	"agromart/internal/errors"
)

type MySQLShopRepository struct {
	db *sql.DB
}

func NewMySQLShopRepository(db *sql.DB) *MySQLShopRepository {
	return &MySQLShopRepository{db: db}
}

func (r *MySQLShopRepository) FindByID(ctx context.Context, id string) (*domain.Shop, error) {
	query := `
		SELECT id, ownerId, name, location, status, createdAt
		FROM Shops
		WHERE id = ?
	`

	var shop domain.Shop
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&shop.ID, &shop.OwnerID, &shop.Name, &shop.Location, &shop.Status,
		&shop.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("shop with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying shop by id: %w", err)
	}

	return &shop, nil
}

func (r *MySQLShopRepository) FindByIDAndOwner(ctx context.Context, id string, ownerID string) (*domain.Shop, error) {
	query := `
		SELECT id, ownerId, name, location, status, createdAt
		FROM Shops
		WHERE id = ? AND ownerId = ?
	`

	var shop domain.Shop
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&shop.ID, &shop.OwnerID, &shop.Name, &shop.Location, &shop.Status,
		&shop.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("shop with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying shop by id and owner: %w", err)
	}

	return &shop, nil
}
