package repository

import (
	"context"
	"database/sql"
	"fmt"

	"agromart/internal/domain"
	"agromart/internal/errors"
)

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

func (r *MySQLUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, email, mobile, role, village, district, state, isActive, createdAt
		FROM Users
		WHERE id = ?
	`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Mobile, &user.Role,
		&user.Village, &user.District, &user.State, &user.IsActive,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}

	return &user, nil
}

func (r *MySQLUserRepository) FindActiveAdmins(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, name, email, mobile, role, village, district, state, isActive, createdAt
		FROM Users
		WHERE role = ? AND isActive = 1
	`

	rows, err := r.db.QueryContext(ctx, query, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("querying active admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Mobile, &user.Role,
			&user.Village, &user.District, &user.State, &user.IsActive,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		admins = append(admins, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return admins, nil
}
