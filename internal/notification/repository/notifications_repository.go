package repository

import (
	"context"
	"database/sql"
	"fmt"

	"agromart/internal/domain"
	"agromart/internal/errors"
)

type MySQLNotificationRepository struct {
	db *sql.DB
}

func NewMySQLNotificationRepository(db *sql.DB) *MySQLNotificationRepository {
	return &MySQLNotificationRepository{db: db}
}

func (r *MySQLNotificationRepository) Insert(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO Notifications (id, userId, type, message, isRead, createdAt)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.UserID, n.Type, n.Message, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}

	return nil
}

func (r *MySQLNotificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	query := `
		SELECT id, userId, type, message, isRead, createdAt
		FROM Notifications
		WHERE userId = ?
		ORDER BY createdAt DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification rows: %w", err)
	}

	return notifications, nil
}

// MarkRead is ownership scoped: marking another user's notification
// behaves like it does not exist.
func (r *MySQLNotificationRepository) MarkRead(ctx context.Context, id string, userID string) error {
	query := `UPDATE Notifications SET isRead = 1 WHERE id = ? AND userId = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("notification with id %s not found", id))
	}

	return nil
}
