package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agromart/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, n domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string, userID string) error
}

// Notifier records user-facing events. Sends are fire-and-forget: a
// failed insert is logged and swallowed so workflow transitions never
// fail on notification delivery.
type Notifier struct {
	repo   Repository
	logger *zap.Logger
}

func NewNotifier(repo Repository, logger *zap.Logger) *Notifier {
	return &Notifier{
		repo:   repo,
		logger: logger,
	}
}

func (n *Notifier) Send(ctx context.Context, userID string, message string, notifType domain.NotificationType) {
	record := domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      notifType,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := n.repo.Insert(ctx, record); err != nil {
		n.logger.Warn("failed to record notification",
			zap.String("userId", userID),
			zap.String("type", string(notifType)),
			zap.Error(err),
		)
	}
}

func (n *Notifier) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return n.repo.ListByUser(ctx, userID)
}

func (n *Notifier) MarkRead(ctx context.Context, id string, userID string) error {
	return n.repo.MarkRead(ctx, id, userID)
}
