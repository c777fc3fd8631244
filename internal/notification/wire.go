package notification

import (
	"database/sql"

	"go.uber.org/zap"

	notifrepo "agromart/internal/notification/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) (*Notifier, *Controller) {
	repo := notifrepo.NewMySQLNotificationRepository(db)
	notifier := NewNotifier(repo, logger)

	return notifier, NewController(notifier, logger)
}
