package notification

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"agromart/internal/auth"
	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

type Controller struct {
	notifier *Notifier
	logger   *zap.Logger
}

func NewController(notifier *Notifier, logger *zap.Logger) *Controller {
	return &Controller{
		notifier: notifier,
		logger:   logger,
	}
}

type notificationDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())

	found, err := c.notifier.ListForUser(r.Context(), principal.ID)
	if err != nil {
		c.logger.Error("listing notifications", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "failed to fetch notifications")
		return
	}

	notifications := make([]notificationDTO, 0, len(found))
	for _, n := range found {
		notifications = append(notifications, toDTO(n))
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"notifications": notifications,
	})
}

func (c *Controller) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())
	notificationID := chi.URLParam(r, "notificationId")

	if err := c.notifier.MarkRead(r.Context(), notificationID, principal.ID); err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeError(w, http.StatusNotFound, nfe.Message)
			return
		}
		c.logger.Error("marking notification read", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "failed to update notification")
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "notification marked as read",
	})
}

func toDTO(n domain.Notification) notificationDTO {
	return notificationDTO{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func (c *Controller) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
