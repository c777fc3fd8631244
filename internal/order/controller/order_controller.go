package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"agromart/internal/auth"
	"agromart/internal/domain"
	"agromart/internal/dto"
	apperrors "agromart/internal/errors"
)

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, farmerID string, farmerName string, req dto.PlaceOrderRequest) (*domain.Order, error)
}

type CancelOrderUseCase interface {
	CancelOrder(ctx context.Context, farmerID string, orderID string) (*domain.Order, error)
}

type UpdateStatusUseCase interface {
	UpdateStatus(ctx context.Context, dealerID string, orderID string, newStatus domain.OrderStatus) (*domain.Order, error)
}

type ListOrdersUseCase interface {
	ListFarmerOrders(ctx context.Context, farmerID string) ([]domain.Order, error)
	ListDealerOrders(ctx context.Context, dealerID string) ([]domain.Order, error)
	ListAllOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
}

type OrderController struct {
	placeUC  PlaceOrderUseCase
	cancelUC CancelOrderUseCase
	statusUC UpdateStatusUseCase
	listUC   ListOrdersUseCase
	logger   *zap.Logger
}

func NewOrderController(
	placeUC PlaceOrderUseCase,
	cancelUC CancelOrderUseCase,
	statusUC UpdateStatusUseCase,
	listUC ListOrdersUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		placeUC:  placeUC,
		cancelUC: cancelUC,
		statusUC: statusUC,
		listUC:   listUC,
		logger:   logger,
	}
}

func (c *OrderController) HandlePlace(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	principal, _ := auth.PrincipalFromContext(r.Context())

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := validatePlaceOrderRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve)
		return
	}

	order, err := c.placeUC.PlaceOrder(r.Context(), principal.ID, principal.Name, req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.PlaceOrderResponse{
		Success: true,
		Message: "order placed successfully",
		Order:   toOrderDTO(*order),
	})
}

func (c *OrderController) HandleFarmerOrders(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())

	orders, err := c.listUC.ListFarmerOrders(r.Context(), principal.ID)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.OrderListResponse{
		Success: true,
		Orders:  toOrderDTOs(orders),
	})
}

func (c *OrderController) HandleCancel(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	principal, _ := auth.PrincipalFromContext(r.Context())
	orderID := chi.URLParam(r, "orderId")

	order, err := c.cancelUC.CancelOrder(r.Context(), principal.ID, orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.PlaceOrderResponse{
		Success: true,
		Message: "order cancelled successfully",
		Order:   toOrderDTO(*order),
	})
}

func (c *OrderController) HandleDealerOrders(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())

	orders, err := c.listUC.ListDealerOrders(r.Context(), principal.ID)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.OrderListResponse{
		Success: true,
		Orders:  toOrderDTOs(orders),
	})
}

func (c *OrderController) HandleDealerUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	principal, _ := auth.PrincipalFromContext(r.Context())
	orderID := chi.URLParam(r, "orderId")

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	newStatus := domain.OrderStatus(req.Status)
	if !newStatus.IsValid() {
		c.writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	order, err := c.statusUC.UpdateStatus(r.Context(), principal.ID, orderID, newStatus)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.PlaceOrderResponse{
		Success: true,
		Message: "order status updated successfully",
		Order:   toOrderDTO(*order),
	})
}

func (c *OrderController) HandleAdminAll(w http.ResponseWriter, r *http.Request) {
	var status *domain.OrderStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.OrderStatus(v)
		if !s.IsValid() {
			c.writeError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
		status = &s
	}

	orders, err := c.listUC.ListAllOrders(r.Context(), status)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	count := len(orders)
	c.writeJSON(w, http.StatusOK, dto.OrderListResponse{
		Success: true,
		Orders:  toOrderDTOs(orders),
		Count:   &count,
	})
}

func validatePlaceOrderRequest(req dto.PlaceOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.ShopID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "shopId",
			Message: "shopId is required",
		})
	}

	if len(req.Products) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "products",
			Message: "products must not be empty",
		})
	}

	if len(req.Products) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "products",
			Message: "products exceeds maximum of 100",
		})
	}

	seen := make(map[string]bool)
	for idx, item := range req.Products {
		if item.ProductID == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "products[" + strconv.Itoa(idx) + "].productId",
				Message: "productId is required",
			})
		}

		if seen[item.ProductID] {
			details = append(details, apperrors.ValidationDetail{
				Field:   "products[" + strconv.Itoa(idx) + "].productId",
				Message: "productId must not be duplicated",
			})
		}
		seen[item.ProductID] = true

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "products[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func toOrderDTO(order domain.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return dto.OrderDTO{
		ID:              order.ID,
		FarmerID:        order.FarmerID,
		DealerID:        order.DealerID,
		ShopID:          order.ShopID,
		Items:           items,
		Status:          string(order.Status),
		PaymentMode:     string(order.PaymentMode),
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     order.TotalAmount,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func toOrderDTOs(orders []domain.Order) []dto.OrderDTO {
	result := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderDTO(order))
	}
	return result
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, nfe.Message)
		return
	}
	if ue, ok := apperrors.IsUnavailableError(err); ok {
		c.writeError(w, http.StatusBadRequest, ue.Message)
		return
	}
	if ise, ok := apperrors.IsInsufficientStockError(err); ok {
		c.writeError(w, http.StatusBadRequest, ise.Message)
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, http.StatusBadRequest, ce.Message)
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve)
		return
	}
	if fe, ok := apperrors.IsForbiddenError(err); ok {
		c.writeError(w, http.StatusForbidden, fe.Message)
		return
	}
	if de, ok := apperrors.IsDeadlockError(err); ok {
		c.writeError(w, http.StatusConflict, de.Message)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
}

type validationErrorResponse struct {
	Success bool                         `json:"success"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, ve *apperrors.ValidationError) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Success: false,
		Message: ve.Message,
		Details: ve.Details,
	})
}

func (c *OrderController) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
