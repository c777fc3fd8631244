package order

import (
	"database/sql"

	"go.uber.org/zap"

	"agromart/internal/config"
	"agromart/internal/order/controller"
	orderrepo "agromart/internal/order/repository"
	"agromart/internal/order/service"
	"agromart/internal/order/usecase"
	productrepo "agromart/internal/product/repository"
	shoprepo "agromart/internal/shop/repository"
	userrepo "agromart/internal/user/repository"
)

func NewModule(db *sql.DB, cfg *config.Config, notifier usecase.Notifier, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	productRepo := productrepo.NewMySQLProductRepository(db)
	shopRepo := shoprepo.NewMySQLShopRepository(db)
	userRepo := userrepo.NewMySQLUserRepository(db)

	reservationSvc := service.NewReservationService(
		db,
		productRepo,
		orderRepo,
		orderItemRepo,
		logger,
		cfg.Order.ReservationTxTimeout,
	)

	placeUC := usecase.NewPlaceOrderUseCase(
		reservationSvc,
		shopRepo,
		userRepo,
		notifier,
		logger,
		cfg.Order.MaxRetryAttempts,
	)
	cancelUC := usecase.NewCancelOrderUseCase(
		orderRepo,
		orderItemRepo,
		reservationSvc,
		logger,
		cfg.Order.MaxRetryAttempts,
	)
	statusUC := usecase.NewUpdateStatusUseCase(
		orderRepo,
		orderItemRepo,
		reservationSvc,
		notifier,
		logger,
		cfg.Order.MaxRetryAttempts,
	)
	listUC := usecase.NewListOrdersUseCase(orderRepo, orderItemRepo)

	return controller.NewOrderController(placeUC, cancelUC, statusUC, listUC, logger)
}
