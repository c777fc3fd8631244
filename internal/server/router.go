package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"agromart/internal/auth"
	"agromart/internal/domain"
	"agromart/internal/notification"
	ordercontroller "agromart/internal/order/controller"
	"agromart/internal/product"
)

func NewRouter(
	authMW *auth.Middleware,
	orderCtrl *ordercontroller.OrderController,
	productCtrl *product.Controller,
	notificationCtrl *notification.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authMW.Authenticate)

		r.Route("/orders", func(r chi.Router) {
			r.With(authMW.RequireRole(domain.RoleFarmer)).Post("/place", orderCtrl.HandlePlace)
			r.With(authMW.RequireRole(domain.RoleFarmer)).Get("/farmer/my-orders", orderCtrl.HandleFarmerOrders)
			r.With(authMW.RequireRole(domain.RoleFarmer)).Patch("/farmer/{orderId}/cancel", orderCtrl.HandleCancel)
			r.With(authMW.RequireRole(domain.RoleDealer)).Get("/dealer/my-orders", orderCtrl.HandleDealerOrders)
			r.With(authMW.RequireRole(domain.RoleDealer)).Patch("/dealer/{orderId}/status", orderCtrl.HandleDealerUpdateStatus)
			r.With(authMW.RequireRole(domain.RoleAdmin)).Get("/admin/all", orderCtrl.HandleAdminAll)
		})

		r.Route("/products", func(r chi.Router) {
			r.With(authMW.RequireRole(domain.RoleFarmer, domain.RoleAdmin)).Get("/farmer/list", productCtrl.HandleBrowse)
			r.With(authMW.RequireRole(domain.RoleDealer)).Get("/dealer/list", productCtrl.HandleDealerList)
			r.With(authMW.RequireRole(domain.RoleDealer)).Post("/dealer/add", productCtrl.HandleAdd)
			r.With(authMW.RequireRole(domain.RoleDealer)).Put("/dealer/{productId}", productCtrl.HandleUpdate)
			r.With(authMW.RequireRole(domain.RoleDealer)).Delete("/dealer/{productId}", productCtrl.HandleDelete)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationCtrl.HandleList)
			r.Patch("/{notificationId}/read", notificationCtrl.HandleMarkRead)
		})
	})

	return r
}
