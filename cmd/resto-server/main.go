package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/restoadmin/ordering/internal/cart"
	"github.com/restoadmin/ordering/internal/checkout"
	"github.com/restoadmin/ordering/internal/config"
	"github.com/restoadmin/ordering/internal/menu"
	"github.com/restoadmin/ordering/internal/orders"
	"github.com/restoadmin/ordering/internal/websocket"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	cfg, err := config.Load(getEnv("ENV_FILE", ".env"))
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	catalog := menu.NewCatalog(menu.Seed())

	wsHub := websocket.NewHub(logger)
	go wsHub.Run()

	cartStore := cart.NewStore(logger)
	cartStore.SetNotifier(wsHub)

	orderStore := orders.NewStore(logger)
	orderStore.SetNotifier(wsHub)

	flow := checkout.NewFlow(cartStore, orderStore, cfg, logger)

	menuHandler := menu.NewHandler(catalog, logger)
	cartHandler := cart.NewHandler(cartStore, catalog, cfg, logger)
	checkoutHandler := checkout.NewHandler(flow, cfg, logger)
	adminHandler := orders.NewHandler(orderStore, logger)

	router := mux.NewRouter()
	router.HandleFunc("/health", healthCheck).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/config", publicConfig(cfg)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/status", restaurantStatus(cfg)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/menu", menuHandler.GetMenu).Methods("GET", "OPTIONS")

	router.HandleFunc("/api/cart", cartHandler.GetCart).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/cart", cartHandler.ClearCart).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/api/cart/items", cartHandler.AddItem).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/cart/items/{id}", cartHandler.UpdateQuantity).Methods("PUT", "OPTIONS")
	router.HandleFunc("/api/cart/items/{id}", cartHandler.RemoveItem).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/api/cart/items/{id}/notes", cartHandler.UpdateNotes).Methods("PUT", "OPTIONS")
	router.HandleFunc("/api/cart/visibility", cartHandler.SetVisibility).Methods("PUT", "OPTIONS")

	router.HandleFunc("/api/checkout", checkoutHandler.GetState).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/checkout/proceed", checkoutHandler.Proceed).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/checkout/back", checkoutHandler.Back).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/checkout/place", checkoutHandler.PlaceOrder).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/checkout/new", checkoutHandler.NewOrder).Methods("POST", "OPTIONS")

	router.HandleFunc("/api/admin/orders", adminHandler.ListOrders).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/admin/orders/{id}", adminHandler.GetOrder).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/admin/orders/{id}/advance", adminHandler.AdvanceOrder).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/admin/orders/{id}/status", adminHandler.SetStatus).Methods("PUT", "OPTIONS")
	router.HandleFunc("/api/admin/stats", adminHandler.GetStats).Methods("GET", "OPTIONS")

	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	router.Use(corsMiddleware())
	router.Use(loggingMiddleware(logger))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":       cfg.HTTPPort,
			"restaurant": cfg.Name,
			"hours":      cfg.HoursLabel(),
			"menu_items": catalog.Len(),
		}).Info("Starting ordering server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server gracefully stopped")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "resto-server",
	})
}

// publicConfig exposes the pieces of configuration the menu and checkout
// pages need to render themselves.
func publicConfig(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"name":             cfg.Name,
			"phone":            cfg.Phone,
			"address":          cfg.Address,
			"hours":            cfg.HoursLabel(),
			"min_order_amount": cfg.MinOrderAmount,
			"delivery_fee":     cfg.DeliveryFee,
			"payment_methods":  cfg.PaymentMethods,
			"categories":       cfg.Categories,
		})
	}
}

func restaurantStatus(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"open":  cfg.IsOpenAt(time.Now()),
			"hours": cfg.HoursLabel(),
		})
	}
}

func loggingMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).Milliseconds(),
			}).Info("Request completed")
		})
	}
}

func corsMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
