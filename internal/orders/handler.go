package orders

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/restoadmin/ordering/pkg/models"
)

// Handler is the operator-facing order management surface: list, search,
// inspect, advance and the daily dashboard.
type Handler struct {
	store  *Store
	logger *logrus.Logger
}

func NewHandler(store *Store, logger *logrus.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// ListOrders returns orders newest-first, optionally filtered by ?status=
// and a ?q= term matched against order id, customer name and phone.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := models.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		h.respondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	orders := h.store.Search(r.URL.Query().Get("q"), status)

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, ok := h.store.GetByID(orderID)
	if !ok {
		h.logger.WithField("order_id", orderID).Warn("Order not found")
		h.respondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	h.respondWithJSON(w, http.StatusOK, order)
}

// AdvanceOrder moves the order to the single next state in the linear
// progression. Delivered orders have no next state and are rejected.
func (h *Handler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, ok := h.store.GetByID(orderID)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	next, ok := NextStatus(order.Status)
	if !ok {
		h.respondWithError(w, http.StatusConflict, "Order is already delivered")
		return
	}

	h.store.UpdateStatus(orderID, next)

	h.logger.WithFields(logrus.Fields{
		"order_id":   orderID,
		"old_status": string(order.Status),
		"new_status": string(next),
	}).Info("Order advanced")

	order.Status = next
	h.respondWithJSON(w, http.StatusOK, order)
}

type setStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// SetStatus replaces the order status with an explicit value. The store
// accepts any known status; the request is validated here because it
// arrives over the wire.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.Status.Valid() {
		h.respondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	orderID := mux.Vars(r)["id"]
	if !h.store.UpdateStatus(orderID, req.Status) {
		h.respondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	order, _ := h.store.GetByID(orderID)
	h.respondWithJSON(w, http.StatusOK, order)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, h.store.TodayStats())
}

func (h *Handler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func (h *Handler) respondWithError(w http.ResponseWriter, code int, message string) {
	h.respondWithJSON(w, code, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
