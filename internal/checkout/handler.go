package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/restoadmin/ordering/internal/config"
	"github.com/restoadmin/ordering/internal/format"
	"github.com/restoadmin/ordering/pkg/models"
)

type Handler struct {
	flow   *Flow
	cfg    *config.Config
	logger *logrus.Logger
}

func NewHandler(flow *Flow, cfg *config.Config, logger *logrus.Logger) *Handler {
	return &Handler{flow: flow, cfg: cfg, logger: logger}
}

// GetState returns the flow position, the entered fields and everything
// the checkout panel needs to render itself.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	d := h.flow.Details()

	deliveryFee := 0
	if d.DeliveryType == models.DeliveryDelivery {
		deliveryFee = h.cfg.DeliveryFee
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"step":           h.flow.Step(),
		"customer":       d.Customer,
		"delivery_type":  d.DeliveryType,
		"payment_method": d.PaymentMethod,
		"notes":          d.Notes,
		"errors":         h.flow.Errors(),
		"can_proceed":    h.flow.CanProceed(),
		"delivery_fee":   deliveryFee,
		"last_order_id":  h.flow.LastOrderID(),
	})
}

func (h *Handler) Proceed(w http.ResponseWriter, r *http.Request) {
	if err := h.flow.Proceed(); err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			h.respondWithError(w, http.StatusConflict, "The cart is empty")
		case errors.Is(err, ErrBelowMinimum):
			h.respondWithError(w, http.StatusConflict,
				fmt.Sprintf("Minimum order amount for delivery: %s", format.Price(h.cfg.MinOrderAmount)))
		default:
			h.respondWithError(w, http.StatusConflict, err.Error())
		}
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"step": h.flow.Step()})
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	if err := h.flow.Back(); err != nil {
		h.respondWithError(w, http.StatusConflict, err.Error())
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"step": h.flow.Step()})
}

type placeOrderRequest struct {
	Customer      models.Customer      `json:"customer"`
	DeliveryType  models.DeliveryType  `json:"delivery_type"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Notes         string               `json:"notes"`
}

// PlaceOrder validates the entered fields and finalizes the order. A
// validation failure returns 422 with one message per failing field and
// leaves the cart untouched.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode place-order request")
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.DeliveryType != "" && !req.DeliveryType.Valid() {
		h.respondWithError(w, http.StatusBadRequest, "Unknown delivery type")
		return
	}
	if req.PaymentMethod != "" && !req.PaymentMethod.Valid() {
		h.respondWithError(w, http.StatusBadRequest, "Unknown payment method")
		return
	}

	order, err := h.flow.Place(Details{
		Customer:      req.Customer,
		DeliveryType:  req.DeliveryType,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			h.respondWithJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"success": false,
				"message": "Validation failed",
				"errors":  h.flow.Errors(),
			})
		case errors.Is(err, ErrWrongStep):
			h.respondWithError(w, http.StatusConflict, "Checkout has not been started")
		default:
			h.respondWithError(w, http.StatusInternalServerError, "Failed to place order")
		}
		return
	}

	h.respondWithJSON(w, http.StatusCreated, order)
}

func (h *Handler) NewOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.flow.NewOrder(); err != nil {
		h.respondWithError(w, http.StatusConflict, err.Error())
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"step": h.flow.Step()})
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
