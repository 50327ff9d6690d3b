package cart

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/restoadmin/ordering/internal/config"
	"github.com/restoadmin/ordering/internal/menu"
)

// Handler exposes the cart over HTTP. The business-hours gate lives here:
// the store itself accepts additions at any time.
type Handler struct {
	store   *Store
	catalog *menu.Catalog
	cfg     *config.Config
	logger  *logrus.Logger
	now     func() time.Time
}

func NewHandler(store *Store, catalog *menu.Catalog, cfg *config.Config, logger *logrus.Logger) *Handler {
	return &Handler{
		store:   store,
		catalog: catalog,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, h.store.Snapshot())
}

type addItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode add-item request")
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.cfg.IsOpenAt(h.now()) {
		h.respondWithError(w, http.StatusConflict,
			fmt.Sprintf("The restaurant is closed. Hours: %s", h.cfg.HoursLabel()))
		return
	}

	item, ok := h.catalog.Get(req.ID)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, "Menu item not found")
		return
	}
	if !item.Available {
		h.respondWithError(w, http.StatusConflict, "Menu item is not available")
		return
	}

	h.store.AddItem(item, req.Quantity, req.Notes)

	h.logger.WithFields(logrus.Fields{
		"item_id":    item.ID,
		"quantity":   req.Quantity,
		"cart_total": h.store.Total(),
	}).Info("Item added to cart")

	h.respondWithJSON(w, http.StatusOK, h.store.Snapshot())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.store.UpdateQuantity(mux.Vars(r)["id"], req.Quantity)
	h.respondWithJSON(w, http.StatusOK, h.store.Snapshot())
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req updateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.store.UpdateNotes(mux.Vars(r)["id"], req.Notes)
	h.respondWithJSON(w, http.StatusOK, h.store.Snapshot())
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveItem(mux.Vars(r)["id"])
	h.respondWithJSON(w, http.StatusOK, h.store.Snapshot())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	h.respondWithJSON(w, http.StatusOK, h.store.Snapshot())
}

type visibilityRequest struct {
	// Open is a pointer so a missing field means "toggle".
	Open *bool `json:"open"`
}

func (h *Handler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Open == nil {
		h.store.Toggle()
	} else {
		h.store.SetOpen(*req.Open)
	}
	h.respondWithJSON(w, http.StatusOK, h.store.Snapshot())
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
