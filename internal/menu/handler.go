package menu

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/restoadmin/ordering/pkg/models"
)

type Handler struct {
	catalog *Catalog
	logger  *logrus.Logger
}

func NewHandler(catalog *Catalog, logger *logrus.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// GetMenu returns the catalog, optionally filtered by ?category=.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.URL.Query().Get("category"))
	if category != "" && category != "all" && !category.Valid() {
		h.respondWithError(w, http.StatusBadRequest, "Unknown category")
		return
	}

	items := h.catalog.ByCategory(category)

	h.logger.WithFields(logrus.Fields{
		"category": string(category),
		"count":    len(items),
	}).Debug("Menu requested")

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
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
