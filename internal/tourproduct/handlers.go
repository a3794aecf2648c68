package tourproduct

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"agencydesk/internal/api"
)

type Handlers struct {
	Repo *Repository
	Log  *zap.SugaredLogger
}

type UpsertRequest struct {
	Name         string `json:"name"`
	Destination  string `json:"destination"`
	DurationDays int    `json:"durationDays"`
	BasePrice    string `json:"basePrice"`
}

func (req *UpsertRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Name == "" {
		return "name is required"
	}
	if req.DurationDays <= 0 {
		return "durationDays must be positive"
	}
	price, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		return "basePrice is not a valid amount"
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return "basePrice must be > 0"
	}
	req.BasePrice = price.Round(2).String()
	return ""
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		h.Log.Errorw("list tour products", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []TourProduct{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if msg := req.validate(); msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	p := &TourProduct{Name: req.Name, Destination: req.Destination, DurationDays: req.DurationDays, BasePrice: req.BasePrice}
	if err := h.Repo.Insert(r.Context(), p); err != nil {
		h.Log.Errorw("create tour product", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusCreated, p)
}

func (h Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if msg := req.validate(); msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	p := &TourProduct{ID: chi.URLParam(r, "id"), Name: req.Name, Destination: req.Destination, DurationDays: req.DurationDays, BasePrice: req.BasePrice}
	if err := h.Repo.Update(r.Context(), p); err != nil {
		api.WriteStorageError(w, err, "tour product not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, p)
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		// A product referenced by tour bookings can't be removed.
		api.WriteStorageError(w, err, "tour product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
