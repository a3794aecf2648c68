package fareclass

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"agencydesk/internal/api"
)

type Handlers struct {
	Repo *Repository
	Log  *zap.SugaredLogger
}

type UpsertRequest struct {
	Name        string `json:"name"`
	Airline     string `json:"airline"`
	Description string `json:"description"`
}

func (req *UpsertRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Airline = strings.TrimSpace(req.Airline)
	if req.Name == "" {
		return "name is required"
	}
	return ""
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		h.Log.Errorw("list fare classes", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []FareClass{}
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

	f := &FareClass{Name: req.Name, Airline: req.Airline, Description: req.Description}
	if err := h.Repo.Insert(r.Context(), f); err != nil {
		if api.IsDuplicate(err) {
			api.WriteError(w, http.StatusConflict, "DUPLICATE", "fare class name already exists")
			return
		}
		h.Log.Errorw("create fare class", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusCreated, f)
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

	f := &FareClass{ID: chi.URLParam(r, "id"), Name: req.Name, Airline: req.Airline, Description: req.Description}
	if err := h.Repo.Update(r.Context(), f); err != nil {
		if api.IsDuplicate(err) {
			api.WriteError(w, http.StatusConflict, "DUPLICATE", "fare class name already exists")
			return
		}
		api.WriteStorageError(w, err, "fare class not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, f)
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.WriteStorageError(w, err, "fare class not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
