package sector

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
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func (req *UpsertRequest) validate() string {
	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	if len(req.Origin) < 3 || len(req.Origin) > 4 {
		return "origin must be a 3-4 letter code"
	}
	if len(req.Destination) < 3 || len(req.Destination) > 4 {
		return "destination must be a 3-4 letter code"
	}
	if req.Origin == req.Destination {
		return "origin and destination must differ"
	}
	return ""
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		h.Log.Errorw("list sectors", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []PredefinedSector{}
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

	s := &PredefinedSector{Origin: req.Origin, Destination: req.Destination}
	if err := h.Repo.Insert(r.Context(), s); err != nil {
		if api.IsDuplicate(err) {
			api.WriteError(w, http.StatusConflict, "DUPLICATE", "sector route already exists")
			return
		}
		h.Log.Errorw("create sector", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusCreated, s)
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

	s := &PredefinedSector{ID: chi.URLParam(r, "id"), Origin: req.Origin, Destination: req.Destination}
	if err := h.Repo.Update(r.Context(), s); err != nil {
		if api.IsDuplicate(err) {
			api.WriteError(w, http.StatusConflict, "DUPLICATE", "sector route already exists")
			return
		}
		api.WriteStorageError(w, err, "sector not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, s)
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		// A sector referenced by booking sectors can't be removed.
		api.WriteStorageError(w, err, "sector not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
