package customer

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
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (req *UpsertRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" {
		return "name is required"
	}
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		return "email is malformed"
	}
	return ""
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		h.Log.Errorw("list customers", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Customer{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteStorageError(w, err, "customer not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, c)
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

	c := &Customer{Name: req.Name, Email: req.Email, Phone: req.Phone, Notes: req.Notes}
	if err := h.Repo.Insert(r.Context(), c); err != nil {
		h.Log.Errorw("create customer", "err", err)
		api.WriteStorageError(w, err, "customer not found")
		return
	}
	api.WriteJSON(w, http.StatusCreated, c)
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

	c := &Customer{ID: chi.URLParam(r, "id"), Name: req.Name, Email: req.Email, Phone: req.Phone, Notes: req.Notes}
	if err := h.Repo.Update(r.Context(), c); err != nil {
		api.WriteStorageError(w, err, "customer not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, c)
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		// FK violations surface as STILL_REFERENCED: a customer with
		// bookings can't be removed.
		api.WriteStorageError(w, err, "customer not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
