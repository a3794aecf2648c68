package task

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"agencydesk/internal/api"
	"agencydesk/internal/deadline"
)

type Handlers struct {
	DB   *pgxpool.Pool
	Repo *Repository
	Log  *zap.SugaredLogger
}

type View struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	DueDate   string    `json:"dueDate,omitempty"`
	Done      bool      `json:"done"`
	AgentID   *string   `json:"agentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Deadline deadline.Classification `json:"deadline"`
}

func makeView(t Task, now time.Time) View {
	v := View{
		ID:        t.ID,
		Title:     t.Title,
		Notes:     t.Notes,
		Done:      t.Done,
		AgentID:   t.AgentID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Deadline:  deadline.Classify(t.DueDate, now),
	}
	if t.DueDate != nil {
		v.DueDate = t.DueDate.Format(deadline.DateFormat)
	}
	return v
}

// List returns tasks urgent-first: open tasks sorted by how soon they are
// due (overdue first, undated last), done tasks after all of them.
func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Repo.List(r.Context())
	if err != nil {
		h.Log.Errorw("list tasks", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	now := time.Now()
	items := make([]View, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, makeView(t, now))
	}
	sortViews(items)

	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func sortViews(items []View) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Done != items[j].Done {
			return !items[i].Done
		}
		return items[i].Deadline.Rank() < items[j].Deadline.Rank()
	})
}

type Request struct {
	Title   string  `json:"title"`
	Notes   string  `json:"notes"`
	DueDate string  `json:"dueDate"`
	Done    bool    `json:"done"`
	AgentID *string `json:"agentId"`
}

func (req *Request) validate() (*time.Time, string) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, "title is required"
	}
	if req.DueDate == "" {
		return nil, ""
	}
	d, err := time.Parse(deadline.DateFormat, req.DueDate)
	if err != nil {
		return nil, "dueDate must be YYYY-MM-DD"
	}
	return &d, ""
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	due, msg := req.validate()
	if msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	t := &Task{Title: req.Title, Notes: req.Notes, DueDate: due, AgentID: req.AgentID}
	if err := h.Repo.Insert(r.Context(), t); err != nil {
		api.WriteStorageError(w, err, "task not found")
		return
	}
	api.WriteJSON(w, http.StatusCreated, makeView(*t, time.Now()))
}

func (h Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	due, msg := req.validate()
	if msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	t := &Task{
		ID:      chi.URLParam(r, "id"),
		Title:   req.Title,
		Notes:   req.Notes,
		DueDate: due,
		Done:    req.Done,
		AgentID: req.AgentID,
	}
	if err := h.Repo.Update(r.Context(), t); err != nil {
		api.WriteStorageError(w, err, "task not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, makeView(*t, time.Now()))
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.WriteStorageError(w, err, "task not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
