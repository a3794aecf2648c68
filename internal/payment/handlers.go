package payment

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"agencydesk/internal/api"
	"agencydesk/internal/audit"
	"agencydesk/internal/slipstore"
	"agencydesk/internal/tourbooking"
	"agencydesk/pkg/config"
	"agencydesk/pkg/db"
	"agencydesk/pkg/metrics"
)

type Handlers struct {
	Cfg     config.Config
	DB      *pgxpool.Pool
	Repo    *Repository
	Store   *slipstore.Store
	Metrics *metrics.Metrics
	Log     *zap.SugaredLogger
}

type View struct {
	ID              string             `json:"id"`
	TourBookingID   string             `json:"tourBookingId"`
	StatusAtPayment tourbooking.Status `json:"statusAtPayment"`
	UploadedAt      time.Time          `json:"uploadedAt"`
	SlipURL         string             `json:"slipUrl"`
	Verification    Classification     `json:"verification"`
}

func (h Handlers) makeView(rec Record, now time.Time) View {
	ttl := time.Duration(h.Cfg.SlipURLTTLMinutes) * time.Minute
	return View{
		ID:              rec.ID,
		TourBookingID:   rec.TourBookingID,
		StatusAtPayment: rec.StatusAtPayment,
		UploadedAt:      rec.UploadedAt,
		SlipURL:         slipstore.SignURL(rec.SlipPath, h.Cfg.SlipURLSecret, ttl, now),
		Verification:    ClassifyVerification(rec),
	}
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.ListByTourBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Errorw("list payments", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	now := time.Now()
	items := make([]View, 0, len(records))
	for _, rec := range records {
		items = append(items, h.makeView(rec, now))
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

const maxSlipBytes = 10 << 20

// Upload stores the slip file, then appends a ledger row with the tour
// booking's status snapshotted under a row lock. The file is written before
// the transaction; an orphaned file on insert failure is harmless, an
// orphaned ledger row pointing at no file is not.
func (h Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	agent := api.AgentFromContext(r.Context())
	if agent == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing agent identity")
		return
	}

	tourBookingID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxSlipBytes); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "expected multipart form with a slip file")
		return
	}
	file, header, err := r.FormFile("slip")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "slip file is required")
		return
	}
	defer file.Close()

	slipPath, err := slipstore.Save(h.Store, file, header.Filename)
	if err != nil {
		if errors.Is(err, slipstore.ErrUnsupportedType) {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "slip must be a jpg, png or pdf")
			return
		}
		h.Log.Errorw("store slip", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	var rec *Record
	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		t, err := tourbooking.GetForUpdate(r.Context(), tx, tourBookingID)
		if err != nil {
			return err
		}
		rec, err = Insert(r.Context(), tx, t.ID, t.Status, slipPath)
		if err != nil {
			return err
		}
		return audit.Insert(r.Context(), tx, agent.ID, "payment_record", &rec.ID,
			audit.ActionSlipUploaded, map[string]any{"tourBookingId": t.ID, "statusAtPayment": t.Status})
	})
	if err != nil {
		api.WriteStorageError(w, err, "tour booking not found")
		return
	}

	h.Metrics.SlipUploads.Inc()
	api.WriteJSON(w, http.StatusCreated, h.makeView(*rec, time.Now()))
}
