package verifier

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"agencydesk/internal/api"
	"agencydesk/internal/payment"
	"agencydesk/pkg/config"
	"agencydesk/pkg/db"
	"agencydesk/pkg/metrics"
)

const maxCallbackBytes = 64 << 10

type Handlers struct {
	Cfg     config.Config
	DB      *pgxpool.Pool
	Metrics *metrics.Metrics
	Log     *zap.SugaredLogger
}

// CallbackRequest is what the external slip OCR service posts back after
// processing an uploaded slip. Exactly one of the verified payload or the
// error is expected.
type CallbackRequest struct {
	PaymentRecordID string `json:"paymentRecordId"`
	Verified        bool   `json:"verified"`
	Amount          string `json:"amount"`
	PaymentDate     string `json:"paymentDate"`
	Error           string `json:"error"`
}

const paymentDateFormat = "2006-01-02"

// Callback records the verification outcome for a payment record. The
// outcome is write-once; a repeated callback for the same record gets 409.
func (h Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCallbackBytes))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unreadable body")
		return
	}

	if !VerifySignature(body, r.Header.Get(SignatureHeader), h.Cfg.VerifierSecret) {
		h.Metrics.VerifierCallbacks.WithLabelValues("rejected").Inc()
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid signature")
		return
	}

	var req CallbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if req.PaymentRecordID == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "paymentRecordId is required")
		return
	}

	now := time.Now()
	outcome := "failed"

	if req.Verified {
		outcome = "verified"
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil || amount.LessThanOrEqual(decimal.Zero) {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "amount must be a positive decimal")
			return
		}
		paymentDate, err := time.Parse(paymentDateFormat, req.PaymentDate)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "paymentDate must be YYYY-MM-DD")
			return
		}
		err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
			return payment.RecordVerified(r.Context(), tx, req.PaymentRecordID, amount.Round(2).String(), paymentDate, now)
		})
		if err != nil {
			h.writeOutcomeError(w, req.PaymentRecordID, err)
			return
		}
	} else {
		if strings.TrimSpace(req.Error) == "" {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "error is required when verified is false")
			return
		}
		err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
			return payment.RecordFailed(r.Context(), tx, req.PaymentRecordID, strings.TrimSpace(req.Error), now)
		})
		if err != nil {
			h.writeOutcomeError(w, req.PaymentRecordID, err)
			return
		}
	}

	h.Metrics.VerifierCallbacks.WithLabelValues(outcome).Inc()
	h.Log.Infow("verifier callback recorded", "paymentRecordId", req.PaymentRecordID, "outcome", outcome)
	api.WriteJSON(w, http.StatusOK, map[string]any{"recorded": true, "outcome": outcome})
}

// The write-once UPDATE matches zero rows both for an unknown record and for
// a record that already has its outcome; we cannot tell them apart without a
// second query, and 409 is the safe answer for a verifier that retries.
func (h Handlers) writeOutcomeError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		api.WriteError(w, http.StatusConflict, "ALREADY_RECORDED", "payment record missing or outcome already recorded")
		return
	}
	h.Log.Errorw("record verifier outcome", "paymentRecordId", id, "err", err)
	api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}
