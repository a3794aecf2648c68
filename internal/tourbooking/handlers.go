package tourbooking

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"agencydesk/internal/api"
	"agencydesk/internal/audit"
	"agencydesk/internal/badge"
	"agencydesk/internal/deadline"
	"agencydesk/internal/tourproduct"
	"agencydesk/pkg/db"
)

type Handlers struct {
	DB       *pgxpool.Pool
	Repo     *Repository
	Products *tourproduct.Repository
	Log      *zap.SugaredLogger
}

type View struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customerName"`
	TourProductID   string        `json:"tourProductId"`
	TourProductName string        `json:"tourProductName,omitempty"`
	Status          Status        `json:"status"`
	StatusLabel     string        `json:"statusLabel"`
	StatusVariant   badge.Variant `json:"statusVariant"`
	BasePricePerPax string        `json:"basePricePerPax"`
	Pax             int           `json:"pax"`
	Addons          []Addon       `json:"addons"`
	Totals
	BookingDate     string    `json:"bookingDate"`
	TravelStartDate string    `json:"travelStartDate"`
	TravelEndDate   string    `json:"travelEndDate"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func makeView(t TourPackageBooking) View {
	base, err := decimal.NewFromString(t.BasePricePerPax)
	if err != nil {
		// Stored NUMERIC can't be unparseable; degrade to zero rather than
		// failing the whole listing if it somehow is.
		base = decimal.Zero
	}
	addons := t.Addons
	if addons == nil {
		addons = []Addon{}
	}
	return View{
		ID:              t.ID,
		CustomerName:    t.CustomerName,
		TourProductID:   t.TourProductID,
		TourProductName: t.TourProductName,
		Status:          t.Status,
		StatusLabel:     t.Status.Label(),
		StatusVariant:   t.Status.Variant(),
		BasePricePerPax: t.BasePricePerPax,
		Pax:             t.Pax,
		Addons:          addons,
		Totals:          ComputeTotals(base, addons, t.Pax),
		BookingDate:     t.BookingDate.Format(deadline.DateFormat),
		TravelStartDate: t.TravelStart.Format(deadline.DateFormat),
		TravelEndDate:   t.TravelEnd.Format(deadline.DateFormat),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Repo.List(r.Context())
	if err != nil {
		h.Log.Errorw("list tour bookings", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	items := make([]View, 0, len(bookings))
	for _, t := range bookings {
		items = append(items, makeView(t))
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteStorageError(w, err, "tour booking not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, makeView(*t))
}

type CreateRequest struct {
	CustomerName    string  `json:"customerName"`
	TourProductID   string  `json:"tourProductId"`
	BasePricePerPax string  `json:"basePricePerPax"`
	Pax             int     `json:"pax"`
	Addons          []Addon `json:"addons"`
	BookingDate     string  `json:"bookingDate"`
	TravelStartDate string  `json:"travelStartDate"`
	TravelEndDate   string  `json:"travelEndDate"`
}

func parseDate(s, field string) (time.Time, string) {
	d, err := time.Parse(deadline.DateFormat, s)
	if err != nil {
		return time.Time{}, field + " must be YYYY-MM-DD"
	}
	return d, ""
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "customerName is required")
		return
	}
	if req.TourProductID == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "tourProductId is required")
		return
	}
	if req.Pax <= 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "pax must be positive")
		return
	}
	if err := ValidateAddons(req.Addons); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	bookingDate, msg := parseDate(req.BookingDate, "bookingDate")
	if msg == "" {
		var start, end time.Time
		if start, msg = parseDate(req.TravelStartDate, "travelStartDate"); msg == "" {
			if end, msg = parseDate(req.TravelEndDate, "travelEndDate"); msg == "" && end.Before(start) {
				msg = "travelEndDate must not precede travelStartDate"
			}
		}
		if msg == "" {
			h.create(w, r, req, bookingDate, start, end)
			return
		}
	}
	api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
}

func (h Handlers) create(w http.ResponseWriter, r *http.Request, req CreateRequest, bookingDate, start, end time.Time) {
	product, err := h.Products.GetByID(r.Context(), req.TourProductID)
	if err != nil {
		api.WriteStorageError(w, err, "tour product not found")
		return
	}

	// Base price defaults to the product list price; a per-booking price can
	// be negotiated in.
	basePrice := product.BasePrice
	if strings.TrimSpace(req.BasePricePerPax) != "" {
		p, err := decimal.NewFromString(req.BasePricePerPax)
		if err != nil || p.LessThanOrEqual(decimal.Zero) {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "basePricePerPax must be a positive amount")
			return
		}
		basePrice = p.Round(2).String()
	}

	t := &TourPackageBooking{
		CustomerName:    req.CustomerName,
		TourProductID:   req.TourProductID,
		TourProductName: product.Name,
		Status:          StatusOpen,
		BasePricePerPax: basePrice,
		Pax:             req.Pax,
		Addons:          req.Addons,
		BookingDate:     bookingDate,
		TravelStart:     start,
		TravelEnd:       end,
	}

	// Short ids collide occasionally; retry with a fresh id.
	for attempt := 0; attempt < 3; attempt++ {
		t.ID = NewID()
		err = h.Repo.Insert(r.Context(), t)
		if err == nil || !api.IsDuplicate(err) {
			break
		}
	}
	if err != nil {
		h.Log.Errorw("create tour booking", "err", err)
		api.WriteStorageError(w, err, "tour product not found")
		return
	}

	api.WriteJSON(w, http.StatusCreated, makeView(*t))
}

type UpdateRequest struct {
	CustomerName    string  `json:"customerName"`
	Status          string  `json:"status"`
	BasePricePerPax string  `json:"basePricePerPax"`
	Pax             int     `json:"pax"`
	Addons          []Addon `json:"addons"`
	BookingDate     string  `json:"bookingDate"`
	TravelStartDate string  `json:"travelStartDate"`
	TravelEndDate   string  `json:"travelEndDate"`
}

// Update edits booking fields and optionally moves the status one legal
// lifecycle step. Illegal jumps (open -> complete) are rejected.
func (h Handlers) Update(w http.ResponseWriter, r *http.Request) {
	agent := api.AgentFromContext(r.Context())
	if agent == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing agent identity")
		return
	}

	id := chi.URLParam(r, "id")

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	current, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		api.WriteStorageError(w, err, "tour booking not found")
		return
	}

	next := current.Status
	if req.Status != "" && Status(req.Status) != current.Status {
		parsed, err := ParseStatus(req.Status)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
			return
		}
		if !CanTransition(current.Status, parsed) {
			api.WriteError(w, http.StatusConflict, "ILLEGAL_TRANSITION",
				"cannot move from "+current.Status.Label()+" to "+parsed.Label())
			return
		}
		next = parsed
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "customerName is required")
		return
	}
	if req.Pax <= 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "pax must be positive")
		return
	}
	if err := ValidateAddons(req.Addons); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	basePrice := current.BasePricePerPax
	if strings.TrimSpace(req.BasePricePerPax) != "" {
		p, err := decimal.NewFromString(req.BasePricePerPax)
		if err != nil || p.LessThanOrEqual(decimal.Zero) {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "basePricePerPax must be a positive amount")
			return
		}
		basePrice = p.Round(2).String()
	}

	bookingDate, msg := parseDate(req.BookingDate, "bookingDate")
	if msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}
	start, msg := parseDate(req.TravelStartDate, "travelStartDate")
	if msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}
	end, msg := parseDate(req.TravelEndDate, "travelEndDate")
	if msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}
	if end.Before(start) {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "travelEndDate must not precede travelStartDate")
		return
	}

	t := &TourPackageBooking{
		ID:              id,
		CustomerName:    req.CustomerName,
		TourProductID:   current.TourProductID,
		TourProductName: current.TourProductName,
		Status:          next,
		BasePricePerPax: basePrice,
		Pax:             req.Pax,
		Addons:          req.Addons,
		BookingDate:     bookingDate,
		TravelStart:     start,
		TravelEnd:       end,
	}

	if next == StatusClosed && current.Status != StatusClosed {
		err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
			if _, err := GetForUpdate(r.Context(), tx, id); err != nil {
				return err
			}
			if err := UpdateTx(r.Context(), tx, t); err != nil {
				return err
			}
			return audit.Insert(r.Context(), tx, agent.ID, "tour_booking", &id,
				audit.ActionTourBookingClosed, map[string]any{"from": current.Status})
		})
	} else {
		err = h.Repo.Update(r.Context(), t)
	}
	if err != nil {
		api.WriteStorageError(w, err, "tour booking not found")
		return
	}

	h.Get(w, r)
}
