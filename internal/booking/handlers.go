package booking

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"agencydesk/internal/api"
	"agencydesk/internal/audit"
	"agencydesk/internal/badge"
	"agencydesk/internal/deadline"
	"agencydesk/internal/events"
	"agencydesk/pkg/db"
)

type Handlers struct {
	DB   *pgxpool.Pool
	Repo *Repository
	Log  *zap.SugaredLogger
}

type SectorView struct {
	ID                 string       `json:"id"`
	PredefinedSectorID string       `json:"predefinedSectorId"`
	Origin             string       `json:"origin"`
	Destination        string       `json:"destination"`
	TravelDate         string       `json:"travelDate"`
	Status             SectorStatus `json:"status"`
	FlightNumber       string       `json:"flightNumber,omitempty"`
	NumPax             int          `json:"numPax"`
	Position           int          `json:"position"`
}

type View struct {
	ID             string                  `json:"id"`
	Reference      string                  `json:"reference"`
	CustomerID     string                  `json:"customerId"`
	CustomerName   string                  `json:"customerName,omitempty"`
	BookingType    Type                    `json:"bookingType"`
	Deadline       *string                 `json:"deadline"`
	DeadlineStatus deadline.Classification `json:"deadlineStatus"`
	Status         Status                  `json:"status"`
	StatusLabel    string                  `json:"statusLabel"`
	StatusVariant  badge.Variant           `json:"statusVariant"`
	Route          string                  `json:"route"`
	TravelDates    string                  `json:"travelDates"`
	NumPax         int                     `json:"numPax"`
	Sectors        []SectorView            `json:"sectors,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

func makeView(b Booking, sectors []Sector, now time.Time, includeSectors bool) View {
	var dl *string
	if b.Deadline != nil {
		s := b.Deadline.Format(deadline.DateFormat)
		dl = &s
	}
	v := View{
		ID:             b.ID,
		Reference:      b.Reference,
		CustomerID:     b.CustomerID,
		CustomerName:   b.CustomerName,
		BookingType:    b.Type,
		Deadline:       dl,
		DeadlineStatus: deadline.Classify(b.Deadline, now),
		Status:         b.Status,
		StatusLabel:    b.Status.Label(),
		StatusVariant:  b.Status.Variant(),
		Route:          FormatSectorRoute(b.Type, sectors),
		TravelDates:    FormatTravelDates(b.Type, sectors),
		NumPax:         b.NumPax,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if includeSectors {
		v.Sectors = make([]SectorView, 0, len(sectors))
		for _, s := range sectors {
			v.Sectors = append(v.Sectors, SectorView{
				ID:                 s.ID,
				PredefinedSectorID: s.PredefinedSectorID,
				Origin:             s.Origin,
				Destination:        s.Destination,
				TravelDate:         s.TravelDate.Format(deadline.DateFormat),
				Status:             s.Status,
				FlightNumber:       s.FlightNumber,
				NumPax:             s.NumPax,
				Position:           s.Position,
			})
		}
	}
	return v
}

// List returns all bookings sorted urgency-first: overdue deadlines at the
// top, then by days until due, no-deadline rows last.
func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Repo.List(r.Context())
	if err != nil {
		h.Log.Errorw("list bookings", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	sectorsByBooking, err := h.Repo.SectorsByBookings(r.Context(), ids)
	if err != nil {
		h.Log.Errorw("list booking sectors", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	now := time.Now()
	items := make([]View, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, makeView(b, sectorsByBooking[b.ID], now, false))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DeadlineStatus.Rank() < items[j].DeadlineStatus.Rank()
	})

	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

type SectorInput struct {
	PredefinedSectorID string `json:"predefinedSectorId"`
	TravelDate         string `json:"travelDate"`
	Status             string `json:"status"`
	FlightNumber       string `json:"flightNumber"`
	NumPax             int    `json:"numPax"`
}

type CreateRequest struct {
	CustomerID  string        `json:"customerId"`
	Reference   string        `json:"reference"`
	BookingType string        `json:"bookingType"`
	Deadline    string        `json:"deadline"`
	NumPax      int           `json:"numPax"`
	Sectors     []SectorInput `json:"sectors"`
}

func parseSectorInputs(inputs []SectorInput) ([]Sector, error) {
	out := make([]Sector, 0, len(inputs))
	for i, in := range inputs {
		if in.PredefinedSectorID == "" {
			return nil, fmt.Errorf("sectors[%d]: predefinedSectorId is required", i)
		}
		status, err := ParseSectorStatus(in.Status)
		if err != nil {
			return nil, fmt.Errorf("sectors[%d]: %v", i, err)
		}
		travelDate, err := time.Parse(deadline.DateFormat, in.TravelDate)
		if err != nil {
			return nil, fmt.Errorf("sectors[%d]: invalid travelDate", i)
		}
		if in.NumPax <= 0 {
			return nil, fmt.Errorf("sectors[%d]: numPax must be positive", i)
		}
		out = append(out, Sector{
			PredefinedSectorID: in.PredefinedSectorID,
			TravelDate:         travelDate,
			Status:             status,
			FlightNumber:       strings.TrimSpace(in.FlightNumber),
			NumPax:             in.NumPax,
			Position:           i,
		})
	}
	return out, nil
}

// Create inserts the booking and its sectors in a single transaction. The
// overall status is derived from the sector statuses before insert.
func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	agent := api.AgentFromContext(r.Context())
	if agent == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing agent identity")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	bType, err := ParseType(req.BookingType)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}
	if req.CustomerID == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "customerId is required")
		return
	}
	if req.NumPax <= 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "numPax must be positive")
		return
	}
	if len(req.Sectors) != bType.SectorCount() {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED",
			fmt.Sprintf("%s bookings require exactly %d sector(s)", bType, bType.SectorCount()))
		return
	}

	sectors, err := parseSectorInputs(req.Sectors)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	var dl *time.Time
	if req.Deadline != "" {
		d, err := time.Parse(deadline.DateFormat, req.Deadline)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid deadline")
			return
		}
		dl = &d
	}

	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = NewReference()
	}

	b := &Booking{
		CustomerID: req.CustomerID,
		Reference:  reference,
		Type:       bType,
		Deadline:   dl,
		Status:     DeriveOverallStatus(sectors),
		NumPax:     req.NumPax,
	}

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		if err := Insert(r.Context(), tx, b); err != nil {
			return err
		}
		for i := range sectors {
			sectors[i].BookingID = b.ID
			if err := InsertSector(r.Context(), tx, &sectors[i]); err != nil {
				return err
			}
		}
		return events.Insert(r.Context(), tx, b.ID, "BOOKING_CREATED", "Booking created", agent.Email,
			b.CreatedAt, map[string]any{"reference": b.Reference, "status": b.Status})
	})
	if err != nil {
		if api.IsDuplicate(err) {
			api.WriteError(w, http.StatusConflict, "DUPLICATE", "booking reference already exists")
			return
		}
		h.Log.Errorw("create booking", "err", err)
		api.WriteStorageError(w, err, "customer or sector not found")
		return
	}

	api.WriteJSON(w, http.StatusCreated, makeView(*b, sectors, time.Now(), true))
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		api.WriteStorageError(w, err, "booking not found")
		return
	}
	sectors, err := h.Repo.SectorsByBooking(r.Context(), id)
	if err != nil {
		h.Log.Errorw("get booking sectors", "bookingId", id, "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, makeView(*b, sectors, time.Now(), true))
}

type UpdateRequest struct {
	CustomerID string `json:"customerId"`
	Deadline   string `json:"deadline"`
	NumPax     int    `json:"numPax"`
}

func (h Handlers) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if req.CustomerID == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "customerId is required")
		return
	}
	if req.NumPax <= 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "numPax must be positive")
		return
	}

	var dl *time.Time
	if req.Deadline != "" {
		d, err := time.Parse(deadline.DateFormat, req.Deadline)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid deadline")
			return
		}
		dl = &d
	}

	b := &Booking{ID: id, CustomerID: req.CustomerID, Deadline: dl, NumPax: req.NumPax}
	if err := h.Repo.Update(r.Context(), b); err != nil {
		api.WriteStorageError(w, err, "booking not found")
		return
	}

	h.Get(w, r)
}

type UpdateSectorRequest struct {
	SectorInput
}

// UpdateSector mutates one sector and re-derives the booking rollup status in
// the same transaction, unless the booking has been manually overridden to
// Ticketed or Cancelled.
func (h Handlers) UpdateSector(w http.ResponseWriter, r *http.Request) {
	agent := api.AgentFromContext(r.Context())
	if agent == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing agent identity")
		return
	}

	bookingID := chi.URLParam(r, "id")
	sectorID := chi.URLParam(r, "sectorId")

	var req UpdateSectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	parsed, err := parseSectorInputs([]SectorInput{req.SectorInput})
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", strings.TrimPrefix(err.Error(), "sectors[0]: "))
		return
	}
	sector := parsed[0]

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := GetForUpdate(r.Context(), tx, bookingID)
		if err != nil {
			return err
		}
		if err := UpdateSector(r.Context(), tx, bookingID, sectorID, &sector); err != nil {
			return err
		}

		if !RollupApplies(b.Status) {
			return nil
		}
		sectors, err := SectorsTx(r.Context(), tx, bookingID)
		if err != nil {
			return err
		}
		derived := DeriveOverallStatus(sectors)
		if derived == b.Status {
			return nil
		}
		if err := SetStatus(r.Context(), tx, bookingID, derived); err != nil {
			return err
		}
		return events.Insert(r.Context(), tx, bookingID, "BOOKING_STATUS_ROLLED_UP",
			"Booking status re-derived from sectors", agent.Email, time.Now(),
			map[string]any{"from": b.Status, "to": derived})
	})
	if err != nil {
		api.WriteStorageError(w, err, "booking or sector not found")
		return
	}

	h.Get(w, r)
}

type OverrideStatusRequest struct {
	Status string `json:"status"`
}

// OverrideStatus sets a manual terminal status (Ticketed or Cancelled). The
// booking leaves rollup control from this point on.
func (h Handlers) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	agent := api.AgentFromContext(r.Context())
	if agent == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing agent identity")
		return
	}

	id := chi.URLParam(r, "id")

	var req OverrideStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}
	if !status.CanOverrideTo() {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "status can only be overridden to ticketed or cancelled")
		return
	}

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}
		if err := SetStatus(r.Context(), tx, id, status); err != nil {
			return err
		}
		now := time.Now()
		if err := events.Insert(r.Context(), tx, id, "BOOKING_STATUS_OVERRIDDEN",
			"Booking status manually overridden", agent.Email, now,
			map[string]any{"from": b.Status, "to": status}); err != nil {
			return err
		}
		return audit.Insert(r.Context(), tx, agent.ID, "booking", &id,
			audit.ActionBookingStatusOverride, map[string]any{"from": b.Status, "to": status})
	})
	if err != nil {
		api.WriteStorageError(w, err, "booking not found")
		return
	}

	h.Get(w, r)
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	agent := api.AgentFromContext(r.Context())
	if agent == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing agent identity")
		return
	}

	id := chi.URLParam(r, "id")

	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		if err := Delete(r.Context(), tx, id); err != nil {
			return err
		}
		return audit.Insert(r.Context(), tx, agent.ID, "booking", &id, audit.ActionBookingDeleted, nil)
	})
	if err != nil {
		api.WriteStorageError(w, err, "booking not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handlers) Events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		api.WriteStorageError(w, err, "booking not found")
		return
	}

	items, err := events.ListByBooking(r.Context(), h.DB, id)
	if err != nil {
		h.Log.Errorw("list booking events", "bookingId", id, "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []events.Event{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}
