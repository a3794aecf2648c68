package tourbooking

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TourPackageBooking is a tour sale keyed by a short human-readable id.
// BasePricePerPax is a decimal string; derived totals are computed on read.
type TourPackageBooking struct {
	ID              string
	CustomerName    string
	TourProductID   string
	TourProductName string
	Status          Status
	BasePricePerPax string
	Pax             int
	Addons          []Addon
	BookingDate     time.Time
	TravelStart     time.Time
	TravelEnd       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const columns = `
t.id, t.customer_name, t.tour_product_id, p.name, t.status, t.base_price_per_pax::text,
t.pax, COALESCE(t.addons, '[]'::jsonb), t.booking_date, t.travel_start_date, t.travel_end_date,
t.created_at, t.updated_at
`

func (r *Repository) List(ctx context.Context) ([]TourPackageBooking, error) {
	const q = `
SELECT ` + columns + `
FROM tour_package_bookings t
JOIN tour_products p ON p.id = t.tour_product_id
ORDER BY t.created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TourPackageBooking
	for rows.Next() {
		var t TourPackageBooking
		if err := rows.Scan(
			&t.ID, &t.CustomerName, &t.TourProductID, &t.TourProductName, &t.Status, &t.BasePricePerPax,
			&t.Pax, &t.Addons, &t.BookingDate, &t.TravelStart, &t.TravelEnd, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*TourPackageBooking, error) {
	const q = `
SELECT ` + columns + `
FROM tour_package_bookings t
JOIN tour_products p ON p.id = t.tour_product_id
WHERE t.id = $1
`
	t := &TourPackageBooking{}
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&t.ID, &t.CustomerName, &t.TourProductID, &t.TourProductName, &t.Status, &t.BasePricePerPax,
		&t.Pax, &t.Addons, &t.BookingDate, &t.TravelStart, &t.TravelEnd, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repository) Insert(ctx context.Context, t *TourPackageBooking) error {
	const q = `
INSERT INTO tour_package_bookings
  (id, customer_name, tour_product_id, status, base_price_per_pax, pax, addons, booking_date, travel_start_date, travel_end_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING created_at, updated_at
`
	return r.db.QueryRow(ctx, q,
		t.ID, t.CustomerName, t.TourProductID, t.Status, t.BasePricePerPax, t.Pax, t.Addons,
		t.BookingDate, t.TravelStart, t.TravelEnd,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

const updateQuery = `
UPDATE tour_package_bookings
SET customer_name = $1, status = $2, base_price_per_pax = $3, pax = $4, addons = $5,
    booking_date = $6, travel_start_date = $7, travel_end_date = $8, updated_at = NOW()
WHERE id = $9
`

func (r *Repository) Update(ctx context.Context, t *TourPackageBooking) error {
	const q = updateQuery + `RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, q,
		t.CustomerName, t.Status, t.BasePricePerPax, t.Pax, t.Addons,
		t.BookingDate, t.TravelStart, t.TravelEnd, t.ID,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// UpdateTx applies the same edits inside a caller-owned transaction. Closing
// a booking writes its audit row in the same tx, so the update shares it.
func UpdateTx(ctx context.Context, tx pgx.Tx, t *TourPackageBooking) error {
	tag, err := tx.Exec(ctx, updateQuery,
		t.CustomerName, t.Status, t.BasePricePerPax, t.Pax, t.Addons,
		t.BookingDate, t.TravelStart, t.TravelEnd, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetForUpdate locks the tour booking row; payment uploads snapshot the
// status inside the same transaction.
func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*TourPackageBooking, error) {
	const q = `
SELECT id, customer_name, tour_product_id, status, base_price_per_pax::text, pax,
       COALESCE(addons, '[]'::jsonb), booking_date, travel_start_date, travel_end_date, created_at, updated_at
FROM tour_package_bookings
WHERE id = $1
FOR UPDATE
`
	t := &TourPackageBooking{}
	if err := tx.QueryRow(ctx, q, id).Scan(
		&t.ID, &t.CustomerName, &t.TourProductID, &t.Status, &t.BasePricePerPax,
		&t.Pax, &t.Addons, &t.BookingDate, &t.TravelStart, &t.TravelEnd, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return t, nil
}
