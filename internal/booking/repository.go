package booking

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `
b.id, b.customer_id, c.name, b.reference, b.booking_type, b.deadline, b.status, b.num_pax,
b.created_at, b.updated_at
`

func (r *Repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings b
JOIN customers c ON c.id = b.customer_id
WHERE b.id = $1
`
	b := &Booking{}
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.CustomerID, &b.CustomerName, &b.Reference, &b.Type, &b.Deadline, &b.Status,
		&b.NumPax, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Repository) List(ctx context.Context) ([]Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings b
JOIN customers c ON c.id = b.customer_id
ORDER BY b.created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.CustomerName, &b.Reference, &b.Type, &b.Deadline, &b.Status,
			&b.NumPax, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Insert creates the booking row inside the same transaction as its sectors,
// so a failed sector insert rolls everything back.
func Insert(ctx context.Context, tx pgx.Tx, b *Booking) error {
	const q = `
INSERT INTO bookings (customer_id, reference, booking_type, deadline, status, num_pax)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at
`
	return tx.QueryRow(ctx, q,
		b.CustomerID, b.Reference, b.Type, b.Deadline, b.Status, b.NumPax,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func InsertSector(ctx context.Context, tx pgx.Tx, s *Sector) error {
	const q = `
INSERT INTO booking_sectors (booking_id, predefined_sector_id, travel_date, status, flight_number, num_pax, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`
	return tx.QueryRow(ctx, q,
		s.BookingID, s.PredefinedSectorID, s.TravelDate, s.Status, s.FlightNumber, s.NumPax, s.Position,
	).Scan(&s.ID)
}

// GetForUpdate locks the booking row for the duration of the transaction.
// Sector mutations and status overrides go through here so concurrent edits
// serialize on the parent booking.
func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Booking, error) {
	const q = `
SELECT id, customer_id, reference, booking_type, deadline, status, num_pax, created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE
`
	b := &Booking{}
	if err := tx.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.CustomerID, &b.Reference, &b.Type, &b.Deadline, &b.Status,
		&b.NumPax, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return b, nil
}

const sectorColumns = `
s.id, s.booking_id, s.predefined_sector_id, p.origin, p.destination,
s.travel_date, s.status, s.flight_number, s.num_pax, s.position
`

func (r *Repository) SectorsByBooking(ctx context.Context, bookingID string) ([]Sector, error) {
	const q = `
SELECT ` + sectorColumns + `
FROM booking_sectors s
JOIN predefined_sectors p ON p.id = s.predefined_sector_id
WHERE s.booking_id = $1
ORDER BY s.position ASC
`
	rows, err := r.db.Query(ctx, q, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSectors(rows)
}

// SectorsByBookings fetches sectors for many bookings in one query, grouped
// by booking id. Listing screens use this to avoid per-row queries.
func (r *Repository) SectorsByBookings(ctx context.Context, bookingIDs []string) (map[string][]Sector, error) {
	if len(bookingIDs) == 0 {
		return map[string][]Sector{}, nil
	}
	const q = `
SELECT ` + sectorColumns + `
FROM booking_sectors s
JOIN predefined_sectors p ON p.id = s.predefined_sector_id
WHERE s.booking_id = ANY($1)
ORDER BY s.booking_id, s.position ASC
`
	rows, err := r.db.Query(ctx, q, bookingIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sectors, err := scanSectors(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]Sector, len(bookingIDs))
	for _, s := range sectors {
		out[s.BookingID] = append(out[s.BookingID], s)
	}
	return out, nil
}

// SectorsTx reads a booking's sectors inside a transaction; used by the
// rollup recompute after a sector mutation.
func SectorsTx(ctx context.Context, tx pgx.Tx, bookingID string) ([]Sector, error) {
	const q = `
SELECT ` + sectorColumns + `
FROM booking_sectors s
JOIN predefined_sectors p ON p.id = s.predefined_sector_id
WHERE s.booking_id = $1
ORDER BY s.position ASC
`
	rows, err := tx.Query(ctx, q, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSectors(rows)
}

func scanSectors(rows pgx.Rows) ([]Sector, error) {
	var out []Sector
	for rows.Next() {
		var s Sector
		if err := rows.Scan(
			&s.ID, &s.BookingID, &s.PredefinedSectorID, &s.Origin, &s.Destination,
			&s.TravelDate, &s.Status, &s.FlightNumber, &s.NumPax, &s.Position,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func UpdateSector(ctx context.Context, tx pgx.Tx, bookingID, sectorID string, s *Sector) error {
	const q = `
UPDATE booking_sectors
SET predefined_sector_id = $1, travel_date = $2, status = $3, flight_number = $4, num_pax = $5
WHERE id = $6 AND booking_id = $7
`
	tag, err := tx.Exec(ctx, q,
		s.PredefinedSectorID, s.TravelDate, s.Status, s.FlightNumber, s.NumPax, sectorID, bookingID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func SetStatus(ctx context.Context, tx pgx.Tx, id string, status Status) error {
	const q = `
UPDATE bookings
SET status = $1, updated_at = NOW()
WHERE id = $2
`
	tag, err := tx.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, b *Booking) error {
	const q = `
UPDATE bookings
SET customer_id = $1, deadline = $2, num_pax = $3, updated_at = NOW()
WHERE id = $4
`
	tag, err := r.db.Exec(ctx, q, b.CustomerID, b.Deadline, b.NumPax, b.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the booking; sectors and events go with it via the schema's
// ON DELETE CASCADE, not application logic.
func Delete(ctx context.Context, tx pgx.Tx, id string) error {
	const q = `DELETE FROM bookings WHERE id = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
