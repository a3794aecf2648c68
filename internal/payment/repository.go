package payment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agencydesk/internal/tourbooking"
)

// Record is one row of the append-only payment ledger. Rows are inserted at
// slip upload and receive exactly one verification outcome afterwards; they
// are never edited or deleted.
type Record struct {
	ID                  string
	TourBookingID       string
	StatusAtPayment     tourbooking.Status
	SlipPath            string
	UploadedAt          time.Time
	IsVerified          bool
	VerifiedAmount      *string
	VerifiedPaymentDate *time.Time
	VerificationError   *string
	VerifiedAt          *time.Time
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const columns = `
id, tour_package_booking_id, status_at_payment, slip_path, uploaded_at,
is_verified, verified_amount::text, verified_payment_date, verification_error, verified_at
`

func (r *Repository) ListByTourBooking(ctx context.Context, tourBookingID string) ([]Record, error) {
	const q = `
SELECT ` + columns + `
FROM payment_records
WHERE tour_package_booking_id = $1
ORDER BY uploaded_at ASC
`
	rows, err := r.db.Query(ctx, q, tourBookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.TourBookingID, &rec.StatusAtPayment, &rec.SlipPath, &rec.UploadedAt,
			&rec.IsVerified, &rec.VerifiedAmount, &rec.VerifiedPaymentDate, &rec.VerificationError, &rec.VerifiedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Insert appends a ledger row inside the upload transaction; the tour booking
// row is locked by the caller so the status snapshot is consistent.
func Insert(ctx context.Context, tx pgx.Tx, tourBookingID string, statusAtPayment tourbooking.Status, slipPath string) (*Record, error) {
	const q = `
INSERT INTO payment_records (tour_package_booking_id, status_at_payment, slip_path)
VALUES ($1, $2, $3)
RETURNING id, uploaded_at
`
	rec := &Record{
		TourBookingID:   tourBookingID,
		StatusAtPayment: statusAtPayment,
		SlipPath:        slipPath,
	}
	if err := tx.QueryRow(ctx, q, tourBookingID, statusAtPayment, slipPath).Scan(&rec.ID, &rec.UploadedAt); err != nil {
		return nil, err
	}
	return rec, nil
}

// RecordVerified marks a pending record verified. The WHERE guard makes the
// outcome write-once: a record that already has an outcome is left untouched
// and pgx.ErrNoRows is returned.
func RecordVerified(ctx context.Context, tx pgx.Tx, id, amount string, paymentDate time.Time, verifiedAt time.Time) error {
	const q = `
UPDATE payment_records
SET is_verified = TRUE, verified_amount = $2, verified_payment_date = $3, verified_at = $4
WHERE id = $1 AND is_verified = FALSE AND verification_error IS NULL
`
	tag, err := tx.Exec(ctx, q, id, amount, paymentDate, verifiedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// RecordFailed marks a pending record failed with the verifier's error.
func RecordFailed(ctx context.Context, tx pgx.Tx, id, reason string, verifiedAt time.Time) error {
	const q = `
UPDATE payment_records
SET verification_error = $2, verified_at = $3
WHERE id = $1 AND is_verified = FALSE AND verification_error IS NULL
`
	tag, err := tx.Exec(ctx, q, id, reason, verifiedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
