package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
)

const insertQuery = `
INSERT INTO booking_events (booking_id, event_type, summary, actor, occurred_at, data)
VALUES ($1, $2, $3, $4, $5, CAST($6 AS jsonb))
`

// Insert appends one booking event. Always called inside the transaction
// that performs the mutation, so the trail can't drift from the data.
func Insert(ctx context.Context, tx pgx.Tx, bookingID, eventType, summary, actor string, occurredAt time.Time, data any) error {
	var s *string
	if data != nil {
		b, _ := json.Marshal(data)
		str := string(b)
		s = &str
	}
	_, err := tx.Exec(ctx, insertQuery, bookingID, eventType, summary, actor, occurredAt, s)
	return err
}
