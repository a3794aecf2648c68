package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
)

// Action values recorded in the audit trail. Only destructive or
// override-style agent actions are audited; plain reads are not.
const (
	ActionBookingStatusOverride = "BOOKING_STATUS_OVERRIDE"
	ActionBookingDeleted        = "BOOKING_DELETED"
	ActionTourBookingClosed     = "TOUR_BOOKING_CLOSED"
	ActionSlipUploaded          = "SLIP_UPLOADED"
)

func Insert(ctx context.Context, tx pgx.Tx, agentID string, entity string, entityID *string, action string, metadata any) error {
	var s *string
	if metadata != nil {
		b, _ := json.Marshal(metadata)
		str := string(b)
		s = &str
	}
	const q = `
INSERT INTO audit_logs (agent_id, entity, entity_id, action, metadata)
VALUES ($1, $2, $3, $4, CAST($5 AS jsonb))
`
	_, err := tx.Exec(ctx, q, agentID, entity, entityID, action, s)
	return err
}
