package payment

import (
	"time"

	"agencydesk/internal/badge"
)

// State is the derived verification state of a payment record. It is never
// stored; it is computed from the ledger row on every read.
type State string

const (
	StateVerified State = "verified"
	StateFailed   State = "failed"
	StatePending  State = "pending"
)

// Classification is the display-ready verification summary for one record.
type Classification struct {
	State   State         `json:"state"`
	Label   string        `json:"label"`
	Variant badge.Variant `json:"variant"`

	// Verified only.
	Amount      string     `json:"amount,omitempty"`
	PaymentDate string     `json:"paymentDate,omitempty"`
	VerifiedAt  *time.Time `json:"verifiedAt,omitempty"`

	// Failed only.
	Error string `json:"error,omitempty"`
}

const paymentDateFormat = "2006-01-02"

// ClassifyVerification derives the tri-state verification outcome. Priority
// order matters: a verified record wins even if an error string is also
// present, and an error only means failed when the record is not verified.
func ClassifyVerification(rec Record) Classification {
	switch {
	case rec.IsVerified:
		c := Classification{State: StateVerified, Label: "Verified", Variant: badge.Success}
		if rec.VerifiedAmount != nil {
			c.Amount = *rec.VerifiedAmount
		}
		if rec.VerifiedPaymentDate != nil {
			c.PaymentDate = rec.VerifiedPaymentDate.Format(paymentDateFormat)
		}
		c.VerifiedAt = rec.VerifiedAt
		return c
	case rec.VerificationError != nil:
		return Classification{
			State:   StateFailed,
			Label:   "Verification failed",
			Variant: badge.Danger,
			Error:   *rec.VerificationError,
		}
	default:
		return Classification{State: StatePending, Label: "Pending verification", Variant: badge.Warning}
	}
}
