package payment

import (
	"testing"
	"time"

	"agencydesk/internal/badge"
)

func strPtr(s string) *string { return &s }

func TestClassifyPending(t *testing.T) {
	got := ClassifyVerification(Record{})
	if got.State != StatePending {
		t.Fatalf("State = %s, want pending", got.State)
	}
	if got.Variant != badge.Warning {
		t.Fatalf("Variant = %s, want warning", got.Variant)
	}
	if got.Error != "" || got.Amount != "" {
		t.Fatalf("pending classification carries payload: %+v", got)
	}
}

func TestClassifyFailed(t *testing.T) {
	got := ClassifyVerification(Record{VerificationError: strPtr("amount unreadable")})
	if got.State != StateFailed {
		t.Fatalf("State = %s, want failed", got.State)
	}
	if got.Variant != badge.Danger {
		t.Fatalf("Variant = %s, want danger", got.Variant)
	}
	if got.Error != "amount unreadable" {
		t.Fatalf("Error = %q", got.Error)
	}
}

func TestClassifyVerified(t *testing.T) {
	date := time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC)
	at := time.Date(2024, 4, 14, 9, 30, 0, 0, time.UTC)
	got := ClassifyVerification(Record{
		IsVerified:          true,
		VerifiedAmount:      strPtr("1500.00"),
		VerifiedPaymentDate: &date,
		VerifiedAt:          &at,
	})
	if got.State != StateVerified {
		t.Fatalf("State = %s, want verified", got.State)
	}
	if got.Variant != badge.Success {
		t.Fatalf("Variant = %s, want success", got.Variant)
	}
	if got.Amount != "1500.00" {
		t.Fatalf("Amount = %q", got.Amount)
	}
	if got.PaymentDate != "2024-04-13" {
		t.Fatalf("PaymentDate = %q", got.PaymentDate)
	}
	if got.VerifiedAt == nil || !got.VerifiedAt.Equal(at) {
		t.Fatalf("VerifiedAt = %v", got.VerifiedAt)
	}
}

func TestClassifyVerifiedWinsOverError(t *testing.T) {
	got := ClassifyVerification(Record{
		IsVerified:        true,
		VerificationError: strPtr("stale error from a retried callback"),
	})
	if got.State != StateVerified {
		t.Fatalf("State = %s, want verified to take priority", got.State)
	}
	if got.Error != "" {
		t.Fatalf("verified classification should not carry the error, got %q", got.Error)
	}
}
