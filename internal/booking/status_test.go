package booking

import (
	"testing"

	"agencydesk/internal/badge"
)

func TestStatusVariant_Total(t *testing.T) {
	statuses := []Status{
		StatusConfirmed, StatusWaitingList, StatusTicketed,
		StatusCancelled, StatusPending, StatusUnconfirmed,
	}
	for _, s := range statuses {
		if s.Variant() == "" {
			t.Fatalf("no variant for %s", s)
		}
	}
}

func TestStatusVariant_Mapping(t *testing.T) {
	cases := []struct {
		status Status
		want   badge.Variant
	}{
		{StatusTicketed, badge.Success},
		{StatusCancelled, badge.Danger},
		{StatusConfirmed, badge.Info},
		{StatusWaitingList, badge.Warning},
		{StatusPending, badge.Neutral},
		{StatusUnconfirmed, badge.Neutral},
	}
	for _, c := range cases {
		if got := c.status.Variant(); got != c.want {
			t.Fatalf("%s: expected %s, got %s", c.status, c.want, got)
		}
	}
}

func TestStatusVariant_UnknownFallsBackToNeutral(t *testing.T) {
	if got := Status("mystery").Variant(); got != badge.Neutral {
		t.Fatalf("expected neutral, got %s", got)
	}
}

func TestParseStatus_RejectsUnknown(t *testing.T) {
	if _, err := ParseStatus("mystery"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTypeSectorCount(t *testing.T) {
	if TypeOneWay.SectorCount() != 1 || TypeReturn.SectorCount() != 2 {
		t.Fatalf("sector count contract broken")
	}
}

func TestNewReference_Format(t *testing.T) {
	ref := NewReference()
	if len(ref) != 8 || ref[:2] != "BK" {
		t.Fatalf("reference format: %q", ref)
	}
	for _, c := range ref[2:] {
		if c < '0' || c > '9' {
			t.Fatalf("reference digits: %q", ref)
		}
	}
}
