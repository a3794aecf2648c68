package tourbooking

import (
	"testing"

	"agencydesk/internal/badge"
)

func TestCanTransitionForwardPath(t *testing.T) {
	steps := []Status{StatusOpen, StatusNegotiating, StatusPaidFirst, StatusPaidFull, StatusComplete}
	for i := 0; i < len(steps)-1; i++ {
		if !CanTransition(steps[i], steps[i+1]) {
			t.Fatalf("expected %s -> %s to be legal", steps[i], steps[i+1])
		}
	}
}

func TestCanTransitionRejectsSkips(t *testing.T) {
	cases := [][2]Status{
		{StatusOpen, StatusPaidFirst},
		{StatusOpen, StatusComplete},
		{StatusNegotiating, StatusPaidFull},
		{StatusPaidFirst, StatusComplete},
		{StatusNegotiating, StatusOpen},
		{StatusPaidFull, StatusPaidFirst},
	}
	for _, c := range cases {
		if CanTransition(c[0], c[1]) {
			t.Fatalf("expected %s -> %s to be illegal", c[0], c[1])
		}
	}
}

func TestClosedReachableFromNonTerminal(t *testing.T) {
	for _, from := range []Status{StatusOpen, StatusNegotiating, StatusPaidFirst, StatusPaidFull} {
		if !CanTransition(from, StatusClosed) {
			t.Fatalf("expected %s -> closed to be legal", from)
		}
	}
}

func TestTerminalStatesAllowNothing(t *testing.T) {
	all := []Status{StatusOpen, StatusNegotiating, StatusPaidFirst, StatusPaidFull, StatusComplete, StatusClosed}
	for _, from := range []Status{StatusComplete, StatusClosed} {
		if !from.IsTerminal() {
			t.Fatalf("expected %s to be terminal", from)
		}
		for _, to := range all {
			if CanTransition(from, to) {
				t.Fatalf("expected %s -> %s to be illegal", from, to)
			}
		}
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("paid_first"); err != nil {
		t.Fatalf("ParseStatus(paid_first): %v", err)
	}
	if _, err := ParseStatus("settled"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestStatusVariant(t *testing.T) {
	cases := map[Status]badge.Variant{
		StatusOpen:        badge.Warning,
		StatusNegotiating: badge.Warning,
		StatusPaidFirst:   badge.Neutral,
		StatusPaidFull:    badge.Success,
		StatusComplete:    badge.Success,
		StatusClosed:      badge.Danger,
		Status("bogus"):   badge.Neutral,
	}
	for s, want := range cases {
		if got := s.Variant(); got != want {
			t.Fatalf("Variant(%s) = %s, want %s", s, got, want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusPaidFirst.Label(); got != "Paid (1st installment)" {
		t.Fatalf("Label(paid_first) = %q", got)
	}
	if got := StatusPaidFull.Label(); got != "Paid (Full Payment)" {
		t.Fatalf("Label(paid_full) = %q", got)
	}
}
