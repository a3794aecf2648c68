package deadline

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify_NoDeadline(t *testing.T) {
	got := Classify(nil, date(2024, time.June, 10))
	if got.Label != "No deadline" {
		t.Fatalf("label: %q", got.Label)
	}
	if got.Urgent || got.Overdue || got.HasDeadline {
		t.Fatalf("expected inert classification, got %+v", got)
	}
}

func TestClassify_Overdue(t *testing.T) {
	now := date(2024, time.June, 10)
	dl := date(2024, time.June, 8)

	got := Classify(&dl, now)
	if got.Label != "Overdue by 2 days" {
		t.Fatalf("label: %q", got.Label)
	}
	if !got.Overdue || !got.Urgent {
		t.Fatalf("expected overdue+urgent, got %+v", got)
	}
	if got.DaysUntil != -2 {
		t.Fatalf("daysUntil: %d", got.DaysUntil)
	}
}

func TestClassify_OverdueSingularDay(t *testing.T) {
	now := date(2024, time.June, 10)
	dl := date(2024, time.June, 9)

	got := Classify(&dl, now)
	if got.Label != "Overdue by 1 day" {
		t.Fatalf("label: %q", got.Label)
	}
}

func TestClassify_DueToday(t *testing.T) {
	now := date(2024, time.June, 10)
	dl := date(2024, time.June, 10)

	got := Classify(&dl, now)
	if got.Label != "Due today" {
		t.Fatalf("label: %q", got.Label)
	}
	if !got.Urgent || got.Overdue {
		t.Fatalf("expected urgent, not overdue, got %+v", got)
	}
}

func TestClassify_DueTomorrow(t *testing.T) {
	now := date(2024, time.June, 10)
	dl := date(2024, time.June, 11)

	got := Classify(&dl, now)
	if got.Label != "Due tomorrow" {
		t.Fatalf("label: %q", got.Label)
	}
	if !got.Urgent {
		t.Fatalf("expected urgent, got %+v", got)
	}
}

func TestClassify_DueInNDays(t *testing.T) {
	now := date(2024, time.June, 10)
	dl := date(2024, time.June, 15)

	got := Classify(&dl, now)
	if got.Label != "Due in 5 days" {
		t.Fatalf("label: %q", got.Label)
	}
	if got.Urgent || got.Overdue {
		t.Fatalf("expected non-urgent future, got %+v", got)
	}
}

func TestClassify_TimeOfDayIgnored(t *testing.T) {
	// Late-evening "now" must classify the same as midnight.
	now := time.Date(2024, time.June, 10, 23, 45, 0, 0, time.UTC)
	dl := date(2024, time.June, 10)

	got := Classify(&dl, now)
	if got.Label != "Due today" {
		t.Fatalf("label: %q", got.Label)
	}
}

func TestClassify_Pure(t *testing.T) {
	now := date(2024, time.June, 10)
	dl := date(2024, time.June, 12)

	a := Classify(&dl, now)
	b := Classify(&dl, now)
	if a != b {
		t.Fatalf("classification not deterministic: %+v vs %+v", a, b)
	}
}

func TestClassifyDateString(t *testing.T) {
	now := date(2024, time.June, 10)

	if got := ClassifyDateString("", now); got.Label != "No deadline" {
		t.Fatalf("empty: %q", got.Label)
	}
	if got := ClassifyDateString("2024-06-15", now); got.Label != "Due in 5 days" {
		t.Fatalf("parse: %q", got.Label)
	}
	if got := ClassifyDateString("not-a-date", now); got.Label != "(Invalid date)" {
		t.Fatalf("invalid: %q", got.Label)
	}
}

func TestRank_OrdersUrgencyFirst(t *testing.T) {
	now := date(2024, time.June, 10)
	overdue := date(2024, time.June, 5)
	today := date(2024, time.June, 10)
	future := date(2024, time.June, 20)

	rOverdue := Classify(&overdue, now).Rank()
	rToday := Classify(&today, now).Rank()
	rFuture := Classify(&future, now).Rank()
	rNone := Classify(nil, now).Rank()

	if !(rOverdue < rToday && rToday < rFuture && rFuture < rNone) {
		t.Fatalf("rank order wrong: %d %d %d %d", rOverdue, rToday, rFuture, rNone)
	}
}
