package task

import (
	"testing"
	"time"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMakeViewClassifiesDueDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	v := makeView(Task{Title: "Call airline", DueDate: datePtr(2024, 6, 10)}, now)
	if v.Deadline.Label != "Due today" {
		t.Fatalf("Label = %q, want Due today", v.Deadline.Label)
	}
	if !v.Deadline.Urgent {
		t.Fatal("expected urgent")
	}
	if v.DueDate != "2024-06-10" {
		t.Fatalf("DueDate = %q", v.DueDate)
	}
}

func TestMakeViewNoDueDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	v := makeView(Task{Title: "Tidy CRM"}, now)
	if v.Deadline.Label != "No deadline" {
		t.Fatalf("Label = %q, want No deadline", v.Deadline.Label)
	}
	if v.DueDate != "" {
		t.Fatalf("DueDate = %q, want empty", v.DueDate)
	}
}

func TestSortViewsUrgentFirstDoneLast(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	items := []View{
		makeView(Task{ID: "undated"}, now),
		makeView(Task{ID: "done-overdue", DueDate: datePtr(2024, 6, 1), Done: true}, now),
		makeView(Task{ID: "next-week", DueDate: datePtr(2024, 6, 17)}, now),
		makeView(Task{ID: "overdue", DueDate: datePtr(2024, 6, 8)}, now),
		makeView(Task{ID: "today", DueDate: datePtr(2024, 6, 10)}, now),
	}

	sortViews(items)

	want := []string{"overdue", "today", "next-week", "undated", "done-overdue"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, items[i].ID, id)
		}
	}
}
