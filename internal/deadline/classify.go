// Package deadline classifies due dates into overdue/today/tomorrow/future
// buckets relative to an injected "now". All comparisons are at calendar-day
// granularity: a deadline expires at the end of its own day.
package deadline

import (
	"math"
	"strconv"
	"time"
)

const DateFormat = "2006-01-02"

// Classification is the derived urgency of a single deadline.
// It is recomputed per request and never stored.
type Classification struct {
	Label string `json:"label"`
	// DaysUntil is negative when the deadline has passed. Zero both for
	// "due today" and for "no deadline"; check HasDeadline to tell apart.
	DaysUntil   int  `json:"daysUntil"`
	HasDeadline bool `json:"hasDeadline"`
	Overdue     bool `json:"overdue"`
	Urgent      bool `json:"urgent"`
}

// Classify derives the urgency bucket for a deadline. now must be passed in
// by the caller; this function never reads the system clock, so identical
// inputs always produce identical output.
func Classify(dl *time.Time, now time.Time) Classification {
	if dl == nil {
		return Classification{Label: "No deadline"}
	}

	days := daysBetween(now, *dl)

	switch {
	case days < 0:
		n := -days
		return Classification{
			Label:       "Overdue by " + strconv.Itoa(n) + " " + pluralDay(n),
			DaysUntil:   days,
			HasDeadline: true,
			Overdue:     true,
			Urgent:      true,
		}
	case days == 0:
		return Classification{Label: "Due today", DaysUntil: 0, HasDeadline: true, Urgent: true}
	case days == 1:
		return Classification{Label: "Due tomorrow", DaysUntil: 1, HasDeadline: true, Urgent: true}
	default:
		return Classification{
			Label:       "Due in " + strconv.Itoa(days) + " days",
			DaysUntil:   days,
			HasDeadline: true,
		}
	}
}

// ClassifyDateString parses a YYYY-MM-DD date and classifies it. Empty input
// means no deadline; an unparseable date degrades to a fixed label instead of
// failing the whole row.
func ClassifyDateString(s string, now time.Time) Classification {
	if s == "" {
		return Classify(nil, now)
	}
	d, err := time.ParseInLocation(DateFormat, s, now.Location())
	if err != nil {
		return Classification{Label: "(Invalid date)"}
	}
	return Classify(&d, now)
}

// Rank orders classifications for urgency-first listings: most overdue first,
// then by days until due; entries with no deadline sort last.
func (c Classification) Rank() int {
	if !c.HasDeadline {
		return math.MaxInt32
	}
	return c.DaysUntil
}

// daysBetween counts whole calendar days from now's day to the deadline's
// day. Rounding (rather than truncating) the hour difference keeps DST
// transitions from shifting a day boundary.
func daysBetween(now, dl time.Time) int {
	today := startOfDay(now)
	day := time.Date(dl.Year(), dl.Month(), dl.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(day.Sub(today).Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func pluralDay(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
