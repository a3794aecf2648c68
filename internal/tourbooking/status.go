package tourbooking

import (
	"fmt"

	"agencydesk/internal/badge"
)

// Status is the manually-driven tour package lifecycle. Nothing in the
// system advances it automatically; agents pick the next step and the
// service only checks the step is legal.
type Status string

const (
	StatusOpen        Status = "open"
	StatusNegotiating Status = "negotiating"
	StatusPaidFirst   Status = "paid_first"
	StatusPaidFull    Status = "paid_full"
	StatusComplete    Status = "complete"
	StatusClosed      Status = "closed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusNegotiating, StatusPaidFirst, StatusPaidFull, StatusComplete, StatusClosed:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown tour package status: %s", s)
	}
}

// Closed is a cancel state reachable from every non-terminal status; the
// forward path is strictly ordered.
var allowedTransitions = map[Status]map[Status]bool{
	StatusOpen:        {StatusNegotiating: true, StatusClosed: true},
	StatusNegotiating: {StatusPaidFirst: true, StatusClosed: true},
	StatusPaidFirst:   {StatusPaidFull: true, StatusClosed: true},
	StatusPaidFull:    {StatusComplete: true, StatusClosed: true},
	StatusComplete:    {},
	StatusClosed:      {},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

func (s Status) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusNegotiating:
		return "Negotiating"
	case StatusPaidFirst:
		return "Paid (1st installment)"
	case StatusPaidFull:
		return "Paid (Full Payment)"
	case StatusComplete:
		return "Complete"
	case StatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// Variant maps every tour package status to a display category; unknown
// values fall back to neutral.
func (s Status) Variant() badge.Variant {
	switch s {
	case StatusComplete, StatusPaidFull:
		return badge.Success
	case StatusPaidFirst:
		return badge.Neutral
	case StatusOpen, StatusNegotiating:
		return badge.Warning
	case StatusClosed:
		return badge.Danger
	default:
		return badge.Neutral
	}
}
