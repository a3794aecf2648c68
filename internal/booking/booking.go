package booking

import (
	"crypto/rand"
	"fmt"
	"time"

	"agencydesk/internal/badge"
)

type Type string

const (
	TypeOneWay Type = "one_way"
	TypeReturn Type = "return"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeOneWay, TypeReturn:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown booking type: %s", s)
	}
}

// SectorCount is the number of sectors a booking type requires.
func (t Type) SectorCount() int {
	if t == TypeReturn {
		return 2
	}
	return 1
}

type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusWaitingList Status = "waiting_list"
	StatusTicketed    Status = "ticketed"
	StatusCancelled   Status = "cancelled"
	StatusPending     Status = "pending"
	StatusUnconfirmed Status = "unconfirmed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusWaitingList, StatusTicketed, StatusCancelled, StatusPending, StatusUnconfirmed:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

// OverrideStatuses are the only statuses an agent may set by hand after
// creation; everything else is owned by the sector rollup.
var OverrideStatuses = []Status{StatusTicketed, StatusCancelled}

func (s Status) CanOverrideTo() bool {
	for _, o := range OverrideStatuses {
		if s == o {
			return true
		}
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusConfirmed:
		return "Confirmed"
	case StatusWaitingList:
		return "Waiting List"
	case StatusTicketed:
		return "Ticketed"
	case StatusCancelled:
		return "Cancelled"
	case StatusPending:
		return "Pending"
	case StatusUnconfirmed:
		return "Unconfirmed"
	default:
		return string(s)
	}
}

// Variant maps every booking status to a display category. Unknown values
// (enum drift between releases) fall back to neutral instead of failing.
func (s Status) Variant() badge.Variant {
	switch s {
	case StatusTicketed:
		return badge.Success
	case StatusCancelled:
		return badge.Danger
	case StatusConfirmed:
		return badge.Info
	case StatusWaitingList:
		return badge.Warning
	case StatusPending, StatusUnconfirmed:
		return badge.Neutral
	default:
		return badge.Neutral
	}
}

// Booking is a flight booking owning one (one-way) or two (return) sectors.
type Booking struct {
	ID           string
	CustomerID   string
	CustomerName string
	Reference    string
	Type         Type
	Deadline     *time.Time
	Status       Status
	NumPax       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SectorStatus is the subset of booking statuses a sector may hold.
type SectorStatus string

const (
	SectorConfirmed   SectorStatus = "confirmed"
	SectorWaitingList SectorStatus = "waiting_list"
)

func ParseSectorStatus(s string) (SectorStatus, error) {
	switch SectorStatus(s) {
	case SectorConfirmed, SectorWaitingList:
		return SectorStatus(s), nil
	default:
		return "", fmt.Errorf("unknown sector status: %s", s)
	}
}

// Sector is one flight leg of a booking. Origin/Destination are denormalized
// from the predefined sector at read time.
type Sector struct {
	ID                 string
	BookingID          string
	PredefinedSectorID string
	Origin             string
	Destination        string
	TravelDate         time.Time
	Status             SectorStatus
	FlightNumber       string
	NumPax             int
	Position           int
}

// NewReference generates a booking reference like "BK483920".
func NewReference() string {
	var b [3]byte
	_, _ = rand.Read(b[:])
	n := (int(b[0])<<16 | int(b[1])<<8 | int(b[2])) % 1000000
	return fmt.Sprintf("BK%06d", n)
}
