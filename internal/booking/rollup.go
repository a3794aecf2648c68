package booking

// DeriveOverallStatus rolls sector statuses up into a booking-level status:
// any sector on the waiting list puts the whole booking on the waiting list,
// otherwise it is confirmed. An empty sector list derives Confirmed; create
// validation rejects sectorless bookings before this is ever hit.
//
// The rollup runs at creation and again inside every sector-mutation
// transaction, unless the status has been manually overridden to a terminal
// value (Ticketed/Cancelled).
func DeriveOverallStatus(sectors []Sector) Status {
	for _, s := range sectors {
		if s.Status == SectorWaitingList {
			return StatusWaitingList
		}
	}
	return StatusConfirmed
}

// RollupApplies reports whether the stored status is still owned by the
// rollup. Manual overrides take the booking out of rollup control.
func RollupApplies(current Status) bool {
	return current == StatusConfirmed || current == StatusWaitingList
}
