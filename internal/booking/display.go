package booking

import (
	"strings"
	"time"
)

// FormatSectorRoute renders a compact route string for listing screens:
// "BKK-SIN" for the canonical one-way case, "BKK-SIN-BKK" for the canonical
// return case. Any other cardinality (malformed data, multi-leg imports)
// falls back to comma-joined origin-destination pairs.
func FormatSectorRoute(t Type, sectors []Sector) string {
	switch {
	case len(sectors) == 0:
		return ""
	case t == TypeOneWay && len(sectors) == 1:
		return sectors[0].Origin + "-" + sectors[0].Destination
	case t == TypeReturn && len(sectors) == 2:
		return sectors[0].Origin + "-" + sectors[0].Destination + "-" + sectors[1].Destination
	default:
		pairs := make([]string, 0, len(sectors))
		for _, s := range sectors {
			pairs = append(pairs, s.Origin+"-"+s.Destination)
		}
		return strings.Join(pairs, ", ")
	}
}

// FormatTravelDates renders short travel dates: "13APR" one-way,
// "13APR-20APR" return, comma-joined otherwise. Sectors are expected
// pre-sorted by position.
func FormatTravelDates(t Type, sectors []Sector) string {
	switch {
	case len(sectors) == 0:
		return ""
	case t == TypeOneWay && len(sectors) == 1:
		return shortDate(sectors[0].TravelDate)
	case t == TypeReturn && len(sectors) == 2:
		return shortDate(sectors[0].TravelDate) + "-" + shortDate(sectors[1].TravelDate)
	default:
		dates := make([]string, 0, len(sectors))
		for _, s := range sectors {
			dates = append(dates, shortDate(s.TravelDate))
		}
		return strings.Join(dates, ", ")
	}
}

// shortDate renders "13APR".
func shortDate(d time.Time) string {
	return strings.ToUpper(d.Format("02Jan"))
}
