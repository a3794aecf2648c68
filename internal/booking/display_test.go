package booking

import (
	"testing"
	"time"
)

func travel(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatSectorRoute_OneWay(t *testing.T) {
	sectors := []Sector{{Origin: "BKK", Destination: "SIN"}}
	if got := FormatSectorRoute(TypeOneWay, sectors); got != "BKK-SIN" {
		t.Fatalf("route: %q", got)
	}
}

func TestFormatSectorRoute_Return(t *testing.T) {
	sectors := []Sector{
		{Origin: "BKK", Destination: "SIN"},
		{Origin: "SIN", Destination: "BKK"},
	}
	if got := FormatSectorRoute(TypeReturn, sectors); got != "BKK-SIN-BKK" {
		t.Fatalf("route: %q", got)
	}
}

func TestFormatSectorRoute_MalformedCardinalityFallsBack(t *testing.T) {
	sectors := []Sector{
		{Origin: "BKK", Destination: "SIN"},
		{Origin: "SIN", Destination: "HKG"},
		{Origin: "HKG", Destination: "BKK"},
	}
	if got := FormatSectorRoute(TypeReturn, sectors); got != "BKK-SIN, SIN-HKG, HKG-BKK" {
		t.Fatalf("route: %q", got)
	}
}

func TestFormatSectorRoute_Empty(t *testing.T) {
	if got := FormatSectorRoute(TypeOneWay, nil); got != "" {
		t.Fatalf("route: %q", got)
	}
}

func TestFormatTravelDates_OneWay(t *testing.T) {
	sectors := []Sector{{TravelDate: travel(2024, time.April, 13)}}
	if got := FormatTravelDates(TypeOneWay, sectors); got != "13APR" {
		t.Fatalf("dates: %q", got)
	}
}

func TestFormatTravelDates_Return(t *testing.T) {
	sectors := []Sector{
		{TravelDate: travel(2024, time.April, 13)},
		{TravelDate: travel(2024, time.April, 20)},
	}
	if got := FormatTravelDates(TypeReturn, sectors); got != "13APR-20APR" {
		t.Fatalf("dates: %q", got)
	}
}
