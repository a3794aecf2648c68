package tourbooking

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var identPattern = regexp.MustCompile(`[a-z_]+`)

var sqlKeywords = map[string]bool{
	"update": true, "set": true, "where": true, "now": true,
	"tour_package_bookings": true,
}

func tourBookingColumns(t *testing.T) map[string]bool {
	t.Helper()
	ddl, err := os.ReadFile(filepath.Join("..", "..", "migrations", "000002_tours.up.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	start := strings.Index(string(ddl), "CREATE TABLE tour_package_bookings")
	if start < 0 {
		t.Fatal("tour_package_bookings not found in migration")
	}
	body := string(ddl)[start:]
	end := strings.Index(body, ");")
	if end < 0 {
		t.Fatal("unterminated tour_package_bookings DDL")
	}

	cols := map[string]bool{}
	for _, line := range strings.Split(body[:end], "\n")[1:] {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		cols[fields[0]] = true
	}
	return cols
}

func TestUpdateQueryMatchesSchema(t *testing.T) {
	cols := tourBookingColumns(t)

	for _, ident := range identPattern.FindAllString(strings.ToLower(updateQuery), -1) {
		if sqlKeywords[ident] {
			continue
		}
		if !cols[ident] {
			t.Fatalf("update query references %q, not a tour_package_bookings column", ident)
		}
	}
}
