package events

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// The queries in this package are constant strings, so a column rename in the
// schema silently breaks them until the first live request. Cross-check every
// identifier they reference against the booking_events DDL.

var identPattern = regexp.MustCompile(`[a-z_]+`)

var sqlKeywords = map[string]bool{
	"select": true, "insert": true, "into": true, "from": true, "where": true,
	"values": true, "order": true, "by": true, "asc": true, "desc": true,
	"coalesce": true, "cast": true, "as": true, "jsonb": true, "text": true,
	"booking_events": true,
}

func bookingEventsColumns(t *testing.T) map[string]bool {
	t.Helper()
	ddl, err := os.ReadFile(filepath.Join("..", "..", "migrations", "000001_init.up.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	start := strings.Index(string(ddl), "CREATE TABLE booking_events")
	if start < 0 {
		t.Fatal("booking_events not found in migration")
	}
	body := string(ddl)[start:]
	end := strings.Index(body, ");")
	if end < 0 {
		t.Fatal("unterminated booking_events DDL")
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

func TestQueriesMatchSchema(t *testing.T) {
	cols := bookingEventsColumns(t)

	for name, q := range map[string]string{"list": listQuery, "insert": insertQuery} {
		for _, ident := range identPattern.FindAllString(strings.ToLower(q), -1) {
			if sqlKeywords[ident] {
				continue
			}
			if !cols[ident] {
				t.Fatalf("%s query references %q, not a booking_events column", name, ident)
			}
		}
	}
}
