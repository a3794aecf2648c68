package tourbooking

import (
	"strings"
	"testing"
)

func TestNewIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != idLength {
			t.Fatalf("NewID() = %q, want %d chars", id, idLength)
		}
		for _, c := range id {
			if !strings.ContainsRune(idAlphabet, c) {
				t.Fatalf("NewID() = %q contains %q outside alphabet", id, c)
			}
		}
	}
}

func TestNewIDAvoidsAmbiguousChars(t *testing.T) {
	for _, c := range "0O1I" {
		if strings.ContainsRune(idAlphabet, c) {
			t.Fatalf("alphabet contains ambiguous char %q", c)
		}
	}
}
