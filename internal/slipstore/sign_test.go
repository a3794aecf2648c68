package slipstore

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestSignedURLRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	signed := SignURL("abc123.jpg", "secret", 15*time.Minute, now)

	u, err := url.Parse(signed)
	if err != nil {
		t.Fatalf("parse signed url: %v", err)
	}
	if !strings.HasPrefix(u.Path, "/v1/slips/") {
		t.Fatalf("unexpected path: %s", u.Path)
	}

	q := u.Query()
	if !VerifyURL("abc123.jpg", q.Get("exp"), q.Get("sig"), "secret", now) {
		t.Fatal("expected fresh signature to verify")
	}
}

func TestSignedURLExpires(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	signed := SignURL("abc123.jpg", "secret", 15*time.Minute, now)
	q := mustQuery(t, signed)

	later := now.Add(16 * time.Minute)
	if VerifyURL("abc123.jpg", q.Get("exp"), q.Get("sig"), "secret", later) {
		t.Fatal("expected expired signature to be rejected")
	}
}

func TestSignedURLRejectsTampering(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	signed := SignURL("abc123.jpg", "secret", 15*time.Minute, now)
	q := mustQuery(t, signed)

	if VerifyURL("other.jpg", q.Get("exp"), q.Get("sig"), "secret", now) {
		t.Fatal("expected renamed object to be rejected")
	}
	if VerifyURL("abc123.jpg", q.Get("exp"), q.Get("sig"), "wrong", now) {
		t.Fatal("expected wrong secret to be rejected")
	}
	if VerifyURL("abc123.jpg", "9999999999", q.Get("sig"), "secret", now) {
		t.Fatal("expected altered expiry to be rejected")
	}
}

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	return u.Query()
}
