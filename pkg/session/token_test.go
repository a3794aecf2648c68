package session

import (
	"testing"
	"time"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s, err := Issue("agent-1", "ops@agency.test", secret, 10*time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := Verify(s, secret, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.AgentID != "agent-1" {
		t.Fatalf("agent id mismatch: %q", got.AgentID)
	}
	if got.Email != "ops@agency.test" {
		t.Fatalf("email mismatch: %q", got.Email)
	}
}

func TestVerify_Expired(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s, err := Issue("agent-1", "ops@agency.test", secret, 10*time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := Verify(s, secret, now.Add(11*time.Minute)); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)

	s, err := Issue("agent-1", "", "secret-a", 10*time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := Verify(s, "secret-b", now); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}
