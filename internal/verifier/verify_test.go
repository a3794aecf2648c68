package verifier

import "testing"

func TestSignatureRoundTrip(t *testing.T) {
	body := []byte(`{"paymentRecordId":"abc","verified":true}`)
	sig := Sign(body, "shared-secret")
	if !VerifySignature(body, sig, "shared-secret") {
		t.Fatal("expected signature to verify")
	}
}

func TestSignatureRejectsTampering(t *testing.T) {
	body := []byte(`{"paymentRecordId":"abc","verified":true}`)
	sig := Sign(body, "shared-secret")

	if VerifySignature([]byte(`{"paymentRecordId":"abc","verified":false}`), sig, "shared-secret") {
		t.Fatal("expected altered body to be rejected")
	}
	if VerifySignature(body, sig, "other-secret") {
		t.Fatal("expected wrong secret to be rejected")
	}
	if VerifySignature(body, "", "shared-secret") {
		t.Fatal("expected missing header to be rejected")
	}
	if VerifySignature(body, sig, "") {
		t.Fatal("expected missing secret to be rejected")
	}
}
