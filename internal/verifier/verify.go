package verifier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureHeader carries base64(HMAC_SHA256(body)) computed with the shared
// verifier secret.
const SignatureHeader = "X-Verifier-Signature"

// VerifySignature checks the callback body against its signature header.
func VerifySignature(body []byte, header string, secret string) bool {
	if header == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(header))
}

// Sign computes the signature header value for a body. Used by the dev
// simulator and by tests.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
