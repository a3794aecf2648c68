package slipstore

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Signed slip URLs carry an expiry and an HMAC over "name|expiry":
//
//	/v1/slips/{name}?exp=<unix>&sig=<base64url(HMAC_SHA256)>
//
// The signature lets the slip endpoint stay outside session auth so slips can
// be opened in a plain browser tab, while still expiring.

func signature(name string, exp int64, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%d", name, exp)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SignURL builds the relative signed URL for a stored slip.
func SignURL(name, secret string, ttl time.Duration, now time.Time) string {
	exp := now.Add(ttl).Unix()
	q := url.Values{}
	q.Set("exp", strconv.FormatInt(exp, 10))
	q.Set("sig", signature(name, exp, secret))
	return "/v1/slips/" + url.PathEscape(name) + "?" + q.Encode()
}

// VerifyURL checks the signature and expiry of an incoming slip request.
func VerifyURL(name, expStr, sig, secret string, now time.Time) bool {
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return false
	}
	if now.Unix() > exp {
		return false
	}
	return hmac.Equal([]byte(signature(name, exp, secret)), []byte(sig))
}
