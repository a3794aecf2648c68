package tourbooking

import "crypto/rand"

// idAlphabet deliberately drops 0/O and 1/I so references survive being
// read over the phone.
const idAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const idLength = 5

// NewID generates a 5-character alphanumeric booking reference like "7GQ2M".
// Uniqueness is enforced by the primary key; callers retry on collision.
func NewID() string {
	var buf [idLength]byte
	_, _ = rand.Read(buf[:])
	for i := range buf {
		buf[i] = idAlphabet[int(buf[i])%len(idAlphabet)]
	}
	return string(buf[:])
}
