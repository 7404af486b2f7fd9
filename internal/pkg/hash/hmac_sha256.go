package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HMACSHA256 implements Hash as a keyed SHA-256 digest, hex encoded.
// Challenge tokens are stored in this form so a database leak does not
// expose usable tokens.
type HMACSHA256 struct {
	secret []byte
}

// NewHMACSHA256 creates a hasher keyed with secret.
func NewHMACSHA256(secret string) *HMACSHA256 {
	return &HMACSHA256{secret: []byte(secret)}
}

// Hash returns the hex-encoded HMAC-SHA256 digest of plaintext.
func (s *HMACSHA256) Hash(plaintext string) ([]byte, error) {
	return s.digest(plaintext), nil
}

// Verify reports whether plaintext digests to the stored value. The
// comparison is constant time.
func (s *HMACSHA256) Verify(hashed, plaintext string) bool {
	return subtle.ConstantTimeCompare([]byte(hashed), s.digest(plaintext)) == 1
}

func (s *HMACSHA256) digest(plaintext string) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(plaintext))
	sum := h.Sum(nil)
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum)
	return out
}
