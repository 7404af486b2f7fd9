// Package token generates the opaque challenge tokens that chain the OTP
// flow together: a two-segment remember token binds the OTP request to its
// verification, and a three-segment verify token binds the verification to
// the password confirmation.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const segmentBytes = 16

// Generator produces opaque tokens built from random segments.
type Generator interface {
	Generate(segments int) (string, error)
}

// Rand implements Generator with crypto/rand segments, hex encoded and
// joined without a separator.
type Rand struct{}

// NewRand returns a Rand generator.
func NewRand() *Rand {
	return &Rand{}
}

// Generate returns a token of the given number of random segments.
func (*Rand) Generate(segments int) (string, error) {
	var sb strings.Builder
	buf := make([]byte, segmentBytes)
	for i := 0; i < segments; i++ {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		sb.WriteString(hex.EncodeToString(buf))
	}
	return sb.String(), nil
}
