// Package otpcode generates the numeric codes dispatched to phones.
package otpcode

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Generator produces an OTP code.
type Generator interface {
	Generate() (string, error)
}

// Static always returns the same code. It is the default in environments
// without a wired SMS operator, so the flow stays testable end to end.
type Static struct {
	code string
}

// NewStatic returns a generator pinned to code.
func NewStatic(code string) *Static {
	return &Static{code: code}
}

// Generate returns the fixed code.
func (s *Static) Generate() (string, error) {
	return s.code, nil
}

// RandomDigits returns uniformly random numeric codes of a fixed length.
type RandomDigits struct {
	length int
}

// NewRandomDigits returns a generator of length-digit codes.
func NewRandomDigits(length int) *RandomDigits {
	return &RandomDigits{length: length}
}

// Generate returns a new random code.
func (r *RandomDigits) Generate() (string, error) {
	var sb strings.Builder
	for i := 0; i < r.length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}
