// Package phone canonicalizes phone numbers so every table key and lock key
// uses one spelling per subscriber.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Canonicalize parses raw against the default region and returns the E.164
// digits without the leading plus sign. It returns false when raw is not a
// possible number.
func Canonicalize(raw, defaultRegion string) (string, bool) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return "", false
	}
	return strings.TrimPrefix(phonenumbers.Format(num, phonenumbers.E164), "+"), true
}
