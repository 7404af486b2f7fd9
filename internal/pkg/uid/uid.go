// Package uid provides identifier generation behind small interfaces.
package uid

// NumberID generates numeric identifiers, used as primary keys.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers, used for correlation IDs and
// token identifiers.
type StringID interface {
	Generate() string
}
