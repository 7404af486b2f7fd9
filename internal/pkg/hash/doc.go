// Package hash provides secret hashing behind a small interface.
//
// Only hashes are persisted: the account PIN is stored as a bcrypt hash and
// challenge tokens as keyed HMAC-SHA256 digests. Callers verify user input by
// comparing plaintext against the stored value through Hash.Verify.
package hash
