package hash

// Hash hashes and verifies secrets. The service uses two implementations:
// bcrypt for the account PIN and HMAC-SHA256 for challenge tokens.
type Hash interface {
	Hash(plaintext string) ([]byte, error)
	Verify(hashed, plaintext string) bool
}
