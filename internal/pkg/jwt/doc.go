// Package jwt issues and verifies the access credentials handed out by
// password confirmation and login.
//
// It includes:
//   - A typed Claims wrapper (registered claims + account identity).
//   - A symmetric HS512 implementation for generating and verifying tokens.
//   - Context helpers for storing and retrieving authenticated claims.
package jwt
