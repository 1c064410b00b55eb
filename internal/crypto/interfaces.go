// Package crypto holds the credential-hashing primitive used by the auth
// service. It knows nothing about the network, the database, or users; its
// only job is to turn plaintext passwords into salted one-way digests and
// to verify them.
package crypto

// PasswordHasher produces and verifies salted, one-way password digests.
//
// Hash is non-deterministic: two calls with the same plaintext return
// different digest strings (fresh salt per call), yet both verify. Compare
// performs a constant-time check so that a mismatch does not leak how much
// of the digest matched.
type PasswordHasher interface {
	// Hash derives a salted digest from the plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether password was the input that produced digest.
	// A plain mismatch is (false, nil); an error is returned only when the
	// digest itself is unusable (malformed, truncated).
	Compare(digest string, password string) (bool, error)
}
