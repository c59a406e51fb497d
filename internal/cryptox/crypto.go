// Package cryptox provides the credential derivation used by the client
// before anything leaves the machine. The server only ever sees the
// derived credential, never the password itself.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// DeriveCredential stretches a password into the credential string sent to
// the server. The salt is derived from the username, so the same
// username/password pair always produces the same credential on any
// machine.
func DeriveCredential(password []byte, username string) string {
	salt := sha256.Sum256([]byte(username))
	key := argon2.IDKey(password, salt[:], 1, 64*1024, 4, 32)
	return hex.EncodeToString(key)
}

// WipeByteArray zeroes the slice in place. Callers use it to drop password
// bytes as soon as the credential is derived.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
