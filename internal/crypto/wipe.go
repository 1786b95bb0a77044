package crypto

import (
	"runtime"

	"vitaverify/internal/domain"
)

// Wipe zeroes b. Copies made elsewhere (by the runtime or a decoder) are not
// reached.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}

// WipeIssuerKey zeroes the private half of key in place.
func WipeIssuerKey(key *domain.IssuerKey) {
	Wipe(key.Private[:])
}
