// Package gimlicrypto implements the Gimli24-v1 AEAD and Gimli24-v1 Hash
// constructions, both built directly on the 24-round Gimli permutation
// (github.com/korken89/gimli-crypto/internal/gimli) via a shared rate-16
// duplex (github.com/korken89/gimli-crypto/internal/duplex).
//
// Both constructions are synchronous, allocation-free, and operate on
// caller-owned buffers. Neither provides key derivation, nonce management,
// or streaming AEAD with chunked authentication; callers are responsible
// for nonce uniqueness per key.
package gimlicrypto

import "errors"

const (
	// KeySize is the size, in bytes, of a Gimli24-v1 AEAD key.
	KeySize = 32
	// NonceSize is the size, in bytes, of a Gimli24-v1 AEAD nonce. Nonces
	// must never be reused with the same key.
	NonceSize = 16
	// TagSize is the size, in bytes, of a Gimli24-v1 AEAD authentication tag.
	TagSize = 16
	// DigestSize is the size, in bytes, of a Gimli24-v1 Hash fixed-length digest.
	DigestSize = 32
	// Rate is the number of bytes absorbed or squeezed by the underlying
	// duplex per permutation call.
	Rate = 16
	// StateSize is the size, in bytes, of the Gimli permutation's state.
	StateSize = 48
)

// domain separation bytes. The AEAD's AAD and message finalization share
// one domain byte; the hash's finalization uses a distinct one, and the
// two modes pad differently (see internal/duplex.AbsorbPadCapacity vs
// AbsorbPadRate). The hash byte and pad routine are pinned by the
// reference test vectors in hash_test.go; aead_test.go checks only
// round-trip and tamper detection, so no vector pins the AEAD byte. See
// DESIGN.md.
const (
	domainAEAD = 0x01
	domainHash = 0x1f
)

// ErrAuthenticationFailed is returned by DecryptInPlace when the computed
// authentication tag does not match the provided tag. When this error is
// returned, buf has already been zeroed and must be treated as
// uninitialized by the caller.
var ErrAuthenticationFailed = errors.New("gimlicrypto: authentication failed")
