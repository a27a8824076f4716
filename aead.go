package gimlicrypto

import (
	"crypto/subtle"

	"github.com/korken89/gimli-crypto/internal/duplex"
)

// EncryptInPlace encrypts buf in place using Gimli24-v1 AEAD and returns
// the authentication tag. buf is overwritten with ciphertext of equal
// length. aad is authenticated but not encrypted.
//
// The caller must ensure nonce is never reused with the same key; the
// library does not track or enforce nonce uniqueness. Reuse yields
// catastrophic confidentiality loss.
func EncryptInPlace(key *[KeySize]byte, nonce *[NonceSize]byte, aad, buf []byte) [TagSize]byte {
	d := initAEAD(key, nonce)
	processAAD(&d, aad)

	for len(buf) >= duplex.Rate {
		d.EncryptBlock(buf[:duplex.Rate], buf[:duplex.Rate])
		buf = buf[duplex.Rate:]
	}
	d.EncryptFinal(buf, buf, domainAEAD)

	var tag [TagSize]byte
	copy(tag[:], d.Buffer()[:TagSize])
	return tag
}

// DecryptInPlace decrypts buf in place using Gimli24-v1 AEAD, verifying
// the authentication tag in constant time. On success, buf holds the
// plaintext. On failure, buf is zeroed and ErrAuthenticationFailed is
// returned; the caller must treat buf as uninitialized.
func DecryptInPlace(key *[KeySize]byte, nonce *[NonceSize]byte, aad, buf []byte, tag *[TagSize]byte) error {
	d := initAEAD(key, nonce)
	processAAD(&d, aad)

	whole := buf
	for len(buf) >= duplex.Rate {
		d.DecryptBlock(buf[:duplex.Rate], buf[:duplex.Rate])
		buf = buf[duplex.Rate:]
	}
	d.DecryptFinal(buf, buf, domainAEAD)

	if subtle.ConstantTimeCompare(d.Buffer()[:TagSize], tag[:]) == 0 {
		clear(whole)
		return ErrAuthenticationFailed
	}
	return nil
}

// initAEAD loads nonce into state bytes [0,16) and key into state bytes
// [16,48), then permutes once.
func initAEAD(key *[KeySize]byte, nonce *[NonceSize]byte) duplex.State {
	var d duplex.State
	b := d.Buffer()
	copy(b[:NonceSize], nonce[:])
	copy(b[NonceSize:], key[:])
	d.Permute()
	return d
}

// processAAD absorbs associated data and finalizes the AAD phase, even
// when aad is empty. Absorb already tracks the rate position and
// permutes on every full block, so no manual chunking is needed here;
// AbsorbPadCapacity always lands at a position strictly less than Rate.
func processAAD(d *duplex.State, aad []byte) {
	d.Absorb(aad)
	d.AbsorbPadCapacity(domainAEAD)
}
