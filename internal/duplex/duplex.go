// Package duplex implements the rate-16/capacity-32 cryptographic duplex
// shared by Gimli24-v1 AEAD and Gimli24-v1 Hash. It knows nothing about
// keys, nonces, or tags — only how to absorb, pad, squeeze, and
// encrypt/decrypt over a Gimli state.
package duplex

import (
	"github.com/korken89/gimli-crypto/internal/gimli"
	"github.com/korken89/gimli-crypto/internal/mem"
)

// Rate is the number of bytes of the 48-byte Gimli state exposed as the
// duplex's rate (I/O surface); the remaining 32 bytes are capacity.
const Rate = 16

const stateLen = 48

// State is a Gimli duplex. The zero value is a freshly zeroed duplex ready
// to absorb. State is not safe for concurrent use.
type State struct {
	buf [stateLen]byte
	pos int
}

// Buffer returns a pointer to the duplex's raw 48-byte state, for callers
// that need to load key/nonce material directly into the rate or capacity
// before the first Permute (e.g. AEAD initialization). It must only be used
// while pos == 0.
func (d *State) Buffer() *[stateLen]byte {
	return &d.buf
}

// Permute applies the Gimli permutation to the entire state and resets the
// duplex's position to the start of the rate.
func (d *State) Permute() {
	gimli.Permute(&d.buf)
	d.pos = 0
}

// Absorb XORs data into the rate, permuting every time a full rate block
// accumulates. Multiple Absorb calls behave like one Absorb call with the
// concatenated input.
func (d *State) Absorb(data []byte) {
	for len(data) > 0 {
		n := min(len(data), Rate-d.pos)
		rate := d.buf[d.pos : d.pos+n]
		mem.XOR(rate, rate, data[:n])
		d.pos += n
		if d.pos == Rate {
			d.Permute()
		}
		data = data[n:]
	}
}

// AbsorbPadRate finalizes an absorption phase using Gimli24-v1 Hash's
// padding convention: it XORs domain into the state byte at the current
// rate position, XORs the padding marker 0x80 into the last byte of the
// rate (byte 15), and permutes. It requires pos < Rate, which always
// holds immediately after Absorb returns (Absorb never leaves pos == Rate
// without permuting).
func (d *State) AbsorbPadRate(domain byte) {
	d.buf[d.pos] ^= domain
	d.buf[Rate-1] ^= 0x80
	d.Permute()
}

// AbsorbPadCapacity finalizes an absorption phase using Gimli24-v1 AEAD's
// padding convention: it XORs domain into the state byte at the current
// rate position, XORs domain again into the last byte of the full state
// (byte 47, inside the capacity), and permutes. It requires pos < Rate.
func (d *State) AbsorbPadCapacity(domain byte) {
	d.buf[d.pos] ^= domain
	d.buf[stateLen-1] ^= domain
	d.Permute()
}

// Squeeze fills out with rate bytes, permuting before each additional
// block is needed. Multiple Squeeze calls behave like one Squeeze call
// with the concatenated output.
func (d *State) Squeeze(out []byte) {
	for len(out) > 0 {
		n := min(len(out), Rate-d.pos)
		copy(out[:n], d.buf[d.pos:d.pos+n])
		d.pos += n
		if d.pos == Rate {
			d.Permute()
		}
		out = out[n:]
	}
}

// EncryptBlock processes one full (Rate-byte) block of plaintext: it XORs
// src into the rate, copies the resulting rate bytes (ciphertext) to dst,
// and permutes. Both src and dst must have length Rate.
func (d *State) EncryptBlock(dst, src []byte) {
	rate := d.buf[:Rate]
	mem.XOR(rate, rate, src)
	copy(dst, rate)
	d.Permute()
}

// EncryptFinal processes the final, possibly empty, plaintext chunk of a
// message (len(src) < Rate): it XORs src into the rate, copies the
// resulting bytes to dst, then finalizes with AbsorbPadCapacity(domain).
// It requires pos == 0.
func (d *State) EncryptFinal(dst, src []byte, domain byte) {
	rate := d.buf[:len(src)]
	mem.XOR(rate, rate, src)
	copy(dst, rate)
	d.pos = len(src)
	d.AbsorbPadCapacity(domain)
}

// DecryptBlock processes one full (Rate-byte) block of ciphertext: it
// recovers plaintext into dst as rate XOR src, replaces the rate with src
// (the ciphertext, which becomes the new keystream state), and permutes.
// It is correct even when dst aliases src. Both src and dst must have
// length Rate.
func (d *State) DecryptBlock(dst, src []byte) {
	rate := d.buf[:Rate]
	for i := 0; i < Rate; i++ {
		c := src[i]
		dst[i] = rate[i] ^ c
		rate[i] = c
	}
	d.Permute()
}

// DecryptFinal processes the final, possibly empty, ciphertext chunk of a
// message (len(src) < Rate): it recovers plaintext into dst, replaces the
// consumed rate bytes with src, then finalizes with
// AbsorbPadCapacity(domain). It is correct even when dst aliases src, and
// requires pos == 0.
func (d *State) DecryptFinal(dst, src []byte, domain byte) {
	rate := d.buf[:len(src)]
	for i := range src {
		c := src[i]
		dst[i] = rate[i] ^ c
		rate[i] = c
	}
	d.pos = len(src)
	d.AbsorbPadCapacity(domain)
}
