package gimlicrypto

import "github.com/korken89/gimli-crypto/internal/duplex"

// Hash computes the 256-bit Gimli24-v1 Hash digest of input in one call.
func Hash(input []byte) [DigestSize]byte {
	h := NewHasher()
	h.Write(input)
	return h.Finalize()
}

// Hasher computes a Gimli24-v1 Hash digest incrementally. The zero value
// is ready to use, as is the result of NewHasher. Hasher is not safe for
// concurrent use.
type Hasher struct {
	d         duplex.State
	finalized bool
}

// NewHasher returns a Hasher ready to absorb input.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Write absorbs p into the running hash. It never returns an error.
// Write panics if called after Finalize or FinalizeXOF.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.finalized {
		panic("gimlicrypto: Write called on a finalized Hasher")
	}
	h.d.Absorb(p)
	return len(p), nil
}

// Finalize absorbs the domain-separation padding and returns the fixed
// 256-bit digest. Finalize panics if called more than once, or after
// FinalizeXOF.
func (h *Hasher) Finalize() [DigestSize]byte {
	var out [DigestSize]byte
	h.finalize()
	h.d.Squeeze(out[:])
	return out
}

// FinalizeXOF absorbs the domain-separation padding and fills out with an
// arbitrary-length extendable output. FinalizeXOF panics if called more
// than once, or after Finalize. Truncating out to DigestSize bytes
// produces the same result as Finalize.
func (h *Hasher) FinalizeXOF(out []byte) {
	h.finalize()
	h.d.Squeeze(out)
}

func (h *Hasher) finalize() {
	if h.finalized {
		panic("gimlicrypto: Hasher already finalized")
	}
	h.finalized = true
	h.d.AbsorbPadRate(domainHash)
}
