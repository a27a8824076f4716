package gimlicrypto_test

import (
	"bytes"
	"crypto/sha3"
	"testing"

	gimlicrypto "github.com/korken89/gimli-crypto"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzAEADRoundTrip checks that EncryptInPlace followed by DecryptInPlace
// always recovers the original plaintext for arbitrary key, nonce, AAD,
// and message combinations, and that a tag altered in its first byte is
// rejected.
func FuzzAEADRoundTrip(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("gimlicrypto aead fuzz"))

	for j := 0; j < 10; j++ {
		seed := make([]byte, 512)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		var key [gimlicrypto.KeySize]byte
		var nonce [gimlicrypto.NonceSize]byte
		if kb, err := tp.GetBytes(); err != nil {
			t.Skip(err)
		} else {
			copy(key[:], kb)
		}
		if nb, err := tp.GetBytes(); err != nil {
			t.Skip(err)
		} else {
			copy(nonce[:], nb)
		}

		aad, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		plaintext, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		buf := append([]byte(nil), plaintext...)
		tag := gimlicrypto.EncryptInPlace(&key, &nonce, aad, buf)

		if err := gimlicrypto.DecryptInPlace(&key, &nonce, aad, buf, &tag); err != nil {
			t.Fatalf("DecryptInPlace after EncryptInPlace failed: %v", err)
		}
		if !bytes.Equal(buf, plaintext) {
			t.Fatalf("round trip mismatch: got %x, want %x", buf, plaintext)
		}

		flipByte, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		badTag := tag
		badTag[0] ^= flipByte | 1 // guarantee a nonzero flip
		buf2 := append([]byte(nil), plaintext...)
		gimlicrypto.EncryptInPlace(&key, &nonce, aad, buf2)
		if err := gimlicrypto.DecryptInPlace(&key, &nonce, aad, buf2, &badTag); err != gimlicrypto.ErrAuthenticationFailed {
			t.Fatalf("tampered tag accepted: err = %v", err)
		}
	})
}

// FuzzHashIncrementalMatchesOneShot checks that splitting input across an
// arbitrary number of Hasher.Write calls never changes the digest.
func FuzzHashIncrementalMatchesOneShot(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("gimlicrypto hash fuzz"))

	for j := 0; j < 10; j++ {
		seed := make([]byte, 512)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		message, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		want := gimlicrypto.Hash(message)

		h := gimlicrypto.NewHasher()
		remaining := message
		for len(remaining) > 0 {
			n, err := tp.GetUint16()
			if err != nil {
				t.Skip(err)
			}
			chunk := int(n)%len(remaining) + 1
			h.Write(remaining[:chunk])
			remaining = remaining[chunk:]
		}

		if got := h.Finalize(); got != want {
			t.Fatalf("incremental hash = %x, want %x", got, want)
		}
	})
}
