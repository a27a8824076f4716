//go:build amd64 && !purego

package gimli

import (
	"encoding/binary"
	"math/bits"
)

// permute is shaped after the reference SSE2 implementation: the 3x4 word
// matrix is held as three 4-wide rows (one per logical 128-bit XMM lane)
// and the SP-box is applied to all four columns of a row at once instead of
// column-by-column with scalar temporaries. The small and big swaps become
// shuffles confined to row0, matching how the SSE2 code permutes lane 0 in
// place. This is a portable Go restructuring of the same arithmetic as
// permuteGeneric, not hand-written assembly; see DESIGN.md.
func permute(state *[48]byte) {
	var row0, row1, row2 [4]uint32
	for i := 0; i < 4; i++ {
		row0[i] = binary.LittleEndian.Uint32(state[i*4 : i*4+4])
		row1[i] = binary.LittleEndian.Uint32(state[16+i*4 : 16+i*4+4])
		row2[i] = binary.LittleEndian.Uint32(state[32+i*4 : 32+i*4+4])
	}

	for round := 24; round > 0; round-- {
		var x, y, z [4]uint32
		for i := 0; i < 4; i++ {
			x[i] = bits.RotateLeft32(row0[i], 24)
			y[i] = bits.RotateLeft32(row1[i], 9)
			z[i] = row2[i]
		}

		var newRow0, newRow1, newRow2 [4]uint32
		for i := 0; i < 4; i++ {
			newRow2[i] = x[i] ^ (z[i] << 1) ^ ((y[i] & z[i]) << 2)
			newRow1[i] = y[i] ^ x[i] ^ ((x[i] | z[i]) << 1)
			newRow0[i] = z[i] ^ y[i] ^ ((x[i] & y[i]) << 3)
		}
		row0, row1, row2 = newRow0, newRow1, newRow2

		switch round & 3 {
		case 0: // small swap: shuffle lane 0 as (1,0,3,2)
			row0[0], row0[1] = row0[1], row0[0]
			row0[2], row0[3] = row0[3], row0[2]
			row0[0] ^= 0x9e377900 | uint32(round) //nolint:gosec // round is always [1,24]
		case 2: // big swap: shuffle lane 0 as (2,3,0,1)
			row0[0], row0[2] = row0[2], row0[0]
			row0[1], row0[3] = row0[3], row0[1]
		}
	}

	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(state[i*4:i*4+4], row0[i])
		binary.LittleEndian.PutUint32(state[16+i*4:16+i*4+4], row1[i])
		binary.LittleEndian.PutUint32(state[32+i*4:32+i*4+4], row2[i])
	}
}
