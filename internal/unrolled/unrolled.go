// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package unrolled provides a Keccak-f[1600] implementation with the round
// function fully unrolled.
package unrolled

import (
	"math/bits"

	"gitlab.com/yawning/sponge.git/internal/api"
)

// Permutation is the unrolled implementation.
var Permutation api.Permutation = &unrolledPermutation{}

// ρ rotation offsets, indexed by source lane (x + 5y).  Constants rather
// than a table so that the compiler can emit immediate rotates.
const (
	ro00 = 0
	ro01 = 1
	ro02 = 62
	ro03 = 28
	ro04 = 27
	ro05 = 36
	ro06 = 44
	ro07 = 6
	ro08 = 55
	ro09 = 20
	ro10 = 3
	ro11 = 10
	ro12 = 43
	ro13 = 25
	ro14 = 39
	ro15 = 41
	ro16 = 45
	ro17 = 15
	ro18 = 21
	ro19 = 8
	ro20 = 18
	ro21 = 2
	ro22 = 61
	ro23 = 56
	ro24 = 14
)

type unrolledPermutation struct{}

func (p *unrolledPermutation) Name() string {
	return "unrolled"
}

func (p *unrolledPermutation) Permute(a *[api.Lanes]uint64) {
	var b [api.Lanes]uint64

	for _, rc := range api.RoundConstants {
		// θ
		c0 := a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
		c1 := a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
		c2 := a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
		c3 := a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
		c4 := a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]

		d0 := c4 ^ bits.RotateLeft64(c1, 1)
		d1 := c0 ^ bits.RotateLeft64(c2, 1)
		d2 := c1 ^ bits.RotateLeft64(c3, 1)
		d3 := c2 ^ bits.RotateLeft64(c4, 1)
		d4 := c3 ^ bits.RotateLeft64(c0, 1)

		a[0] ^= d0
		a[1] ^= d1
		a[2] ^= d2
		a[3] ^= d3
		a[4] ^= d4
		a[5] ^= d0
		a[6] ^= d1
		a[7] ^= d2
		a[8] ^= d3
		a[9] ^= d4
		a[10] ^= d0
		a[11] ^= d1
		a[12] ^= d2
		a[13] ^= d3
		a[14] ^= d4
		a[15] ^= d0
		a[16] ^= d1
		a[17] ^= d2
		a[18] ^= d3
		a[19] ^= d4
		a[20] ^= d0
		a[21] ^= d1
		a[22] ^= d2
		a[23] ^= d3
		a[24] ^= d4

		// ρ and π
		b[0] = bits.RotateLeft64(a[0], ro00)
		b[1] = bits.RotateLeft64(a[6], ro06)
		b[2] = bits.RotateLeft64(a[12], ro12)
		b[3] = bits.RotateLeft64(a[18], ro18)
		b[4] = bits.RotateLeft64(a[24], ro24)
		b[5] = bits.RotateLeft64(a[3], ro03)
		b[6] = bits.RotateLeft64(a[9], ro09)
		b[7] = bits.RotateLeft64(a[10], ro10)
		b[8] = bits.RotateLeft64(a[16], ro16)
		b[9] = bits.RotateLeft64(a[22], ro22)
		b[10] = bits.RotateLeft64(a[1], ro01)
		b[11] = bits.RotateLeft64(a[7], ro07)
		b[12] = bits.RotateLeft64(a[13], ro13)
		b[13] = bits.RotateLeft64(a[19], ro19)
		b[14] = bits.RotateLeft64(a[20], ro20)
		b[15] = bits.RotateLeft64(a[4], ro04)
		b[16] = bits.RotateLeft64(a[5], ro05)
		b[17] = bits.RotateLeft64(a[11], ro11)
		b[18] = bits.RotateLeft64(a[17], ro17)
		b[19] = bits.RotateLeft64(a[23], ro23)
		b[20] = bits.RotateLeft64(a[2], ro02)
		b[21] = bits.RotateLeft64(a[8], ro08)
		b[22] = bits.RotateLeft64(a[14], ro14)
		b[23] = bits.RotateLeft64(a[15], ro15)
		b[24] = bits.RotateLeft64(a[21], ro21)

		// χ
		a[0] = b[0] ^ (^b[1] & b[2])
		a[1] = b[1] ^ (^b[2] & b[3])
		a[2] = b[2] ^ (^b[3] & b[4])
		a[3] = b[3] ^ (^b[4] & b[0])
		a[4] = b[4] ^ (^b[0] & b[1])
		a[5] = b[5] ^ (^b[6] & b[7])
		a[6] = b[6] ^ (^b[7] & b[8])
		a[7] = b[7] ^ (^b[8] & b[9])
		a[8] = b[8] ^ (^b[9] & b[5])
		a[9] = b[9] ^ (^b[5] & b[6])
		a[10] = b[10] ^ (^b[11] & b[12])
		a[11] = b[11] ^ (^b[12] & b[13])
		a[12] = b[12] ^ (^b[13] & b[14])
		a[13] = b[13] ^ (^b[14] & b[10])
		a[14] = b[14] ^ (^b[10] & b[11])
		a[15] = b[15] ^ (^b[16] & b[17])
		a[16] = b[16] ^ (^b[17] & b[18])
		a[17] = b[17] ^ (^b[18] & b[19])
		a[18] = b[18] ^ (^b[19] & b[15])
		a[19] = b[19] ^ (^b[15] & b[16])
		a[20] = b[20] ^ (^b[21] & b[22])
		a[21] = b[21] ^ (^b[22] & b[23])
		a[22] = b[22] ^ (^b[23] & b[24])
		a[23] = b[23] ^ (^b[24] & b[20])
		a[24] = b[24] ^ (^b[20] & b[21])

		// ι
		a[0] ^= rc
	}
}
