// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package ref provides a compact, table driven Keccak-f[1600]
// implementation.  It is slow but easy to audit, and serves as the
// baseline that the faster implementations are checked against.
package ref

import (
	"math/bits"

	"gitlab.com/yawning/sponge.git/internal/api"
)

// Permutation is the reference implementation.
var Permutation api.Permutation = &refPermutation{}

var (
	// ρ rotation offsets, in π traversal order starting from lane 1.
	rotations = [24]int{
		1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
		27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
	}

	// π lane traversal order.
	piLanes = [24]int{
		10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
		15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
	}
)

type refPermutation struct{}

func (p *refPermutation) Name() string {
	return "ref"
}

func (p *refPermutation) Permute(a *[api.Lanes]uint64) {
	var c [5]uint64

	for round := 0; round < api.Rounds; round++ {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < api.Lanes; y += 5 {
				a[y+x] ^= d
			}
		}

		// ρ and π
		cur := a[1]
		for i, j := range piLanes {
			tmp := a[j]
			a[j] = bits.RotateLeft64(cur, rotations[i])
			cur = tmp
		}

		// χ
		for y := 0; y < api.Lanes; y += 5 {
			copy(c[:], a[y:y+5])
			for x := 0; x < 5; x++ {
				a[y+x] = c[x] ^ (^c[(x+1)%5] & c[(x+2)%5])
			}
		}

		// ι
		a[0] ^= api.RoundConstants[round]
	}
}
