// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package api provides the sponge permutation abstract interface.
package api

// Lanes is the number of 64 bit lanes in the Keccak-f[1600] state.
const Lanes = 25

// StateSize is the Keccak-f[1600] state size in bytes.
const StateSize = Lanes * 8

// Rounds is the number of Keccak-f[1600] rounds.
const Rounds = 24

// RoundConstants are the ι step constants, one per round.
var RoundConstants = [Rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// Permutation is a Keccak-f[1600] implementation.
type Permutation interface {
	// Name returns the name of the implementation.
	Name() string

	// Permute applies the full 24 round permutation to the state in place.
	Permute(a *[Lanes]uint64)
}
