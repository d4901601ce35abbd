// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package sponge implements a byte oriented sponge construction over the
// Keccak-f[1600] permutation.
//
// A State absorbs input one byte at a time and then squeezes output one
// byte at a time.  The first squeeze pads and finalizes the state, after
// which further absorption is rejected with ErrInvalidState until the state
// is Reset.  With the default parameters the output stream is identical to
// the legacy (pre-FIPS 202) Keccak-256 padding rule, extended indefinitely.
package sponge

import (
	"errors"

	"gitlab.com/yawning/sponge.git/internal/api"
	"gitlab.com/yawning/sponge.git/internal/ref"
	"gitlab.com/yawning/sponge.git/internal/unrolled"
)

var (
	// ErrNoImplementations is the error returned when there are no working
	// implementations.
	ErrNoImplementations = errors.New("sponge: no working implementations")

	// ErrInvalidState is the error returned when absorbing into a state
	// that has already been squeezed.
	ErrInvalidState = errors.New("sponge: absorb after squeeze")

	// ErrInvalidRate is the error returned when the rate is out of range.
	ErrInvalidRate = errors.New("sponge: invalid rate")

	// ErrInvalidDomainSeparator is the error returned when the domain
	// separator can not carry the first padding bit.
	ErrInvalidDomainSeparator = errors.New("sponge: invalid domain separator")

	chosenFactory      api.Permutation
	supportedFactories []api.Permutation
)

// Implementations returns the names of the supported permutation
// implementations, with the one in use first.
func Implementations() []string {
	var names []string
	if chosenFactory != nil {
		names = append(names, chosenFactory.Name())
	}
	for _, v := range supportedFactories {
		if v != chosenFactory {
			names = append(names, v.Name())
		}
	}

	return names
}

func init() {
	supportedFactories = []api.Permutation{
		unrolled.Permutation,
		ref.Permutation,
	}

	if len(supportedFactories) > 0 {
		chosenFactory = supportedFactories[0]
	}
}
