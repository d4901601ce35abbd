// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package sponge

import (
	"encoding/binary"
	"io"

	"gitlab.com/yawning/slice.git"

	"gitlab.com/yawning/sponge.git/internal/api"
)

const (
	// StateSize is the total width of the state (rate + capacity) in bytes.
	StateSize = api.StateSize

	// DefaultRate is the default rate in bytes, leaving a 512 bit capacity.
	DefaultRate = 136

	// DefaultDomainSeparator is the default domain separation byte.
	DefaultDomainSeparator = 0x01

	padFinal = 0x80
)

// IV is the initial value of the state, loaded into the lanes by NewDefault,
// New and Reset.  It is all zero.
var IV [StateSize]byte

var (
	// ParamsKeccak256 are the default parameters, matching the legacy
	// Keccak-256 padding.
	ParamsKeccak256 = Params{Rate: DefaultRate, DomainSeparator: DefaultDomainSeparator}

	// ParamsSHAKE128 are the FIPS 202 SHAKE128 parameters.
	ParamsSHAKE128 = Params{Rate: 168, DomainSeparator: 0x1f}

	// ParamsSHAKE256 are the FIPS 202 SHAKE256 parameters.
	ParamsSHAKE256 = Params{Rate: 136, DomainSeparator: 0x1f}

	_ Sponge        = (*State)(nil)
	_ io.ReadWriter = (*State)(nil)
)

// Params are the sponge parameters.
type Params struct {
	// Rate is the number of state bytes exposed to absorb/squeeze per
	// permutation, and must be in the range (0, StateSize).
	Rate int

	// DomainSeparator is XORed into the state at the start of the padding,
	// and must be in the range [0x01, 0x7f].
	DomainSeparator byte
}

// Mode is the direction of a State.
type Mode int

const (
	// Absorbing is the mode of a State that has not been squeezed.
	Absorbing Mode = iota

	// Squeezing is the mode of a State after the first squeeze.
	Squeezing
)

func (m Mode) String() string {
	switch m {
	case Absorbing:
		return "absorbing"
	case Squeezing:
		return "squeezing"
	default:
		return "unknown"
	}
}

// Sponge is the byte at a time absorb/squeeze interface.
type Sponge interface {
	// AbsorbByte absorbs a single byte.
	AbsorbByte(b byte) error

	// SqueezeByte squeezes a single byte.
	SqueezeByte() byte
}

// State is a sponge instance.  It is not safe for concurrent use.  Use New
// or NewDefault, the zero value is not usable.
type State struct {
	a [api.Lanes]uint64

	offset    int
	mode      Mode
	finalized bool

	rate   int
	dsbyte byte

	perm         api.Permutation
	permutations uint64
}

// NewDefault creates a new State with the default parameters.
func NewDefault() *State {
	s, err := New(ParamsKeccak256)
	if err != nil {
		panic(err)
	}

	return s
}

// New creates a new State with the provided parameters.
func New(p Params) (*State, error) {
	if chosenFactory == nil {
		return nil, ErrNoImplementations
	}
	if p.Rate <= 0 || p.Rate >= StateSize {
		return nil, ErrInvalidRate
	}
	if p.DomainSeparator == 0 || p.DomainSeparator >= padFinal {
		return nil, ErrInvalidDomainSeparator
	}

	s := &State{
		rate:   p.Rate,
		dsbyte: p.DomainSeparator,
		perm:   chosenFactory,
	}
	s.Reset()

	return s, nil
}

// Rate returns the rate in bytes.
func (s *State) Rate() int {
	return s.rate
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Finalized returns true iff the state has been squeezed.
func (s *State) Finalized() bool {
	return s.finalized
}

// AbsorbByte absorbs a single byte.  It fails with ErrInvalidState, leaving
// the state untouched, if the state has been squeezed.
func (s *State) AbsorbByte(b byte) error {
	if s.finalized {
		return ErrInvalidState
	}

	s.xorByte(s.offset, b)
	s.offset++
	if s.offset == s.rate {
		s.permute()
		s.offset = 0
	}

	return nil
}

// SqueezeByte squeezes a single byte, padding and finalizing the state on
// the first call.
func (s *State) SqueezeByte() byte {
	if !s.finalized {
		s.finalize()
	}

	b := s.byteAt(s.offset)
	s.offset++
	if s.offset == s.rate {
		s.permute()
		s.offset = 0
	}

	return b
}

// Write absorbs p.  Either all of p is absorbed, or none of it is and
// ErrInvalidState is returned.
func (s *State) Write(p []byte) (int, error) {
	if s.finalized {
		return 0, ErrInvalidState
	}

	for _, b := range p {
		// Can't fail, the state was checked above.
		_ = s.AbsorbByte(b)
	}

	return len(p), nil
}

// Read squeezes len(p) bytes into p.  It never returns an error.
func (s *State) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = s.SqueezeByte()
	}

	return len(p), nil
}

// Sum appends n squeezed bytes to dst and returns the resulting slice.  The
// output is taken from a copy, so the receiver may continue absorbing.
func (s *State) Sum(dst []byte, n int) []byte {
	ret, out := slice.ForAppend(dst, n)

	tmp := *s
	_, _ = tmp.Read(out)
	tmp.clear()

	return ret
}

// Clone returns a copy of the state.
func (s *State) Clone() *State {
	tmp := *s
	return &tmp
}

// Reset returns the state to the IV in absorbing mode, clearing any
// absorbed data.
func (s *State) Reset() {
	for i := range s.a {
		s.a[i] = binary.LittleEndian.Uint64(IV[i*8:])
	}
	s.offset = 0
	s.mode = Absorbing
	s.finalized = false
	s.permutations = 0
}

func (s *State) finalize() {
	// pad10*1, with the leading bit(s) carried by the domain separator.
	s.xorByte(s.offset, s.dsbyte)
	s.xorByte(s.rate-1, padFinal)
	s.permute()

	s.finalized = true
	s.mode = Squeezing
	s.offset = 0
}

func (s *State) permute() {
	s.perm.Permute(&s.a)
	s.permutations++
}

func (s *State) xorByte(i int, b byte) {
	s.a[i>>3] ^= uint64(b) << (8 * uint(i&7))
}

func (s *State) byteAt(i int) byte {
	return byte(s.a[i>>3] >> (8 * uint(i&7)))
}

func (s *State) clear() {
	for i := range s.a {
		s.a[i] = 0
	}
}
