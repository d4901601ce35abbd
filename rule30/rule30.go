// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package rule30 implements a bit oriented sponge function built on the
// Rule 30 elementary cellular automaton.
//
// The automaton runs on a ring of cells.  Each absorbed bit overwrites one
// cell, each squeezed bit is read from another, and every bit in either
// direction is followed by a fixed number of automaton steps.  There is no
// padding, so the output stream is compatible with the r30sponge C library
// for the same parameters.
//
// This is not a vetted cryptographic construction.
package rule30

import (
	"errors"
	"io"

	"gitlab.com/yawning/sponge.git"
)

const (
	// DefaultCells is the default number of cells.
	DefaultCells = 512

	// DefaultSteps is the default number of automaton steps per bit.
	DefaultSteps = 20
)

// ErrInvalidParameters is the error returned when the cell count and step
// count do not leave room for the absorb cell inside the ring.
var ErrInvalidParameters = errors.New("rule30: invalid parameters")

var (
	_ sponge.Sponge = (*Sponge)(nil)
	_ io.ReadWriter = (*Sponge)(nil)
)

// Sponge is a Rule 30 sponge instance.  It is not safe for concurrent use.
// Use New or NewDefault, the zero value is not usable.
type Sponge struct {
	state []byte
	other []byte
	steps int

	finalized bool
}

// New creates a new Sponge with the provided cell and step counts.
func New(cells, steps int) (*Sponge, error) {
	if cells < 3 || steps < 0 || cells/2+steps >= cells {
		return nil, ErrInvalidParameters
	}

	s := &Sponge{
		state: make([]byte, cells),
		other: make([]byte, cells),
		steps: steps,
	}
	s.Reset()

	return s, nil
}

// NewDefault creates a new Sponge with DefaultCells and DefaultSteps.
func NewDefault() *Sponge {
	s, err := New(DefaultCells, DefaultSteps)
	if err != nil {
		panic(err)
	}

	return s
}

// Cells returns the number of cells in the ring.
func (s *Sponge) Cells() int {
	return len(s.state)
}

// Steps returns the number of automaton steps taken per bit.
func (s *Sponge) Steps() int {
	return s.steps
}

// Finalized returns true iff the sponge has been squeezed.
func (s *Sponge) Finalized() bool {
	return s.finalized
}

// Reset returns the sponge to the initial configuration, a single live
// cell in the middle of the ring.
func (s *Sponge) Reset() {
	for i := range s.state {
		s.state[i] = 0
	}
	s.state[len(s.state)/2] = 1
	s.finalized = false
}

// AbsorbBit absorbs the low bit of bit.
func (s *Sponge) AbsorbBit(bit byte) error {
	if s.finalized {
		return sponge.ErrInvalidState
	}

	s.absorbBit(bit)

	return nil
}

// AbsorbByte absorbs a byte, least significant bit first.
func (s *Sponge) AbsorbByte(b byte) error {
	if s.finalized {
		return sponge.ErrInvalidState
	}

	s.absorbByte(b)

	return nil
}

// Write absorbs p.  Either all of p is absorbed, or none of it is and
// sponge.ErrInvalidState is returned.
func (s *Sponge) Write(p []byte) (int, error) {
	if s.finalized {
		return 0, sponge.ErrInvalidState
	}

	for _, b := range p {
		s.absorbByte(b)
	}

	return len(p), nil
}

// WriteString absorbs str, see Write.
func (s *Sponge) WriteString(str string) (int, error) {
	if s.finalized {
		return 0, sponge.ErrInvalidState
	}

	for i := 0; i < len(str); i++ {
		s.absorbByte(str[i])
	}

	return len(str), nil
}

// SqueezeBit squeezes a single bit, returned as 0 or 1.
func (s *Sponge) SqueezeBit() byte {
	s.finalized = true

	b := s.state[len(s.state)/2]
	s.run()

	return b
}

// SqueezeByte squeezes a byte, least significant bit first.
func (s *Sponge) SqueezeByte() byte {
	var b byte
	for i := uint(0); i < 8; i++ {
		b |= s.SqueezeBit() << i
	}

	return b
}

// Read squeezes len(p) bytes into p.  It never returns an error.
func (s *Sponge) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = s.SqueezeByte()
	}

	return len(p), nil
}

func (s *Sponge) absorbByte(b byte) {
	for i := uint(0); i < 8; i++ {
		s.absorbBit((b >> i) & 1)
	}
}

func (s *Sponge) absorbBit(bit byte) {
	s.state[len(s.state)/2+s.steps] = bit & 1
	s.run()
}

func (s *Sponge) run() {
	for i := 0; i < s.steps; i++ {
		s.step()
	}
}

// step advances the automaton one generation, with the ring wrapping at
// both edges.
func (s *Sponge) step() {
	cur, next, n := s.state, s.other, len(s.state)

	next[0] = cur[n-1] ^ (cur[0] | cur[1])
	for i := 1; i < n-1; i++ {
		next[i] = cur[i-1] ^ (cur[i] | cur[i+1])
	}
	next[n-1] = cur[n-2] ^ (cur[n-1] | cur[0])

	s.state, s.other = next, cur
}
