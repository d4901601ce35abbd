// Copryright (C) 2019 Yawning Angel
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package rule30

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/yawning/sponge.git"
)

func TestBasic(t *testing.T) {
	require := require.New(t)

	s := NewDefault()
	require.Equal(DefaultCells, s.Cells(), "Cells()")
	require.Equal(DefaultSteps, s.Steps(), "Steps()")
	require.False(s.Finalized(), "Finalized()")
	for i, v := range s.state {
		if i == DefaultCells/2 {
			require.EqualValues(1, v, "NewDefault() - middle cell")
		} else {
			require.EqualValues(0, v, "NewDefault() - cell %d", i)
		}
	}

	for _, v := range [][2]int{{0, 0}, {2, 0}, {8, 4}, {8, 5}, {64, -1}} {
		_, err := New(v[0], v[1])
		require.EqualError(err, ErrInvalidParameters.Error(), "New(%d, %d)", v[0], v[1])
	}
	for _, v := range [][2]int{{3, 0}, {8, 3}, {64, 20}} {
		_, err := New(v[0], v[1])
		require.NoError(err, "New(%d, %d)", v[0], v[1])
	}
}

func TestZeroValue(t *testing.T) {
	require := require.New(t)

	// Only New and NewDefault produce a usable Sponge.
	require.Panics(func() {
		var s Sponge
		_ = s.AbsorbByte(1)
	}, "zero Sponge - AbsorbByte()")
}

func TestVector(t *testing.T) {
	require := require.New(t)

	// r30sponge default parameters.
	s := NewDefault()
	for _, b := range []byte("Hello world!") {
		require.NoError(s.AbsorbByte(b), "AbsorbByte()")
	}

	var out []byte
	for i := 0; i < 5; i++ {
		out = append(out, s.SqueezeByte())
	}
	require.Equal([]byte{231, 190, 6, 124, 69}, out, "SqueezeByte() x5")
}

func TestBulk(t *testing.T) {
	require := require.New(t)

	a, b, c := NewDefault(), NewDefault(), NewDefault()
	msg := "Let's hash some data"

	for i := 0; i < len(msg); i++ {
		require.NoError(a.AbsorbByte(msg[i]), "AbsorbByte()")
	}
	n, err := b.Write([]byte(msg))
	require.NoError(err, "Write()")
	require.Equal(len(msg), n, "Write() - length")
	n, err = c.WriteString(msg)
	require.NoError(err, "WriteString()")
	require.Equal(len(msg), n, "WriteString() - length")

	outA := make([]byte, 16)
	for i := range outA {
		outA[i] = a.SqueezeByte()
	}
	outB := make([]byte, 16)
	_, _ = b.Read(outB)
	outC := make([]byte, 16)
	_, _ = c.Read(outC)
	require.Equal(outA, outB, "Read() - matches SqueezeByte()")
	require.Equal(outA, outC, "WriteString() - matches Write()")

	// Bit and byte squeezing share one stream.
	d := NewDefault()
	_, _ = d.WriteString(msg)
	var first byte
	for i := uint(0); i < 8; i++ {
		first |= d.SqueezeBit() << i
	}
	require.Equal(outA[0], first, "SqueezeBit() x8")

	// AbsorbBit masks to the low bit.
	e, f := NewDefault(), NewDefault()
	require.NoError(e.AbsorbBit(0xff), "AbsorbBit(0xff)")
	require.NoError(f.AbsorbBit(1), "AbsorbBit(1)")
	require.Equal(e.state, f.state, "AbsorbBit() - masked")
}

func TestFinalizeLock(t *testing.T) {
	require := require.New(t)

	s := NewDefault()
	_, _ = s.WriteString("Test message")
	_ = s.SqueezeBit()
	require.True(s.Finalized(), "Finalized() - after squeeze")

	snapshot := append([]byte{}, s.state...)
	require.EqualError(s.AbsorbByte(1), sponge.ErrInvalidState.Error(), "AbsorbByte() - after squeeze")
	require.EqualError(s.AbsorbBit(1), sponge.ErrInvalidState.Error(), "AbsorbBit() - after squeeze")
	n, err := s.Write([]byte("x"))
	require.EqualError(err, sponge.ErrInvalidState.Error(), "Write() - after squeeze")
	require.Equal(0, n, "Write() - after squeeze, length")
	_, err = s.WriteString("x")
	require.EqualError(err, sponge.ErrInvalidState.Error(), "WriteString() - after squeeze")
	require.True(bytes.Equal(snapshot, s.state), "rejected absorb - state unchanged")

	s.Reset()
	require.False(s.Finalized(), "Finalized() - after Reset()")
	require.NoError(s.AbsorbByte(1), "AbsorbByte() - after Reset()")
}

func TestDeterminism(t *testing.T) {
	require := require.New(t)

	squeeze := func(msg string) []byte {
		s := NewDefault()
		_, _ = s.WriteString(msg)
		out := make([]byte, 32)
		_, _ = s.Read(out)
		return out
	}

	require.Equal(squeeze("Test message"), squeeze("Test message"), "Determinism")
	require.NotEqual(squeeze("Test message"), squeeze("Test messagf"), "Sensitivity")
}

func TestBitBalance(t *testing.T) {
	require := require.New(t)

	s := NewDefault()
	_, _ = s.WriteString("Epic seed time")
	_, _ = s.Write([]byte{0x5f, 0x1b, 0x5e, 0x60, 0x00, 0x00, 0x00, 0x00})

	var even, odd int
	for i := 0; i < 5000; i++ {
		if s.SqueezeBit() == 0 {
			even++
		} else {
			odd++
		}
	}
	require.InDelta(1.0, float64(even)/float64(odd), 0.15, "even/odd ratio (%d/%d)", even, odd)
}

func BenchmarkRule30(b *testing.B) {
	s := NewDefault()
	out := make([]byte, 64)

	b.SetBytes(int64(len(out)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Read(out)
	}
}
