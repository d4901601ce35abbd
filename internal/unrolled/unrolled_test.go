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

package unrolled

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/yawning/sponge.git/internal/api"
)

func TestZeroState(t *testing.T) {
	require := require.New(t)

	// Keccak team intermediate values, Keccak-f[1600] of the zero state.
	var a [api.Lanes]uint64
	Permutation.Permute(&a)
	require.Equal(uint64(0xF1258F7940E1DDE7), a[0], "Permute(0) - lane 0")
	require.Equal(uint64(0x84D5CCF933C0478A), a[1], "Permute(0) - lane 1")
	require.Equal("unrolled", Permutation.Name(), "Name()")
}
