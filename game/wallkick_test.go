package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWallkicks(t *testing.T) {
	t.Run("same inputs return the same ordered offsets", func(t *testing.T) {
		for _, f := range Families {
			for _, r := range []Rotation{CW, CCW} {
				for from := 0; from < 4; from++ {
					first := Wallkicks(f, r, from)
					require.Equal(t, first, Wallkicks(f, r, from))
					require.Equal(t, Kick{0, 0}, first[0], "the unkicked rotation is always tried first")
				}
			}
		}
	})

	t.Run("I uses its own table", func(t *testing.T) {
		require.Equal(t, []Kick{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, Wallkicks(I, CW, 0))
		require.Equal(t, []Kick{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}, Wallkicks(I, CCW, 3))
	})

	t.Run("other families share the normal table", func(t *testing.T) {
		for _, f := range []Family{T, L, J, S, Z} {
			require.Equal(t, []Kick{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, Wallkicks(f, CW, 0))
			require.Equal(t, []Kick{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}, Wallkicks(f, CCW, 3))
			require.Equal(t, []Kick{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, -2}}, Wallkicks(f, CW, 3))
		}
	})

	t.Run("O rotates in place", func(t *testing.T) {
		require.Equal(t, []Kick{{0, 0}}, Wallkicks(O, CW, 0))
		require.Equal(t, []Kick{{0, 0}}, Wallkicks(O, CCW, 0))
	})
}
