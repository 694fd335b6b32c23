package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBag(t *testing.T) {
	t.Run("every aligned run of seven draws is a full set", func(t *testing.T) {
		bag := NewBag(42)
		for run := 0; run < 20; run++ {
			seen := map[Family]int{}
			for i := 0; i < numFamilies; i++ {
				seen[bag.Next()]++
			}
			require.Len(t, seen, numFamilies, "run %d", run)
			for f, n := range seen {
				require.Equal(t, 1, n, "family %s in run %d", f, run)
			}
		}
	})

	t.Run("queue always holds more than one set", func(t *testing.T) {
		bag := NewBag(7)
		for i := 0; i < 50; i++ {
			require.Greater(t, bag.Len(), numFamilies)
			bag.Next()
			bag.refill()
		}
	})

	t.Run("same seed, same sequence", func(t *testing.T) {
		a, b := NewBag(99), NewBag(99)
		for i := 0; i < 70; i++ {
			require.Equal(t, a.Next(), b.Next())
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a, b := NewBag(1), NewBag(2)
		same := true
		for i := 0; i < 70; i++ {
			if a.Next() != b.Next() {
				same = false
			}
		}
		require.False(t, same)
	})

	t.Run("peek does not consume", func(t *testing.T) {
		bag := NewBag(3)
		next := bag.Peek(5)
		require.Len(t, next, 5)
		for _, f := range next {
			require.Equal(t, f, bag.Next())
		}
		require.Len(t, NewBag(3).Peek(100), 2*numFamilies)
		require.Empty(t, NewBag(3).Peek(0))
		require.Empty(t, NewBag(3).Peek(-3))
	})

	t.Run("clone draws the same future without advancing the original", func(t *testing.T) {
		bag := NewBag(5)
		bag.Next()
		clone := bag.Clone()

		var fromClone []Family
		for i := 0; i < 30; i++ {
			fromClone = append(fromClone, clone.Next())
		}
		for i := 0; i < 30; i++ {
			require.Equal(t, fromClone[i], bag.Next(), "draw %d", i)
		}
	})
}
