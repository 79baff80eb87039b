package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	t.Run("adding and subtracting", func(t *testing.T) {
		v := Vector2D{Row: 2, Column: 3}

		require.Equal(t, Vector2D{Row: 3, Column: 4}, v.Add(NorthEast), "Add should sum both components")
		require.Equal(t, v, v.Add(SouthWest).Subtract(SouthWest), "Subtract should undo Add")
		require.Equal(t, v, v.Add(Zero), "Adding zero should not change the vector")
	})

	t.Run("scaling", func(t *testing.T) {
		require.Equal(t, Vector2D{Row: -2, Column: 2}, SouthEast.Scale(2), "Scale should multiply both components")
		require.Equal(t, Zero, NorthWest.Scale(0), "Scaling by zero should give the zero vector")
	})

	t.Run("operations do not mutate the receiver", func(t *testing.T) {
		v := Vector2D{Row: 1, Column: 1}
		_ = v.Add(NorthEast)
		_ = v.Scale(5)

		require.Equal(t, Vector2D{Row: 1, Column: 1}, v)
	})

	t.Run("equality", func(t *testing.T) {
		require.True(t, NorthEast.Equals(Vector2D{Row: 1, Column: 1}))
		require.False(t, NorthEast.Equals(NorthWest))
	})
}

func TestVectorWithin(t *testing.T) {
	require.True(t, Vector2D{Row: 0, Column: 7}.Within(8))
	require.False(t, Vector2D{Row: 8, Column: 0}.Within(8))
	require.False(t, Vector2D{Row: 0, Column: -1}.Within(8))
}
