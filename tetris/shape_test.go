package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTilesAreFourDistinctCells(t *testing.T) {
	for _, kind := range Kinds {
		for rotation := -4; rotation < 8; rotation++ {
			tiles := Tiles(kind, rotation)
			seen := make(map[Point]bool, len(tiles))
			for _, tile := range tiles {
				seen[tile] = true
				assert.GreaterOrEqual(t, tile.X, 0)
				assert.GreaterOrEqual(t, tile.Y, 0)
				assert.Less(t, tile.X, 4)
				assert.Less(t, tile.Y, 4)
			}
			assert.Len(t, seen, 4, "kind %s rotation %d", kind, rotation)
		}
	}
}

func TestRotationIsTakenModuloFour(t *testing.T) {
	for _, kind := range Kinds {
		for rotation := 0; rotation < 4; rotation++ {
			assert.Equal(t, Tiles(kind, rotation), Tiles(kind, rotation+4))
			assert.Equal(t, Tiles(kind, rotation), Tiles(kind, rotation-4))
		}
	}
}

func TestOIsRotationInvariant(t *testing.T) {
	for rotation := 1; rotation < 4; rotation++ {
		assert.Equal(t, Tiles(KindO, 0), Tiles(KindO, rotation))
	}
}

func TestOtherKindsHaveDistinctRotations(t *testing.T) {
	for _, kind := range Kinds {
		if kind == KindO {
			continue
		}
		assert.NotEqual(t, Tiles(kind, 0), Tiles(kind, 1), "kind %s", kind)
	}
}

func TestSpawnOrigin(t *testing.T) {
	for _, kind := range Kinds {
		want := 3
		if kind == KindS {
			want = 4
		}
		assert.Equal(t, want, SpawnOrigin(kind, 10), "kind %s", kind)
	}
	assert.Equal(t, 0, SpawnOrigin(KindI, 4))
}

func TestColorsAreOpaqueAndUnique(t *testing.T) {
	seen := make(map[[3]uint8]ShapeKind)
	for _, kind := range Kinds {
		c := Color(kind)
		assert.Equal(t, uint8(255), c.A)
		key := [3]uint8{c.R, c.G, c.B}
		_, dup := seen[key]
		assert.False(t, dup, "kind %s shares a color", kind)
		seen[key] = kind
	}
}

func TestShapeKindString(t *testing.T) {
	var names string
	for _, kind := range Kinds {
		names += kind.String()
		assert.True(t, kind.Valid())
	}
	assert.Equal(t, "IOTSZJL", names)
	assert.Equal(t, "ShapeKind(7)", ShapeKind(7).String())
	assert.False(t, ShapeKind(7).Valid())
}
