// Package grid maps between world space and the square tile board.
// Every function is pure; positions produced by TileToWorld round-trip
// exactly through WorldToTile.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tile-arena/internal/core"
)

// ErrInvalidGrid is returned by New for unusable board dimensions.
var ErrInvalidGrid = errors.New("grid: invalid dimensions")

// Tile is an integer board coordinate. (0, 0) is the board center.
type Tile struct {
	X, Z int
}

// Add returns the tile offset by (dx, dz).
func (t Tile) Add(dx, dz int) Tile {
	return Tile{X: t.X + dx, Z: t.Z + dz}
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Z)
}

// Grid describes a square board of Size*Size tiles centered on the origin.
type Grid struct {
	Size     int
	TileSize float64
}

// New validates and returns a grid. Size must be odd and at least 3 so the
// board is symmetric around (0, 0).
func New(size int, tileSize float64) (Grid, error) {
	if size < 3 || size%2 == 0 {
		return Grid{}, fmt.Errorf("%w: size %d must be odd and >= 3", ErrInvalidGrid, size)
	}
	if tileSize <= 0 || math.IsNaN(tileSize) || math.IsInf(tileSize, 0) {
		return Grid{}, fmt.Errorf("%w: tile size %v must be positive", ErrInvalidGrid, tileSize)
	}
	return Grid{Size: size, TileSize: tileSize}, nil
}

// Half is the largest valid coordinate on either axis.
func (g Grid) Half() int {
	return g.Size / 2
}

// InBounds reports whether t lies on the board.
func (g Grid) InBounds(t Tile) bool {
	h := g.Half()
	return t.X >= -h && t.X <= h && t.Z >= -h && t.Z <= h
}

// WorldToTile converts a world position to the tile containing it.
// Half-tile boundaries round away from zero.
func (g Grid) WorldToTile(p core.Vec3) Tile {
	return Tile{
		X: int(math.Round(p.X / g.TileSize)),
		Z: int(math.Round(p.Z / g.TileSize)),
	}
}

// TileToWorld returns the world-space center of t at height y.
func (g Grid) TileToWorld(t Tile, y float64) core.Vec3 {
	return core.Vec3{
		X: float64(t.X) * g.TileSize,
		Y: y,
		Z: float64(t.Z) * g.TileSize,
	}
}

// Tiles returns every board tile in row-major order: Z outer, X inner,
// both ascending.
func (g Grid) Tiles() []Tile {
	h := g.Half()
	out := make([]Tile, 0, g.Size*g.Size)
	for z := -h; z <= h; z++ {
		for x := -h; x <= h; x++ {
			out = append(out, Tile{X: x, Z: z})
		}
	}
	return out
}

// Chebyshev returns max(|dx|, |dz|) between a and b.
func Chebyshev(a, b Tile) int {
	return core.Max(core.Abs(a.X-b.X), core.Abs(a.Z-b.Z))
}

// DistSq returns the squared Euclidean tile distance between a and b.
func DistSq(a, b Tile) int {
	dx, dz := a.X-b.X, a.Z-b.Z
	return dx*dx + dz*dz
}

// Sign clamps v to -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// SignF is Sign for floats.
func SignF(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// StepToward returns the single king-move from a toward b.
func StepToward(a, b Tile) (dx, dz int) {
	return Sign(b.X - a.X), Sign(b.Z - a.Z)
}
