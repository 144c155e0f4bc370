package sim

import (
	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/grid"
)

// Direction is a player movement input.
type Direction int

const (
	Left    Direction = iota // +X
	Right                    // -X
	Forward                  // +Z
	Back                     // -Z
)

// Delta returns the tile offset of d.
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case Left:
		return 1, 0
	case Right:
		return -1, 0
	case Forward:
		return 0, 1
	case Back:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Forward:
		return "forward"
	case Back:
		return "back"
	}
	return "none"
}

// Move steps the player one tile. Facing changes even when the step is
// blocked by the board edge or an adversary. Returns whether the player moved.
func (s *Sim) Move(d Direction) bool {
	if s.state != Playing {
		return false
	}
	dx, dz := d.Delta()
	if dx == 0 && dz == 0 {
		return false
	}
	s.facing = core.V3(float64(dx), 0, float64(dz))

	target := s.PlayerTile().Add(dx, dz)
	if !s.grid.InBounds(target) || s.store.IsOccupied(target, s.player) {
		return false
	}
	c := s.store.Center(s.player)
	return s.store.SetCenter(s.player, s.grid.TileToWorld(target, c.Y)) == nil
}

// MoveTo places the player on t directly. Used by scripted runs and tests.
func (s *Sim) MoveTo(t grid.Tile) error {
	if !s.grid.InBounds(t) || s.store.IsOccupied(t, s.player) {
		return ErrTileUnavailable
	}
	c := s.store.Center(s.player)
	return s.store.SetCenter(s.player, s.grid.TileToWorld(t, c.Y))
}
