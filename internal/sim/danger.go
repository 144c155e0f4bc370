package sim

import (
	"github.com/vovakirdan/tile-arena/internal/grid"
)

// IsDangerTile reports whether any projectile threatens t this tick or the
// next: its own tile, the tile one step along its heading, and the tiles
// straight ahead of it within the lookahead distance. Computed fresh from
// live projectile positions on every call.
func (s *Sim) IsDangerTile(t grid.Tile) bool {
	look := s.cfg.Adversaries.DangerLookahead
	for _, h := range s.store.Projectiles() {
		e, ok := s.store.Get(h)
		if !ok {
			continue
		}
		pt := s.grid.WorldToTile(e.Center)
		sx, sz := grid.SignF(e.Motion.Dir.X), grid.SignF(e.Motion.Dir.Z)

		if t == pt || t == pt.Add(sx, sz) {
			return true
		}
		if sx != 0 && t.Z == pt.Z {
			if d := (t.X - pt.X) * sx; d > 0 && d <= look {
				return true
			}
		}
		if sz != 0 && t.X == pt.X {
			if d := (t.Z - pt.Z) * sz; d > 0 && d <= look {
				return true
			}
		}
	}
	return false
}

// DangerTiles lists every in-bounds danger tile in row-major order.
func (s *Sim) DangerTiles() []grid.Tile {
	if s.store.ProjectileCount() == 0 {
		return nil
	}
	var out []grid.Tile
	for _, t := range s.grid.Tiles() {
		if s.IsDangerTile(t) {
			out = append(out, t)
		}
	}
	return out
}
