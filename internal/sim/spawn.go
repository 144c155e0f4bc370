package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/grid"
	"github.com/vovakirdan/tile-arena/internal/world"
)

// SpawnCandidates lists the free tiles at least MinSpawnDistance from the
// player, in row-major order.
func (s *Sim) SpawnCandidates() []grid.Tile {
	pt := s.PlayerTile()
	minDist := s.cfg.Adversaries.MinSpawnDistance
	var out []grid.Tile
	for _, t := range s.grid.Tiles() {
		if grid.Chebyshev(t, pt) < minDist {
			continue
		}
		if s.store.IsOccupied(t, world.Handle{}) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SpawnRandom places one adversary on a uniformly chosen spawn candidate.
// It reports false and changes nothing when no candidate exists.
func (s *Sim) SpawnRandom() bool {
	candidates := s.SpawnCandidates()
	if len(candidates) == 0 {
		s.logger.Debug("spawn skipped: no free tile", "adversaries", s.store.AdversaryCount())
		return false
	}
	t := candidates[s.rng.Intn(len(candidates))]
	if _, err := s.SpawnAdversary(t); err != nil {
		s.logger.Warn("spawn failed", "tile", t, "err", err)
		return false
	}
	return true
}

// SpawnAdversary creates an adversary on t.
func (s *Sim) SpawnAdversary(t grid.Tile) (world.Handle, error) {
	if !s.grid.InBounds(t) || s.store.IsOccupied(t, world.Handle{}) {
		return world.Handle{}, fmt.Errorf("%w: %v", ErrTileUnavailable, t)
	}
	he := s.cfg.Adversaries.HalfExtent
	h, err := s.store.Spawn(world.Entity{
		Role:   world.RoleAdversary,
		Center: s.grid.TileToWorld(t, he),
		Half:   core.V3(he, he, he),
	})
	if err != nil {
		return world.Handle{}, fmt.Errorf("sim: spawn adversary: %w", err)
	}
	s.logger.Debug("adversary spawned", "tile", t)
	return h, nil
}

// relocateAdversaries moves adversaries that start too close to the player
// or on a tile already claimed by an earlier adversary to the nearest legal
// tile. Adversaries are settled in store order, so the first one on a shared
// tile keeps it.
func (s *Sim) relocateAdversaries() {
	pt := s.PlayerTile()
	minDist := s.cfg.Adversaries.MinSpawnDistance
	taken := make(map[grid.Tile]bool)
	for _, h := range s.store.Adversaries() {
		t := s.store.Tile(h)
		if s.grid.InBounds(t) && grid.Chebyshev(t, pt) >= minDist && !taken[t] {
			taken[t] = true
			continue
		}
		spot := s.nearestFreeSpot(t, taken)
		taken[spot] = true
		c := s.store.Center(h)
		if err := s.store.SetCenter(h, s.grid.TileToWorld(spot, c.Y)); err != nil {
			s.logger.Warn("relocate failed", "err", err)
			continue
		}
		s.logger.Debug("adversary relocated", "from", t, "to", spot)
	}
}

// nearestFreeSpot returns the legal tile closest to from that is not taken,
// first in row-major order on ties, or the far corner when none is left.
func (s *Sim) nearestFreeSpot(from grid.Tile, taken map[grid.Tile]bool) grid.Tile {
	pt := s.PlayerTile()
	minDist := s.cfg.Adversaries.MinSpawnDistance
	best := grid.Tile{X: s.grid.Half(), Z: s.grid.Half()}
	bestD := math.MaxInt
	for _, t := range s.grid.Tiles() {
		if grid.Chebyshev(t, pt) < minDist || taken[t] {
			continue
		}
		if d := grid.DistSq(t, from); d < bestD {
			best, bestD = t, d
		}
	}
	return best
}
