package sim

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/tile-arena/internal/grid"
	"github.com/vovakirdan/tile-arena/internal/world"
)

type stepCandidate struct {
	tile      grid.Tile
	danger    bool
	toward    bool
	distAfter int
}

// compareCandidates orders safe before danger, then closing moves first,
// then the smaller resulting distance. Equal keys keep enumeration order.
func compareCandidates(a, b stepCandidate) int {
	if a.danger != b.danger {
		if !a.danger {
			return -1
		}
		return 1
	}
	if a.toward != b.toward {
		if a.toward {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.distAfter, b.distAfter)
}

// ChooseStep picks the tile adversary h moves to on its next move tick.
// It returns the current tile when no legal neighbor exists.
func (s *Sim) ChooseStep(h world.Handle) grid.Tile {
	cur := s.store.Tile(h)
	pt := s.PlayerTile()

	dx, dz := grid.StepToward(cur, pt)
	greedy := cur.Add(dx, dz)
	if s.grid.InBounds(greedy) && !s.store.IsOccupied(greedy, h) && !s.IsDangerTile(greedy) {
		return greedy
	}

	before := grid.Chebyshev(cur, pt)
	candidates := make([]stepCandidate, 0, 8)
	for oz := -1; oz <= 1; oz++ {
		for ox := -1; ox <= 1; ox++ {
			if ox == 0 && oz == 0 {
				continue
			}
			t := cur.Add(ox, oz)
			if !s.grid.InBounds(t) || s.store.IsOccupied(t, h) {
				continue
			}
			after := grid.Chebyshev(t, pt)
			candidates = append(candidates, stepCandidate{
				tile:      t,
				danger:    s.IsDangerTile(t),
				toward:    after <= before,
				distAfter: after,
			})
		}
	}
	if len(candidates) == 0 {
		return cur
	}
	slices.SortStableFunc(candidates, compareCandidates)
	return candidates[0].tile
}

// moveAdversaries runs one move tick: each adversary, in spawn order,
// takes the step ChooseStep picks given the moves made before it.
func (s *Sim) moveAdversaries() {
	for _, h := range s.store.Adversaries() {
		cur := s.store.Tile(h)
		next := s.ChooseStep(h)
		if next == cur {
			continue
		}
		c := s.store.Center(h)
		if err := s.store.SetCenter(h, s.grid.TileToWorld(next, c.Y)); err != nil {
			s.logger.Warn("adversary move failed", "err", err)
		}
	}
}
