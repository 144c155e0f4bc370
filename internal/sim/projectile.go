package sim

import (
	"math"

	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/grid"
	"github.com/vovakirdan/tile-arena/internal/world"
)

// Detonation is one resolved projectile.
type Detonation struct {
	Tile   grid.Tile
	Killed int
	Hit    bool // false when the projectile ran out of range or off the board
}

// Fire launches a projectile along the player's facing. It returns false
// while on cooldown or when not playing.
func (s *Sim) Fire() (world.Handle, bool) {
	if s.state != Playing {
		return world.Handle{}, false
	}
	if s.elapsed-s.lastShotAt < s.cfg.Projectile.Cooldown {
		return world.Handle{}, false
	}

	pe, _ := s.store.Get(s.player)
	dir := s.facing.Normalize()
	front := pe.Half.Z
	if math.Abs(dir.X) > math.Abs(dir.Z) {
		front = pe.Half.X
	}
	muzzle := pe.Center.
		Add(dir.Scale(front + s.cfg.Projectile.MuzzleOffset)).
		Add(core.V3(0, pe.Half.Y, 0))

	r := s.cfg.Projectile.Radius
	h, err := s.store.Spawn(world.Entity{
		Role:   world.RoleProjectile,
		Center: muzzle,
		Half:   core.V3(r, r, r),
		Motion: world.Motion{
			Dir:      dir,
			MaxRange: s.cfg.Projectile.Range * s.grid.TileSize,
		},
	})
	if err != nil {
		s.logger.Warn("fire failed", "err", err)
		return world.Handle{}, false
	}
	s.lastShotAt = s.elapsed
	return h, true
}

// CooldownProgress is 1 when the player can fire and rises from 0 after a shot.
func (s *Sim) CooldownProgress() float64 {
	cd := s.cfg.Projectile.Cooldown
	if cd <= 0 {
		return 1
	}
	return core.ClampF((s.elapsed-s.lastShotAt)/cd, 0, 1)
}

// advanceProjectiles moves every projectile and resolves hits and expiry.
// A projectile whose tile leaves the board expires where it stands.
// Projectiles are visited newest first over a snapshot of the list.
func (s *Sim) advanceProjectiles(dt float64) []Detonation {
	var out []Detonation
	step := s.cfg.Projectile.Speed * dt
	list := s.store.Projectiles()
	for i := len(list) - 1; i >= 0; i-- {
		h := list[i]
		e, err := s.store.Advance(h, step)
		if err != nil {
			continue
		}
		hit := s.hitsAdversary(h)
		tile := s.grid.WorldToTile(e.Center)
		if !hit && !e.Motion.Expired() && s.grid.InBounds(tile) {
			continue
		}
		killed := s.ExplodeAt(e.Center)
		if err := s.store.Destroy(h); err != nil {
			s.logger.Warn("projectile cleanup failed", "err", err)
		}
		out = append(out, Detonation{Tile: tile, Killed: killed, Hit: hit})
	}
	return out
}

func (s *Sim) hitsAdversary(p world.Handle) bool {
	for _, a := range s.store.Adversaries() {
		if s.store.Intersects(p, a) {
			return true
		}
	}
	return false
}

// ExplodeAt destroys every adversary within the blast radius of the tile
// under pos and scores them in a single award. Returns the kill count.
func (s *Sim) ExplodeAt(pos core.Vec3) int {
	center := s.grid.WorldToTile(pos)
	radius := s.cfg.Adversaries.BlastRadius
	killed := 0
	for _, h := range s.store.Adversaries() {
		if grid.Chebyshev(s.store.Tile(h), center) > radius {
			continue
		}
		if err := s.store.Destroy(h); err != nil {
			continue
		}
		killed++
	}
	if killed > 0 {
		s.scores.Add(killed * s.cfg.Adversaries.KillPoints)
		s.logger.Debug("detonation", "tile", center, "killed", killed, "score", s.scores.Score())
	}
	return killed
}
