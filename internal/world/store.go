package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/grid"
)

var (
	// ErrStaleHandle is returned when a handle refers to a destroyed entity.
	ErrStaleHandle = errors.New("world: stale entity handle")
	// ErrPlayerExists is returned when a second player is spawned.
	ErrPlayerExists = errors.New("world: player already exists")
	// ErrBadRole is returned when spawning an entity without a role.
	ErrBadRole = errors.New("world: entity has no role")
)

type slot struct {
	ent     Entity
	gen     uint32
	alive   bool
	listPos int // index into the adversary or projectile list
}

// Store is the arena of live entities.
// It is not safe for concurrent use; the simulation tick is its only caller.
type Store struct {
	grid  grid.Grid
	obs   Observer
	slots []slot
	free  []uint32

	player      Handle
	adversaries []Handle
	projectiles []Handle
}

// NewStore creates an empty store for the given board.
// A nil observer is replaced by NopObserver.
func NewStore(g grid.Grid, obs Observer) *Store {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Store{grid: g, obs: obs}
}

// Grid returns the board the store maps positions onto.
func (s *Store) Grid() grid.Grid {
	return s.grid
}

func (s *Store) lookup(h Handle) (*slot, error) {
	if !h.Valid() || int(h.index) >= len(s.slots) {
		return nil, ErrStaleHandle
	}
	sl := &s.slots[h.index]
	if !sl.alive || sl.gen != h.gen {
		return nil, ErrStaleHandle
	}
	return sl, nil
}

// Spawn adds e to the store and returns its handle. The bounding box is
// synced before the entity becomes visible to queries.
func (s *Store) Spawn(e Entity) (Handle, error) {
	switch e.Role {
	case RolePlayer:
		if s.player.Valid() {
			return Handle{}, ErrPlayerExists
		}
	case RoleAdversary, RoleProjectile:
	default:
		return Handle{}, ErrBadRole
	}
	e.syncBox()

	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.alive = true
	sl.ent = e
	h := Handle{index: idx, gen: sl.gen}

	switch e.Role {
	case RolePlayer:
		s.player = h
	case RoleAdversary:
		sl.listPos = len(s.adversaries)
		s.adversaries = append(s.adversaries, h)
	case RoleProjectile:
		sl.listPos = len(s.projectiles)
		s.projectiles = append(s.projectiles, h)
	}

	s.obs.EntitySpawned(h, sl.ent)
	return h, nil
}

// Destroy removes the entity from the arena and from every role list in one
// step. Order of the remaining list entries is preserved.
func (s *Store) Destroy(h Handle) error {
	sl, err := s.lookup(h)
	if err != nil {
		return fmt.Errorf("destroy: %w", err)
	}
	ent := sl.ent

	switch ent.Role {
	case RolePlayer:
		s.player = Handle{}
	case RoleAdversary:
		s.adversaries = s.removeAt(s.adversaries, sl.listPos)
	case RoleProjectile:
		s.projectiles = s.removeAt(s.projectiles, sl.listPos)
	}

	sl.alive = false
	sl.ent = Entity{}
	s.free = append(s.free, h.index)

	s.obs.EntityDestroyed(h, ent)
	return nil
}

func (s *Store) removeAt(list []Handle, pos int) []Handle {
	list = slices.Delete(list, pos, pos+1)
	for i := pos; i < len(list); i++ {
		s.slots[list[i].index].listPos = i
	}
	return list
}

// Clear destroys every entity.
func (s *Store) Clear() {
	for _, h := range s.Projectiles() {
		_ = s.Destroy(h)
	}
	for _, h := range s.Adversaries() {
		_ = s.Destroy(h)
	}
	if s.player.Valid() {
		_ = s.Destroy(s.player)
	}
}

// Alive reports whether h still refers to a live entity.
func (s *Store) Alive(h Handle) bool {
	_, err := s.lookup(h)
	return err == nil
}

// Get returns a copy of the entity behind h.
func (s *Store) Get(h Handle) (Entity, bool) {
	sl, err := s.lookup(h)
	if err != nil {
		return Entity{}, false
	}
	return sl.ent, true
}

// Center returns the world-space center of h, or the zero vector for a
// stale handle.
func (s *Store) Center(h Handle) core.Vec3 {
	e, _ := s.Get(h)
	return e.Center
}

// HalfExtents returns the collider half extents of h.
func (s *Store) HalfExtents(h Handle) core.Vec3 {
	e, _ := s.Get(h)
	return e.Half
}

// Box returns the cached world-space bounding box of h.
func (s *Store) Box(h Handle) core.AABB {
	e, _ := s.Get(h)
	return e.Box
}

// SetCenter moves h. All gameplay motion goes through here or Advance.
// The bounding box is resynced immediately.
func (s *Store) SetCenter(h Handle, c core.Vec3) error {
	sl, err := s.lookup(h)
	if err != nil {
		return fmt.Errorf("set center: %w", err)
	}
	sl.ent.Center = c
	sl.ent.syncBox()
	s.obs.EntityMoved(h, sl.ent)
	return nil
}

// Advance moves a projectile dist units along its direction and adds dist
// to its traveled distance. It returns the updated entity.
func (s *Store) Advance(h Handle, dist float64) (Entity, error) {
	sl, err := s.lookup(h)
	if err != nil {
		return Entity{}, fmt.Errorf("advance: %w", err)
	}
	sl.ent.Center = sl.ent.Center.Add(sl.ent.Motion.Dir.Scale(dist))
	sl.ent.Motion.Traveled += dist
	sl.ent.syncBox()
	s.obs.EntityMoved(h, sl.ent)
	return sl.ent, nil
}

// SyncAABB recomputes the bounding box of h from its center and extents.
func (s *Store) SyncAABB(h Handle) {
	if sl, err := s.lookup(h); err == nil {
		sl.ent.syncBox()
	}
}

// SyncAll recomputes every live bounding box.
func (s *Store) SyncAll() {
	for i := range s.slots {
		if s.slots[i].alive {
			s.slots[i].ent.syncBox()
		}
	}
}

// Intersects reports whether the boxes of a and b overlap.
// Stale handles never intersect.
func (s *Store) Intersects(a, b Handle) bool {
	ea, okA := s.Get(a)
	eb, okB := s.Get(b)
	if !okA || !okB {
		return false
	}
	return ea.Box.Intersects(eb.Box)
}

// Tile returns the board tile under the center of h.
func (s *Store) Tile(h Handle) grid.Tile {
	return s.grid.WorldToTile(s.Center(h))
}

// Player returns the player handle, if one exists.
func (s *Store) Player() (Handle, bool) {
	return s.player, s.player.Valid()
}

// Adversaries returns a snapshot of the adversary handles in spawn order.
// The snapshot stays valid to iterate while entities are destroyed.
func (s *Store) Adversaries() []Handle {
	return slices.Clone(s.adversaries)
}

// Projectiles returns a snapshot of the projectile handles in spawn order.
func (s *Store) Projectiles() []Handle {
	return slices.Clone(s.projectiles)
}

// AdversaryCount returns the number of live adversaries.
func (s *Store) AdversaryCount() int {
	return len(s.adversaries)
}

// ProjectileCount returns the number of projectiles in flight.
func (s *Store) ProjectileCount() int {
	return len(s.projectiles)
}

// IsOccupied reports whether the player or any adversary other than
// exclude currently stands on t. Positions are read live on every call.
func (s *Store) IsOccupied(t grid.Tile, exclude Handle) bool {
	if s.player.Valid() && s.player != exclude && s.Tile(s.player) == t {
		return true
	}
	for _, h := range s.adversaries {
		if h == exclude {
			continue
		}
		if s.Tile(h) == t {
			return true
		}
	}
	return false
}

// AdversaryAt returns the first adversary standing on t.
func (s *Store) AdversaryAt(t grid.Tile) (Handle, bool) {
	for _, h := range s.adversaries {
		if s.Tile(h) == t {
			return h, true
		}
	}
	return Handle{}, false
}
