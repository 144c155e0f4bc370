// Package world owns every live entity on the board: the player, the
// adversaries and the projectiles in flight. Entities live in an arena and are
// addressed by generation-checked handles, so a destroyed entity can never be
// reached through an old handle.
package world

import (
	"github.com/vovakirdan/tile-arena/internal/core"
)

// Role identifies what an entity is.
type Role uint8

const (
	RoleNone Role = iota
	RolePlayer
	RoleAdversary
	RoleProjectile
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleAdversary:
		return "adversary"
	case RoleProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// Handle is a stable reference into the store. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// Valid reports whether h was ever issued by a store.
func (h Handle) Valid() bool {
	return h.gen != 0
}

// Motion is the flight state of a projectile.
type Motion struct {
	Dir      core.Vec3 // unit direction
	Traveled float64
	MaxRange float64
}

// Heat is the fraction of range already used, in [0, 1].
func (m Motion) Heat() float64 {
	if m.MaxRange <= 0 {
		return 1
	}
	return core.ClampF(m.Traveled/m.MaxRange, 0, 1)
}

// Expired reports whether the projectile has flown its full range.
func (m Motion) Expired() bool {
	return m.Traveled >= m.MaxRange
}

// Entity is the single representation shared by all roles.
// Box is derived from Center and Half and is refreshed by the store.
type Entity struct {
	Role   Role
	Center core.Vec3
	Half   core.Vec3
	Box    core.AABB
	Motion Motion // zero unless Role == RoleProjectile
}

func (e *Entity) syncBox() {
	e.Box = core.BoxAround(e.Center, e.Half)
}

// Observer mirrors store changes to an external renderer or instancer.
// Calls happen synchronously inside the mutating store method.
type Observer interface {
	EntitySpawned(h Handle, e Entity)
	EntityMoved(h Handle, e Entity)
	EntityDestroyed(h Handle, e Entity)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) EntitySpawned(Handle, Entity) {}
func (NopObserver) EntityMoved(Handle, Entity) {}
func (NopObserver) EntityDestroyed(Handle, Entity) {}
