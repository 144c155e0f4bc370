package arena

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tile-arena/internal/sim"
)

// Point is a tile coordinate in a snapshot.
type Point struct {
	X int `msgpack:"x"`
	Z int `msgpack:"z"`
}

// Shot is a projectile in flight.
type Shot struct {
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	Z    float64 `msgpack:"z"`
	Heat float64 `msgpack:"heat"`
}

// Snapshot contains the observable state of a run for tracing and
// determinism checks. Entities are listed in store order.
type Snapshot struct {
	Frame   uint64  `msgpack:"frame"`
	Seed    int64   `msgpack:"seed"`
	Elapsed float64 `msgpack:"elapsed"`
	State   string  `msgpack:"state"`

	Score     int  `msgpack:"score"`
	HighScore int  `msgpack:"high"`
	NewHigh   bool `msgpack:"new_high"`

	PlayerX int `msgpack:"px"`
	PlayerZ int `msgpack:"pz"`
	FacingX int `msgpack:"fx"`
	FacingZ int `msgpack:"fz"`

	Adversaries []Point `msgpack:"adversaries"`
	Projectiles []Shot  `msgpack:"projectiles"`

	MaxLocked     bool    `msgpack:"max"`
	MoveInterval  float64 `msgpack:"move_iv"`
	SpawnInterval float64 `msgpack:"spawn_iv"`

	// Adversaries spawned and destroyed since the last reset.
	Spawned   int `msgpack:"spawned"`
	Destroyed int `msgpack:"destroyed"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:     g.frame,
		Seed:      g.seed,
		Spawned:   g.spawned,
		Destroyed: g.destroyed,
	}
	if g.sim == nil {
		snap.State = sim.GameOver.String()
		return snap
	}

	s := g.sim
	store := s.Store()
	pt := s.PlayerTile()
	f := s.Facing()

	snap.Elapsed = s.Elapsed()
	snap.State = s.State().String()
	snap.Score = s.Score()
	snap.HighScore = s.HighScore()
	snap.NewHigh = s.NewHigh()
	snap.PlayerX, snap.PlayerZ = pt.X, pt.Z
	snap.FacingX, snap.FacingZ = int(f.X), int(f.Z)
	snap.MaxLocked = s.MaxLocked()
	snap.MoveInterval = s.MoveInterval()
	snap.SpawnInterval = s.SpawnInterval()

	for _, h := range store.Adversaries() {
		t := store.Tile(h)
		snap.Adversaries = append(snap.Adversaries, Point{X: t.X, Z: t.Z})
	}
	for _, h := range store.Projectiles() {
		e, ok := store.Get(h)
		if !ok {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, Shot{
			X:    e.Center.X,
			Y:    e.Center.Y,
			Z:    e.Center.Z,
			Heat: e.Motion.Heat(),
		})
	}
	return snap
}

// Encode serializes the snapshot with msgpack.
func (snap *Snapshot) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("arena: encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses a msgpack-encoded snapshot.
func DecodeSnapshot(b []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("arena: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns a digest of the encoded snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	b, err := snap.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}
