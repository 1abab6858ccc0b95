package catch

import "math/rand"

// Spawner creates falling entities from a seeded source, so a round
// replays identically for the same seed.
type Spawner struct {
	rng           *rand.Rand
	harmfulChance float64
}

// NewSpawner creates a spawner.
func NewSpawner(seed int64, harmfulChance float64) *Spawner {
	return &Spawner{
		rng:           rand.New(rand.NewSource(seed)),
		harmfulChance: harmfulChance,
	}
}

// Spawn creates one entity just above the top edge, with x uniform in
// [radius, W-radius].
func (s *Spawner) Spawn(g Geometry) Entity {
	kind := Beneficial
	if s.rng.Float64() < s.harmfulChance {
		kind = Harmful
	}

	span := g.W - 2*g.Radius
	if span < 0 {
		span = 0
	}

	return Entity{
		X:    g.Radius + s.rng.Float64()*span,
		Y:    -g.Radius,
		Kind: kind,
	}
}
