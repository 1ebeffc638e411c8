package game

import (
	"math/rand"

	"github.com/mkovalev/tui-runner/internal/core"
)

// World geometry, in pixels. The simulation runs in a fixed 800-wide world
// with the ground plane at y=340 (entity boxes sit with their tops at y=300).
const (
	WorldW  = 800.0
	GroundY = 300.0 // Top edge of ground-aligned 40px hitboxes

	PlayerX = 100.0 // Fixed horizontal position of the runner
	PlayerW = 40.0
	PlayerH = 40.0

	ObstacleW = 20.0
	ObstacleH = 40.0

	// Culling thresholds: entities whose x falls below these are removed.
	ObstacleCullX = -50.0
	CloudCullX    = -100.0

	// Spawn-trigger thresholds: a new entity is spawned once the rearmost
	// entity of its kind has scrolled left of these.
	ObstacleSpawnAt = 600.0
	CloudSpawnAt    = 700.0

	// New entities appear off-screen right at SpawnBaseX + rand()*SpawnJitter.
	SpawnBaseX  = 800.0
	SpawnJitter = 200.0

	CloudMinY   = 50.0
	CloudYRange = 150.0
)

// Speed and timing.
const (
	BaseSpeed      = 5.0  // Game speed at session start, pixels per 16ms tick
	MaxSpeed       = 12.0 // Game speed cap
	SpeedRampEvery = 500  // Score interval between speed increments
	CloudParallax  = 0.3  // Cloud scroll speed relative to game speed

	TickMillis = 16.0 // Minimum elapsed time for one simulation tick
)

// Jump physics, applied once per display refresh (unthrottled).
const (
	JumpImpulse = 15.0 // Initial upward velocity, units per step
	Gravity     = 0.8  // Velocity lost per step
)

// Obstacle is a ground-aligned cactus the runner must jump over.
type Obstacle struct {
	ID uint64  // Monotonic identity, assigned at spawn
	X  float64 // Left edge in world pixels
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, GroundY, ObstacleW, ObstacleH)
}

// Cloud is a background decoration. It scrolls with parallax and never collides.
type Cloud struct {
	ID uint64
	X  float64
	Y  float64 // Fixed at spawn, never changes afterwards
}

// spawnObstacle appends a new obstacle off-screen right.
func (s *State) spawnObstacle() {
	s.nextID++
	s.Obstacles = append(s.Obstacles, Obstacle{
		ID: s.nextID,
		X:  SpawnBaseX + s.rng.Float64()*SpawnJitter,
	})
}

// spawnCloud appends a new cloud off-screen right at a random height.
func (s *State) spawnCloud() {
	s.nextID++
	s.Clouds = append(s.Clouds, Cloud{
		ID: s.nextID,
		X:  SpawnBaseX + s.rng.Float64()*SpawnJitter,
		Y:  CloudMinY + s.rng.Float64()*CloudYRange,
	})
}

// newRNG builds the seeded random source used for spawn positions.
// Injected via seed so tests and replays are deterministic.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
