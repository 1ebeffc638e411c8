// Package game implements the endless-runner simulation: a fixed-size pixel
// world in which a runner jumps over scrolling obstacles while score and game
// speed ramp up. All state lives in an explicit State struct advanced by a
// per-refresh transition function; rendering and input live elsewhere.
package game

import "math/rand"

// State owns every piece of mutable simulation state for one session.
// The renderer only ever sees copies via Snapshot; nothing here is shared.
type State struct {
	Score    int     // Tick-quantized score, +1 per processed tick
	Speed    float64 // Game speed in [BaseSpeed, MaxSpeed]
	GameOver bool    // One-way latch, cleared only by Restart

	DinoY   float64 // Runner height above ground, 0 when grounded
	JumpVel float64 // Vertical velocity while airborne
	Jumping bool    // Whether a jump is in progress

	Obstacles []Obstacle
	Clouds    []Cloud

	rng    *rand.Rand
	nextID uint64

	clock    float64 // Accumulated refresh time in ms
	lastTick float64 // Clock value of the last processed tick
}

// NewState creates a fresh session with the given RNG seed.
func NewState(seed int64) *State {
	return &State{
		Speed: BaseSpeed,
		rng:   newRNG(seed),
	}
}

// Jump starts a jump. Ignored while already airborne or after game over;
// re-triggers mid-jump are dropped, not queued.
func (s *State) Jump() {
	if s.Jumping || s.GameOver {
		return
	}
	s.Jumping = true
	s.JumpVel = JumpImpulse
}

// Restart restores all session state to initial values. It is only valid
// while the game-over latch is set; otherwise it is a silent no-op.
// The RNG stream is kept, so a restarted session continues deterministically
// for a given seed.
func (s *State) Restart() {
	if !s.GameOver {
		return
	}
	s.Score = 0
	s.Speed = BaseSpeed
	s.GameOver = false
	s.DinoY = 0
	s.JumpVel = 0
	s.Jumping = false
	s.Obstacles = s.Obstacles[:0]
	s.Clouds = s.Clouds[:0]
	s.clock = 0
	s.lastTick = 0
}

// Advance is the display-refresh callback. dtMillis is the real time elapsed
// since the previous refresh. Jump physics integrate on every call; the main
// loop only processes a tick once at least TickMillis have accumulated, so
// refreshes arriving faster than 60Hz are coalesced. While the game-over
// latch is set the whole refresh is a no-op.
func (s *State) Advance(dtMillis float64) {
	if s.GameOver {
		return
	}

	s.stepJump()

	s.clock += dtMillis
	elapsed := s.clock - s.lastTick
	if elapsed < TickMillis {
		return
	}
	s.tick(elapsed)
	s.lastTick = s.clock
}

// stepJump advances the jump state machine by one unthrottled step.
func (s *State) stepJump() {
	if !s.Jumping {
		return
	}
	s.DinoY += s.JumpVel
	s.JumpVel -= Gravity
	if s.DinoY <= 0 {
		s.DinoY = 0
		s.JumpVel = 0
		s.Jumping = false
	}
}

// tick processes one quantized simulation step. dtMillis is the real elapsed
// time covered by this tick (>= TickMillis): scoring is per tick, but scroll
// distance scales with real time so horizontal speed is frame-rate independent.
func (s *State) tick(dtMillis float64) {
	// Collision is evaluated against this tick's pre-move obstacle positions,
	// i.e. the positions the renderer showed last frame.
	pre := make([]Obstacle, len(s.Obstacles))
	copy(pre, s.Obstacles)

	// Score, then ramp. The ramp check reads the score as it was before this
	// tick's increment, so the speed increase lands one tick after the score
	// crosses a multiple of SpeedRampEvery. Intentional: do not "fix".
	prev := s.Score
	s.Score++
	if prev != 0 && prev%SpeedRampEvery == 0 && s.Speed < MaxSpeed {
		s.Speed++
	}

	// Scroll. Obstacles move at full game speed, clouds with parallax.
	shift := s.Speed * dtMillis / TickMillis
	for i := range s.Obstacles {
		s.Obstacles[i].X -= shift
	}
	cloudShift := shift * CloudParallax
	for i := range s.Clouds {
		s.Clouds[i].X -= cloudShift
	}

	// Cull entities that scrolled past their off-screen threshold.
	s.Obstacles = cullObstacles(s.Obstacles)
	s.Clouds = cullClouds(s.Clouds)

	// Spawn at most one entity per kind per tick. The rearmost entity is the
	// most recently spawned one, which is always last in the slice.
	if n := len(s.Obstacles); n == 0 || s.Obstacles[n-1].X < ObstacleSpawnAt {
		s.spawnObstacle()
	}
	if n := len(s.Clouds); n == 0 || s.Clouds[n-1].X < CloudSpawnAt {
		s.spawnCloud()
	}

	// Latch game over on any hit. Nothing else mutates after the latch.
	if s.collides(pre) {
		s.GameOver = true
	}
}

// collides reports whether the runner's hitbox overlaps any of the given
// obstacles. Vacuously false with no obstacles.
func (s *State) collides(obstacles []Obstacle) bool {
	player := s.PlayerRect()
	for _, o := range obstacles {
		if player.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

func cullObstacles(list []Obstacle) []Obstacle {
	kept := list[:0]
	for _, o := range list {
		if o.X >= ObstacleCullX {
			kept = append(kept, o)
		}
	}
	return kept
}

func cullClouds(list []Cloud) []Cloud {
	kept := list[:0]
	for _, c := range list {
		if c.X >= CloudCullX {
			kept = append(kept, c)
		}
	}
	return kept
}
