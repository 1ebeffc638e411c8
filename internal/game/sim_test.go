package game

import (
	"reflect"
	"testing"
)

// advanceTicks drives the refresh callback with exact 16ms frames, so every
// call processes exactly one simulation tick.
func advanceTicks(s *State, n int) {
	for i := 0; i < n; i++ {
		s.Advance(TickMillis)
	}
}

func TestScoreIncrementsPerTick(t *testing.T) {
	s := NewState(1)

	advanceTicks(s, 100)
	if s.Score != 100 {
		t.Errorf("Score = %d after 100 ticks, expected 100", s.Score)
	}

	// Frames faster than the tick threshold are coalesced: two 8ms refreshes
	// produce one tick, not two.
	s2 := NewState(1)
	for i := 0; i < 100; i++ {
		s2.Advance(8)
	}
	if s2.Score != 50 {
		t.Errorf("Score = %d after 100 8ms refreshes, expected 50", s2.Score)
	}
}

func TestSpeedRampLagsThreshold(t *testing.T) {
	s := NewState(1)

	advanceTicks(s, 500)
	if s.Score != 500 {
		t.Fatalf("Score = %d, expected 500", s.Score)
	}
	// Score just crossed the 500 multiple, but the ramp reads the pre-increment
	// score, so the speed increase lands one tick later.
	if s.Speed != BaseSpeed {
		t.Errorf("Speed = %v at score 500, expected still %v (one-tick lag)", s.Speed, BaseSpeed)
	}

	advanceTicks(s, 1)
	if s.Speed != BaseSpeed+1 {
		t.Errorf("Speed = %v at score 501, expected %v", s.Speed, BaseSpeed+1)
	}
}

func TestSpeedNeverLeavesBounds(t *testing.T) {
	s := NewState(7)

	prev := s.Speed
	for i := 0; i < 4200; i++ {
		s.Advance(TickMillis)
		if s.GameOver {
			s.Restart()
			prev = s.Speed
		}
		if s.Speed < BaseSpeed || s.Speed > MaxSpeed {
			t.Fatalf("Speed = %v at tick %d, outside [%v, %v]", s.Speed, i, BaseSpeed, MaxSpeed)
		}
		if s.Speed < prev && s.Score != 0 {
			t.Fatalf("Speed decreased mid-session at tick %d", i)
		}
		prev = s.Speed
	}
}

func TestSpeedCapsAtMax(t *testing.T) {
	s := NewState(1)
	// Keep the session alive by clearing obstacles before they can collide.
	for i := 0; i < 4001; i++ {
		s.Obstacles = s.Obstacles[:0]
		s.Advance(TickMillis)
	}
	if s.Speed != MaxSpeed {
		t.Errorf("Speed = %v after %d ticks, expected cap %v", s.Speed, s.Score, MaxSpeed)
	}
}

func TestScrollSpeedProportionalToElapsedTime(t *testing.T) {
	s := NewState(3)
	advanceTicks(s, 1) // Spawns the first obstacle and cloud

	if len(s.Obstacles) != 1 || len(s.Clouds) != 1 {
		t.Fatalf("expected one obstacle and one cloud after first tick, got %d/%d",
			len(s.Obstacles), len(s.Clouds))
	}
	ox := s.Obstacles[0].X
	cx := s.Clouds[0].X

	advanceTicks(s, 1)
	if got := ox - s.Obstacles[0].X; got != BaseSpeed {
		t.Errorf("obstacle moved %v in one 16ms tick, expected %v", got, BaseSpeed)
	}
	if got := cx - s.Clouds[0].X; got != BaseSpeed*CloudParallax {
		t.Errorf("cloud moved %v in one 16ms tick, expected %v", got, BaseSpeed*CloudParallax)
	}

	// A 32ms tick covers twice the distance of a 16ms one.
	s2 := NewState(3)
	s2.Advance(TickMillis)
	x1 := s2.Obstacles[0].X
	s2.Advance(32)
	if got := x1 - s2.Obstacles[0].X; got != BaseSpeed*2 {
		t.Errorf("obstacle moved %v in one 32ms tick, expected %v", got, BaseSpeed*2)
	}
}

func TestSpawnPositionsAndSpacing(t *testing.T) {
	s := NewState(99)

	for i := 0; i < 2000; i++ {
		s.Advance(TickMillis)
		if s.GameOver {
			s.Restart()
			continue
		}

		for _, o := range s.Obstacles {
			if o.X < ObstacleCullX {
				t.Fatalf("obstacle at x=%v survived past cull threshold %v", o.X, ObstacleCullX)
			}
		}
		for _, c := range s.Clouds {
			if c.X < CloudCullX {
				t.Fatalf("cloud at x=%v survived past cull threshold %v", c.X, CloudCullX)
			}
			if c.Y < CloudMinY || c.Y > CloudMinY+CloudYRange {
				t.Fatalf("cloud y=%v outside spawn band", c.Y)
			}
		}

		// Minimum spacing: a spawn only happens once the rearmost entity is
		// left of the trigger, and new entities appear at >= SpawnBaseX.
		minGap := SpawnBaseX - ObstacleSpawnAt
		for j := 1; j < len(s.Obstacles); j++ {
			gap := s.Obstacles[j].X - s.Obstacles[j-1].X
			if gap < minGap {
				t.Fatalf("obstacle gap %v below minimum %v at tick %d", gap, minGap, i)
			}
		}
	}
}

func TestAtMostOneSpawnPerTick(t *testing.T) {
	s := NewState(5)

	prevObstacles := 0
	prevClouds := 0
	for i := 0; i < 500; i++ {
		s.Advance(TickMillis)
		if s.GameOver {
			s.Restart()
			prevObstacles, prevClouds = 0, 0
			continue
		}
		if len(s.Obstacles)-prevObstacles > 1 {
			t.Fatalf("spawned %d obstacles in one tick", len(s.Obstacles)-prevObstacles)
		}
		if len(s.Clouds)-prevClouds > 1 {
			t.Fatalf("spawned %d clouds in one tick", len(s.Clouds)-prevClouds)
		}
		prevObstacles = len(s.Obstacles)
		prevClouds = len(s.Clouds)
	}
}

func TestEntityIDsAreMonotonic(t *testing.T) {
	s := NewState(11)
	advanceTicks(s, 300)

	var last uint64
	for _, o := range s.Obstacles {
		if o.ID <= last {
			t.Fatalf("obstacle IDs not strictly increasing: %d after %d", o.ID, last)
		}
		last = o.ID
	}
}

func TestCollisionUsesPreMovePositions(t *testing.T) {
	s := NewState(1)
	// Player hitbox spans x in [100, 140). An obstacle at 141 does not touch
	// it, but after this tick's 5px shift it sits at 136, which would.
	s.Obstacles = append(s.Obstacles, Obstacle{ID: 1, X: 141})

	s.tick(TickMillis)
	if s.GameOver {
		t.Fatal("collision fired against post-move positions")
	}
	if s.Obstacles[0].X != 136 {
		t.Fatalf("obstacle at %v after tick, expected 136", s.Obstacles[0].X)
	}

	s.tick(TickMillis)
	if !s.GameOver {
		t.Fatal("collision should latch once pre-move position overlaps")
	}
	// Score still counted the fatal tick; the latch is the only suppression.
	if s.Score != 2 {
		t.Errorf("Score = %d, expected 2", s.Score)
	}
}

func TestGameOverSuspendsLoop(t *testing.T) {
	s := NewState(1)
	s.Obstacles = append(s.Obstacles, Obstacle{ID: 1, X: PlayerX})
	s.tick(TickMillis)
	if !s.GameOver {
		t.Fatal("expected game over with an overlapping obstacle")
	}

	snap := s.Snapshot()
	advanceTicks(s, 50)
	if !reflect.DeepEqual(snap, s.Snapshot()) {
		t.Error("state mutated after game-over latch")
	}
}

func TestRestart(t *testing.T) {
	s := NewState(42)
	// Build up an in-progress-then-crashed session.
	s.Score = 734
	s.Speed = 7
	s.DinoY = 12
	s.Jumping = true
	s.JumpVel = 3
	s.Obstacles = append(s.Obstacles, Obstacle{ID: 1, X: 500}, Obstacle{ID: 2, X: 750}, Obstacle{ID: 3, X: 990})
	s.Clouds = append(s.Clouds, Cloud{ID: 4, X: 600, Y: 80})
	s.clock = 1000
	s.lastTick = 992
	s.GameOver = true

	s.Restart()

	if s.Score != 0 || s.GameOver || s.Speed != BaseSpeed || s.DinoY != 0 || s.Jumping {
		t.Errorf("Restart left session state: %+v", s.Snapshot())
	}
	if len(s.Obstacles) != 0 || len(s.Clouds) != 0 {
		t.Errorf("Restart left entities: %d obstacles, %d clouds", len(s.Obstacles), len(s.Clouds))
	}
	if s.clock != 0 || s.lastTick != 0 {
		t.Error("Restart should clear the tick clock")
	}

	// The loop resumes normally.
	advanceTicks(s, 10)
	if s.Score != 10 {
		t.Errorf("Score = %d after restart and 10 ticks, expected 10", s.Score)
	}
}

func TestRestartIgnoredWhileActive(t *testing.T) {
	s := NewState(42)
	advanceTicks(s, 25)

	before := s.Snapshot()
	s.Restart()
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("Restart mutated an active session")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewState(12345)
		for i := 0; i < 600; i++ {
			if i%45 == 0 {
				s.Jump()
			}
			s.Advance(TickMillis)
		}
		return s.Snapshot()
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed and inputs diverged:\n%+v\nvs\n%+v", first, second)
	}
}
