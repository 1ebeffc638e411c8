package game

import "testing"

func TestPlayerObstacleCollision(t *testing.T) {
	tests := []struct {
		name      string
		obstacleX float64
		dinoY     float64
		expected  bool
	}{
		{"grounded overlap", 100, 0, true},
		{"obstacle far right", 200, 0, false},
		{"player risen above", 100, 50, false},
		{"rise below hitbox height still hits", 100, 39, true},
		{"rise of exactly hitbox height clears", 100, 40, false},
		{"touching right edge does not count", 140, 0, false},
		{"one pixel inside right edge", 139, 0, true},
		{"touching left edge does not count", 80, 0, false},
		{"one pixel inside left edge", 81, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(1)
			s.DinoY = tc.dinoY
			s.Obstacles = append(s.Obstacles, Obstacle{ID: 1, X: tc.obstacleX})

			if got := s.collides(s.Obstacles); got != tc.expected {
				t.Errorf("collides(obstacle at x=%v, dinoY=%v) = %v, expected %v",
					tc.obstacleX, tc.dinoY, got, tc.expected)
			}
		})
	}
}

func TestCollisionVacuousWithoutObstacles(t *testing.T) {
	s := NewState(1)
	if s.collides(nil) {
		t.Error("collision with no obstacles should be false")
	}
}

func TestAnyOverlappingObstacleLatches(t *testing.T) {
	s := NewState(1)
	s.Obstacles = append(s.Obstacles,
		Obstacle{ID: 1, X: 400}, // clear
		Obstacle{ID: 2, X: 110}, // hit
		Obstacle{ID: 3, X: 700}, // clear
	)
	if !s.collides(s.Obstacles) {
		t.Error("a single overlapping obstacle among many should collide")
	}
}

func TestPlayerRect(t *testing.T) {
	s := NewState(1)
	s.DinoY = 25

	r := s.PlayerRect()
	if r.X != PlayerX || r.W != PlayerW || r.H != PlayerH {
		t.Errorf("PlayerRect = %+v, wrong fixed dimensions", r)
	}
	if r.Y != GroundY-25 {
		t.Errorf("PlayerRect.Y = %v, expected %v", r.Y, GroundY-25)
	}
}
