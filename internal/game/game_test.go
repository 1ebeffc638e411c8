package game

import (
	"testing"

	"github.com/mkovalev/tui-runner/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Given the same seed and inputs, two runs produce identical results.
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%50 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() core.GameState {
		g := New()
		g.Reset(testConfig(12345))
		var state core.GameState
		for _, in := range inputSequence {
			result := g.Step(in)
			state = result.State
			if state.GameOver {
				break
			}
		}
		return state
	}

	state1 := run()
	state2 := run()

	if state1 != state2 {
		t.Errorf("Determinism failed: %+v vs %+v", state1, state2)
	}
}

func TestGameRunsIntoObstacleWithoutJumping(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	var over bool
	for i := 0; i < 2000; i++ {
		result := g.Step(core.NewInputFrame())
		if result.State.GameOver {
			over = true
			break
		}
	}
	if !over {
		t.Fatal("a session without jumps should end at the first obstacle")
	}
	if g.State().Score == 0 {
		t.Error("score should have accumulated before the crash")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	result := g.Step(in)

	if result.State.GameOver {
		t.Error("restart should clear the game-over latch")
	}
	sim := g.Sim()
	if sim.Speed != BaseSpeed || len(sim.Obstacles) != 0 || len(sim.Clouds) != 0 || sim.DinoY != 0 {
		t.Errorf("restart left stale session state: %+v", sim.Snapshot())
	}
}

func TestGameRestartIgnoredWhileActive(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	score := g.State().Score

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.State().Score <= score {
		t.Error("restart during an active session should be ignored")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	result := g.Step(in)
	if !result.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	score := result.State.Score
	for i := 0; i < 30; i++ {
		result = g.Step(core.NewInputFrame())
	}
	if result.State.Score != score {
		t.Error("score advanced while paused")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	result = g.Step(in)
	if result.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Ground line spans the full width.
	row := screen.Row(screen.Height() - 2)
	for _, r := range row {
		if r != GroundChar {
			t.Fatalf("ground row contains %q, expected %q everywhere", r, GroundChar)
		}
	}

	// HUD shows the score.
	if screen.Get(2, 0) != ' ' || screen.Get(3, 0) != 'S' {
		t.Errorf("score HUD missing, row 0 = %q", screen.Row(0))
	}
}
