package game

import (
	"fmt"

	"github.com/mkovalev/tui-runner/internal/core"
)

// Projection from world pixels to terminal cells.
const (
	pixelsPerCol = 10.0
	pixelsPerRow = 20.0
	groundBottom = GroundY + ObstacleH // World y of the ground line
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	CloudChar  = '░'
	GroundChar = '═'
)

// Game adapts the simulation to the platform: it maps refresh steps and input
// frames onto the State transition function and projects world pixels onto
// the cell screen.
type Game struct {
	sim         *State
	runtime     core.RuntimeConfig
	paused      bool
	frameMillis float64 // Real time represented by one platform step
	legFrame    int     // Animation frame for running legs
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Dash"
}

// Reset initializes or restarts the game with a fresh seeded session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frameMillis = 1000.0 / float64(tickRate)
	g.sim = NewState(cfg.Seed)
	g.paused = false
	g.legFrame = 0
}

// Sim exposes the underlying simulation state for snapshot consumers.
func (g *Game) Sim() *State {
	return g.sim
}

// Step advances the game by one display refresh.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.sim.GameOver {
		g.paused = !g.paused
	}

	// Stray signals in the wrong state are silent no-ops inside the sim.
	if in.Has(core.ActionRestart) {
		g.sim.Restart()
	}
	if in.Has(core.ActionJump) {
		g.sim.Jump()
	}

	if !g.paused {
		g.sim.Advance(g.frameMillis)
		g.legFrame = (g.legFrame + 1) % 10
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score,
		GameOver: g.sim.GameOver,
		Paused:   g.paused,
	}
}

// groundRow returns the cell row of the ground line.
func (g *Game) groundRow(dst *core.Screen) int {
	return dst.Height() - 2
}

// rowOf converts a world y coordinate to a cell row.
func (g *Game) rowOf(dst *core.Screen, y float64) int {
	return g.groundRow(dst) - int((groundBottom-y)/pixelsPerRow)
}

func colOf(x float64) int {
	return int(x / pixelsPerCol)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()

	groundRow := g.groundRow(dst)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar)

	for _, c := range snap.Clouds {
		g.drawCloud(dst, c)
	}
	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, o)
	}
	g.drawDino(dst, snap)

	// HUD
	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawText(2, 0, scoreText)
	speedText := fmt.Sprintf(" Spd: %.0f ", snap.Speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawDino renders the runner: a 4x2 cell sprite whose bottom row carries
// animated legs while grounded.
func (g *Game) drawDino(dst *core.Screen, snap Snapshot) {
	top := g.rowOf(dst, GroundY-snap.DinoY)
	left := colOf(PlayerX)

	// Head row
	dst.SetCell(left+1, top, DinoBody, core.ColorGreen)
	dst.SetCell(left+2, top, DinoBody, core.ColorGreen)
	dst.SetCell(left+3, top, DinoHead, core.ColorGreen)

	// Body and legs
	dst.SetCell(left, top+1, DinoBody, core.ColorGreen)
	dst.SetCell(left+1, top+1, DinoBody, core.ColorGreen)
	if snap.Jumping {
		// In air - legs tucked
		dst.SetCell(left+2, top+1, DinoLeg1, core.ColorGreen)
		dst.SetCell(left+3, top+1, DinoLeg2, core.ColorGreen)
	} else if g.legFrame < 5 {
		dst.SetCell(left+2, top+1, DinoLeg1, core.ColorGreen)
		dst.SetCell(left+3, top+1, ' ', core.ColorDefault)
	} else {
		dst.SetCell(left+2, top+1, ' ', core.ColorDefault)
		dst.SetCell(left+3, top+1, DinoLeg2, core.ColorGreen)
	}
}

// drawObstacle renders a single cactus.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	top := g.rowOf(dst, GroundY)
	left := colOf(o.X)
	for dy := 0; dy < int(ObstacleH/pixelsPerRow); dy++ {
		for dx := 0; dx < int(ObstacleW/pixelsPerCol); dx++ {
			dst.SetCell(left+dx, top+dy, CactusChar, core.ColorRed)
		}
	}
}

// drawCloud renders a single background cloud.
func (g *Game) drawCloud(dst *core.Screen, c Cloud) {
	row := g.rowOf(dst, c.Y)
	left := colOf(c.X)
	for dx := 0; dx < 3; dx++ {
		dst.SetCell(left+dx, row, CloudChar, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
