package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkovalev/tui-runner/internal/core"
	"github.com/mkovalev/tui-runner/internal/replay"
	"github.com/mkovalev/tui-runner/internal/storage"
)

// Game is the seam between game logic and the platform. The game contains
// pure logic with no Bubble Tea dependencies; the platform handles input
// mapping, timing, recording, and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one display refresh.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool

	// Live-session recording
	record   bool
	recorder *replay.Recorder
	saved    bool // Whether the recording was saved for the current game over

	// Replay playback
	playback     *replay.Player
	playbackDone bool
}

// NewModel creates a Bubble Tea model for live play.
// If record is true and a store is available, each session is recorded and
// saved when it ends.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, record bool) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		record:     record && store != nil,
	}
	if m.record {
		m.recorder = replay.NewRecorder(cfg.Seed, cfg.TickRate)
	}
	return m
}

// NewPlaybackModel creates a Bubble Tea model that replays a recording.
func NewPlaybackModel(game Game, rec replay.Recording, cfg core.RuntimeConfig) Model {
	cfg.Seed = rec.Seed
	cfg.TickRate = rec.TickRate
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		playback:   replay.NewPlayer(rec),
	}
}

// Init initializes the model and starts the refresh loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg, m.gameState.GameOver)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// During playback the recording drives the game; only quit is live.
	if m.playback != nil {
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse routes pointer clicks into the same jump/restart signals.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.playback != nil {
		return m, nil
	}
	if action := m.keys.MapMouse(msg, m.gameState.GameOver); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes one display refresh.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.playback != nil {
		return m.handlePlaybackTick()
	}

	// Restart after game over: new seed, new session, new recording.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		if m.record {
			m.recorder = replay.NewRecorder(m.config.Seed, m.config.TickRate)
		}
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.recorder != nil && !m.gameState.GameOver {
		m.recorder.Capture(m.inputFrame)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the recording on game over (once per session)
	if m.gameState.GameOver && !m.saved {
		if m.recorder != nil && m.store != nil && m.gameState.Score > 0 {
			rec := m.recorder.Finish(m.gameState.Score)
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRecording(rec)
		}
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handlePlaybackTick feeds the next recorded frame into the game.
func (m Model) handlePlaybackTick() (tea.Model, tea.Cmd) {
	if m.playbackDone {
		return m, nil
	}

	in, ok := m.playback.Next()
	if !ok {
		// Hold the final frame until the user quits.
		m.playbackDone = true
		return m, nil
	}

	result := m.game.Step(in)
	m.gameState = result.State
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.playback != nil {
		label := " REPLAY "
		if m.playbackDone {
			label = " REPLAY ENDED - press Q to exit "
		}
		m.screen.DrawTextCentered(0, label)
	}

	return RenderScreen(m.screen)
}

// Run starts a live game session and blocks until the user quits.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, record bool) error {
	model := NewModel(game, store, cfg, record)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Pointer clicks jump/restart
	)

	_, err := p.Run()
	return err
}

// RunPlayback replays a stored recording and blocks until done or quit.
func RunPlayback(game Game, rec replay.Recording, cfg core.RuntimeConfig) error {
	model := NewPlaybackModel(game, rec, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
