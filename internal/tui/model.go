package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tetrigo/tetrigo/internal/config"
	"github.com/tetrigo/tetrigo/internal/game"
)

// GameTickMsg carries one gravity step. It is re-armed after every tick
// at the engine's current fall interval, so the cadence follows the
// level.
type GameTickMsg time.Time

type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// Model is the terminal shell around the engine: it schedules gravity
// ticks, maps key presses to commands and renders snapshots. All rule
// logic lives in the game package.
type Model struct {
	screen Screen
	cfg    config.Config
	game   *game.Game
	width  int
	height int
}

func NewModel(cfg config.Config) Model {
	return Model{
		screen: ScreenWelcome,
		cfg:    cfg,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func gameTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return GameTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case GameTickMsg:
		return m.handleGameTick()
	}
	return m, nil
}

func (m Model) handleGameTick() (tea.Model, tea.Cmd) {
	if m.screen != ScreenPlaying || m.game == nil {
		return m, nil
	}

	m.game.HandleTick()

	snap := m.game.Snapshot()
	if snap.Phase == game.PhaseGameOver {
		m.screen = ScreenGameOver
		return m, nil
	}
	return m, gameTickCmd(snap.FallInterval)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.screen == ScreenPlaying {
			// Don't quit during gameplay with q
			break
		}
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenWelcome:
		return m.handleWelcomeKeys(msg)
	case ScreenPlaying:
		return m.handlePlayingKeys(msg)
	case ScreenGameOver:
		return m.handleGameOverKeys(msg)
	}
	return m, nil
}

func (m Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "enter", "1":
		return m.startGame()
	}
	return m, nil
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	seed := m.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.game = game.NewAtLevel(seed, m.cfg.StartLevel)
	m.screen = ScreenPlaying
	return m, gameTickCmd(m.game.Snapshot().FallInterval)
}

func (m Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.game == nil {
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		m.game.HandleCommand(game.CmdMoveLeft)
	case "right", "l":
		m.game.HandleCommand(game.CmdMoveRight)
	case "down", "j":
		m.game.HandleCommand(game.CmdSoftDrop)
	case "up", "x":
		m.game.HandleCommand(game.CmdRotateCW)
	case "z":
		m.game.HandleCommand(game.CmdRotateCCW)
	case " ":
		m.game.HandleCommand(game.CmdHardDrop)
	case "c":
		m.game.HandleCommand(game.CmdHold)
	case "r":
		m.game.HandleCommand(game.CmdRestart)
	default:
		return m, nil
	}

	// A hard drop can top out.
	if m.game.Snapshot().Phase == game.PhaseGameOver {
		m.screen = ScreenGameOver
	}
	return m, nil
}

func (m Model) handleGameOverKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.game.HandleCommand(game.CmdRestart)
		m.screen = ScreenPlaying
		return m, gameTickCmd(m.game.Snapshot().FallInterval)
	case "enter":
		m.screen = ScreenWelcome
		m.game = nil
		return m, nil
	}
	return m, nil
}

// --- View ---

func (m Model) View() string {
	switch m.screen {
	case ScreenWelcome:
		return m.renderCentered(RenderWelcome())
	case ScreenPlaying:
		return m.renderPlaying()
	case ScreenGameOver:
		score := 0
		if m.game != nil {
			score = m.game.Snapshot().Score
		}
		return m.renderCentered(RenderGameOver(score) + "\n\nPress R to retry, ENTER for menu")
	}
	return ""
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderPlaying() string {
	if m.game == nil {
		return "Loading..."
	}

	snap := m.game.Snapshot()
	board := RenderBoard(snap)
	info := RenderInfo(snap, m.cfg.PlayerName)

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(info)

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(board)

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(mainContent)
}
