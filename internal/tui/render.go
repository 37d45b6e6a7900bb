package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tetrigo/tetrigo/internal/game"
)

var (
	// Indexed by the engine's shape color ids.
	colors = []string{
		"0",
		"196",
		"46",
		"226",
		"21",
		"201",
		"51",
		"208",
	}

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	ghostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Align(lipgloss.Center)
)

func colorFor(id int) string {
	if id >= 0 && id < len(colors) {
		return colors[id]
	}
	return "15"
}

// RenderBoard draws the playfield from a snapshot, overlaying the active
// piece and its ghost.
func RenderBoard(snap game.Snapshot) string {
	active := make(map[game.Coord]bool, len(snap.Active))
	for _, c := range snap.Active {
		active[c] = true
	}
	ghost := make(map[game.Coord]bool, len(snap.Ghost))
	for _, c := range snap.Ghost {
		ghost[c] = true
	}

	var sb strings.Builder
	for y := 0; y < len(snap.Board); y++ {
		for x := 0; x < len(snap.Board[y]); x++ {
			at := game.Coord{Row: y, Col: x}
			cell := snap.Board[y][x]

			switch {
			case active[at]:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(colorFor(snap.ActiveColor))).
					Render("██"))
			case cell.Filled:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(colorFor(cell.Color))).
					Render("██"))
			case ghost[at]:
				sb.WriteString(ghostStyle.Render("[]"))
			default:
				sb.WriteString("  ")
			}
		}
		if y < len(snap.Board)-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// RenderShape draws a shape preview in its spawn orientation.
func RenderShape(s game.Shape) string {
	occupied := make(map[game.Coord]bool, 4)
	for _, c := range s.Cells() {
		occupied[c] = true
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFor(s.Color())))
	size := s.BoxSize()

	var sb strings.Builder
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if occupied[game.Coord{Row: y, Col: x}] {
				sb.WriteString(style.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		if y < size-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func RenderInfo(snap game.Snapshot, playerName string) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("TETRIGO") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Player: %s", playerName)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", snap.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Level: %d", snap.Level)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", snap.Lines)) + "\n\n")

	sb.WriteString(titleStyle.Render("NEXT") + "\n")
	sb.WriteString(RenderShape(snap.Next) + "\n\n")

	sb.WriteString(titleStyle.Render("HOLD") + "\n")
	if snap.HasHeld {
		sb.WriteString(RenderShape(snap.Held) + "\n")
	} else {
		sb.WriteString(infoStyle.Render("Empty") + "\n")
	}

	return sb.String()
}

func RenderWelcome() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Align(lipgloss.Center).
		Render(`
╔══════════════════════════════╗
║        T E T R I G O         ║
║   Falling blocks, terminal   ║
╚══════════════════════════════╝

   Press ENTER or S to play
   Press Q to quit
`) + "\n" + RenderControls()
}

func RenderGameOver(score int) string {
	return gameOverStyle.Render(fmt.Sprintf("\n\n\n     GAME OVER     \n     Score: %d     \n\n\n", score))
}

func RenderControls() string {
	return infoStyle.Render(`
Controls:
  ← →    Move left/right
  ↓      Soft drop
  Space  Hard drop
  ↑/X    Rotate CW
  Z      Rotate CCW
  C      Hold piece
  R      Restart
  Q      Quit
`)
}
