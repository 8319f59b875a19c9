package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

func (m Model) View() string {
	sections := []string{
		m.viewHeader(),
		"",
	}

	switch m.snapshot.Phase {
	case entity.PhaseSetup:
		sections = append(sections, m.viewSetup())
	default:
		sections = append(sections, m.viewGame())
	}

	if banner := m.viewError(); banner != "" {
		sections = append(sections, "", banner)
	}

	sections = append(sections, "", m.viewStats(), "", mutedStyle.Render(m.help()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("Tic-Tac-Toe vs AI")

	var badge string
	switch {
	case m.checking:
		badge = mutedStyle.Render("connecting...")
	case m.connected:
		badge = textStyle.Render(onlineStyle.Render("● connected"))
	default:
		badge = textStyle.Render(offlineStyle.Render("● disconnected"))
	}

	if m.opts.BaseURL != "" {
		badge = lipgloss.JoinHorizontal(lipgloss.Top, badge, mutedStyle.Render(m.opts.BaseURL))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, badge)
}

func (m Model) viewSetup() string {
	lines := []string{textStyle.Render("Choose a difficulty:")}

	if len(m.difficulties) == 0 {
		lines = append(lines, mutedStyle.Render("No difficulties available yet."))
	}

	for i, key := range m.difficulties {
		info := m.catalog[key]
		label := entity.DisplayName(key, info)
		if info.Description != "" {
			label += " - " + info.Description
		}

		switch {
		case !m.catalog.Selectable(key):
			lines = append(lines, disabledStyle.Render("  "+label+" (not trained)"))
		case i == m.diffCursor:
			lines = append(lines, selectedStyle.Render("> "+label))
		default:
			lines = append(lines, textStyle.Render("  "+label))
		}
	}

	lines = append(lines, "", textStyle.Render(fmt.Sprintf("Board: %s", sizeLabel(m.size))))

	if m.snapshot.Message != "" {
		lines = append(lines, "", textStyle.Render(m.snapshot.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewGame() string {
	game := m.snapshot.Game
	if game == nil {
		return textStyle.Render(m.snapshot.Message)
	}

	info := entity.DisplayName(game.Difficulty, game.DifficultyInfo)
	if game.DifficultyInfo.StrategyLabel != "" {
		info += " (" + game.DifficultyInfo.StrategyLabel + ")"
	}

	lines := []string{
		textStyle.Render(fmt.Sprintf("%s | %s", info, sizeLabel(game.Size))),
		m.renderBoard(game),
	}

	if len(game.SpecialCells) > 0 {
		lines = append(lines, mutedStyle.Render("X/O cells count for both players."))
	}

	status := m.snapshot.Message
	if m.snapshot.AIThinking && status == "" {
		status = "AI is thinking..."
	}
	lines = append(lines, textStyle.Render(status))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderBoard(game *entity.GameSession) string {
	if game.Size <= 0 || len(game.Board) < game.Size*game.Size {
		return mutedStyle.Render("No board")
	}

	rows := make([]string, 0, game.Size)
	for row := range game.Size {
		cells := make([]string, 0, game.Size)
		for col := range game.Size {
			position := row*game.Size + col
			cells = append(cells, m.renderCell(game, position))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderCell(game *entity.GameSession, position int) string {
	cell := game.Board[position]

	var style lipgloss.Style
	text := string(cell)

	switch cell {
	case entity.CellHuman:
		style = humanCellStyle
	case entity.CellAI:
		style = aiCellStyle
	case entity.CellWild:
		style = wildCellStyle
	default:
		style = emptyCellStyle
		text = "·"
	}

	switch {
	case slices.Contains(game.WinningLine, position):
		style = style.Background(winningBackground)
	case m.snapshot.IsPlaying() && position == m.cursor:
		style = style.Background(cursorBackground)
	}

	return style.Render(text)
}

func (m Model) viewError() string {
	err := m.snapshot.Err
	if err == nil {
		err = m.connErr
	}

	if err == nil {
		return ""
	}

	return errorStyle.Render("Error: " + apperror.Message(err))
}

func (m Model) viewStats() string {
	stats := m.snapshot.Stats

	return statsStyle.Render(fmt.Sprintf(
		"Played %d | Wins %d | Losses %d | Draws %d | Win rate %.0f%%",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.WinRate(),
	))
}

func (m Model) help() string {
	var keys []string

	switch m.snapshot.Phase {
	case entity.PhaseSetup:
		keys = []string{"↑/↓ difficulty", "←/→ board size", "enter start"}
	case entity.PhasePlaying:
		keys = []string{"arrows move", "enter play", "x restart", "n new game"}
	case entity.PhaseFinished:
		keys = []string{"p play again", "x restart", "n new game"}
	}

	if !m.connected && !m.checking {
		keys = append(keys, "r retry")
	}

	return strings.Join(append(keys, "q quit"), " • ")
}

func sizeLabel(size int) string {
	if size == entity.EnhancedSize {
		return "4x4 with wildcards"
	}

	return "3x3 classic"
}
