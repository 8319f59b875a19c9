package tui

import (
	"context"
	"errors"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/usecase"
)

const refreshInterval = 100 * time.Millisecond

type gameController interface {
	Start(ctx context.Context, difficulty string, size int) error
	Move(ctx context.Context, position int) error
	Replay(ctx context.Context) error
	Restart(ctx context.Context) error
	Reset()
	Snapshot() usecase.Snapshot
}

type connection interface {
	Init(ctx context.Context) error
	Retry(ctx context.Context) error
	Connected() bool
	Catalog() entity.DifficultyCatalog
}

// ConnectionChangedMsg - sent by the application when the monitor flips state in the background.
type ConnectionChangedMsg bool

type tickMsg time.Time

type connectionMsg struct {
	err error
}

type sessionMsg struct {
	err error
}

// Options - the initial setup choices.
type Options struct {
	Difficulty string
	Size       int
	BaseURL    string
}

type Model struct {
	ctx  context.Context
	game gameController
	conn connection
	opts Options

	connected bool
	checking  bool
	connErr   error

	difficulties []string
	catalog      entity.DifficultyCatalog
	diffCursor   int
	size         int

	snapshot usecase.Snapshot
	cursor   int
	width    int
}

func New(ctx context.Context, game gameController, conn connection, opts Options) Model {
	size := opts.Size
	if !entity.IsValidSize(size) {
		size = entity.ClassicSize
	}

	return Model{
		ctx:      ctx,
		game:     game,
		conn:     conn,
		opts:     opts,
		checking: true,
		size:     size,
		snapshot: game.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkCmd(false), tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd()

	case connectionMsg:
		m.checking = false
		m.connErr = msg.err
		m.connected = m.conn.Connected()
		m.setCatalog(m.conn.Catalog())
		m.refresh()
		return m, nil

	case ConnectionChangedMsg:
		m.connected = bool(msg)
		if m.connected {
			m.setCatalog(m.conn.Catalog())
		}
		return m, nil

	case sessionMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		if m.checking {
			return m, nil
		}
		m.checking = true
		return m, m.checkCmd(true)
	}

	switch m.snapshot.Phase {
	case entity.PhaseSetup:
		return m.updateSetup(msg)
	case entity.PhasePlaying:
		return m.updatePlaying(msg)
	case entity.PhaseFinished:
		return m.updateFinished(msg)
	}

	return m, nil
}

func (m Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case "down", "j":
		if m.diffCursor < len(m.difficulties)-1 {
			m.diffCursor++
		}
	case "left", "right", "tab", "s":
		m.toggleSize()
	case "3":
		m.size = entity.ClassicSize
	case "4":
		m.size = entity.EnhancedSize
	case "enter", " ":
		difficulty, ok := m.selectedDifficulty()
		if !ok || !m.connected || m.snapshot.Loading {
			return m, nil
		}
		return m, m.sessionCmd(func() error {
			return m.game.Start(m.ctx, difficulty, m.size)
		})
	}

	return m, nil
}

func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	game := m.snapshot.Game

	switch msg.String() {
	case "n", "esc":
		m.game.Reset()
		m.refresh()
		return m, nil
	}

	if game == nil {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-game.Size, game)
	case "down", "j":
		m.moveCursor(game.Size, game)
	case "left", "h":
		if m.cursor%game.Size > 0 {
			m.moveCursor(-1, game)
		}
	case "right", "l":
		if m.cursor%game.Size < game.Size-1 {
			m.moveCursor(1, game)
		}
	case "enter", " ":
		if !m.connected {
			return m, nil
		}
		position := m.cursor
		return m, m.sessionCmd(func() error {
			return m.game.Move(m.ctx, position)
		})
	case "x":
		if !m.connected {
			return m, nil
		}
		return m, m.sessionCmd(func() error {
			return m.game.Restart(m.ctx)
		})
	}

	return m, nil
}

func (m Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "esc":
		m.game.Reset()
		m.refresh()
		return m, nil
	case "p", "enter":
		if !m.connected {
			return m, nil
		}
		return m, m.sessionCmd(func() error {
			return m.game.Replay(m.ctx)
		})
	case "x":
		if !m.connected {
			return m, nil
		}
		return m, m.sessionCmd(func() error {
			return m.game.Restart(m.ctx)
		})
	}

	return m, nil
}

func (m *Model) refresh() {
	m.snapshot = m.game.Snapshot()

	if game := m.snapshot.Game; game != nil && m.cursor >= len(game.Board) {
		m.cursor = 0
	}
}

func (m *Model) moveCursor(delta int, game *entity.GameSession) {
	next := m.cursor + delta
	if next >= 0 && next < len(game.Board) {
		m.cursor = next
	}
}

func (m *Model) toggleSize() {
	if m.size == entity.ClassicSize {
		m.size = entity.EnhancedSize
		return
	}

	m.size = entity.ClassicSize
}

// setCatalog - keeps the cursor on the same difficulty, else on the preferred selectable one.
func (m *Model) setCatalog(catalog entity.DifficultyCatalog) {
	if catalog == nil {
		return
	}

	current, hadCurrent := m.selectedKey()

	m.catalog = catalog
	m.difficulties = catalog.Keys()

	if hadCurrent {
		if i := slices.Index(m.difficulties, current); i >= 0 {
			m.diffCursor = i
			return
		}
	}

	m.diffCursor = 0
	if i := slices.Index(m.difficulties, m.opts.Difficulty); i >= 0 && catalog.Selectable(m.opts.Difficulty) {
		m.diffCursor = i
		return
	}

	for i, key := range m.difficulties {
		if catalog.Selectable(key) {
			m.diffCursor = i
			return
		}
	}
}

func (m Model) selectedKey() (string, bool) {
	if m.diffCursor < 0 || m.diffCursor >= len(m.difficulties) {
		return "", false
	}

	return m.difficulties[m.diffCursor], true
}

// selectedDifficulty - the highlighted difficulty, only when it can be played.
func (m Model) selectedDifficulty() (string, bool) {
	key, ok := m.selectedKey()
	if !ok || !m.catalog.Selectable(key) {
		return "", false
	}

	return key, true
}

func (m Model) checkCmd(retry bool) tea.Cmd {
	return func() tea.Msg {
		if retry {
			return connectionMsg{err: m.conn.Retry(m.ctx)}
		}
		return connectionMsg{err: m.conn.Init(m.ctx)}
	}
}

// sessionCmd - runs a game action off the update loop, refusals are dropped.
func (m Model) sessionCmd(action func() error) tea.Cmd {
	return func() tea.Msg {
		err := action()
		if errors.Is(err, apperror.ErrInvalidTransition) || errors.Is(err, apperror.ErrNoActiveGame) {
			err = nil
		}
		return sessionMsg{err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
