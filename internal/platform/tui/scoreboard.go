package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

const (
	scoreLimit     = 100 // Runs loaded per game
	statsMinWidth  = 84  // Below this the stats card moves under the table
	statsCardWidth = 24
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 1)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).Padding(1, 2)
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Mine key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Mine, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Mine, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next maze")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev maze")),
		Mine: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my runs")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded runs, one registered game at a time.
type ScoreboardModel struct {
	store  *storage.Store
	player string // Empty disables the my-runs filter
	games  []registry.GameInfo
	active int

	mineOnly bool
	runs     []storage.ScoreEntry
	stats    *storage.GameStats

	table         table.Model
	help          help.Model
	keys          ScoreboardKeyMap
	width, height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first registered game.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		player: player,
		games:  registry.List(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newRunsTable(width, height)
	m.reload()
	return m
}

func newRunsTable(width, height int) table.Model {
	playerW := 12
	if width >= 70 {
		playerW = 18
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: playerW},
			{Title: "Score", Width: 8},
			{Title: "Stage", Width: 5},
			{Title: "When", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("12"))
	s.Selected = s.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	t.SetStyles(s)
	return t
}

// gameID returns the id of the game on display, or "".
func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.active].ID
}

// reload fetches runs and stats for the game on display.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	id := m.gameID()
	if m.store != nil && id != "" {
		if m.mineOnly {
			m.runs = m.myRuns(id)
		} else if runs, err := m.store.TopScores(id, scoreLimit); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		name := r.Player
		if name == "" {
			name = "-"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			name,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Stage),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// myRuns filters the viewer's runs down to one game.
func (m *ScoreboardModel) myRuns(gameID string) []storage.ScoreEntry {
	all, err := m.store.PlayerScores(m.player, scoreLimit)
	if err != nil {
		return nil
	}
	var out []storage.ScoreEntry
	for _, r := range all {
		if r.GameID == gameID {
			out = append(out, r)
		}
	}
	return out
}

// step moves the active game by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if n := len(m.games); n > 0 {
		m.active = ((m.active+delta)%n + n) % n
		m.reload()
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Mine):
			if m.player != "" {
				m.mineOnly = !m.mineOnly
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunsTable(msg.Width, msg.Height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.mineOnly {
		title = "MY RUNS · " + m.player
	}

	var body string
	if len(m.runs) == 0 {
		body = emptyStyle.Render("No runs yet.\nEat every pellet to set one!")
	} else {
		body = m.table.View()
	}
	if card := m.statsCard(); card != "" {
		if m.width >= statsMinWidth {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", card)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, body, card)
		}
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders one tab per registered game.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.active {
			parts[i] = activeTabStyle.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// statsCard summarises every run of the active game.
func (m ScoreboardModel) statsCard() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	s := m.stats
	lines := []string{
		fmt.Sprintf("Best      %d", s.HighScore),
		fmt.Sprintf("Games     %d", s.GamesCount),
		fmt.Sprintf("Average   %.0f", s.AvgScore),
		fmt.Sprintf("Stage     %d", s.BestStage),
	}
	if !s.LastPlayed.IsZero() {
		lines = append(lines, "Last      "+s.LastPlayed.Format("Jan 02"))
	}
	return cardStyle.Width(statsCardWidth).Render(strings.Join(lines, "\n"))
}

// IsGoingBack reports whether the viewer asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the viewer asked to quit.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard until the viewer leaves.
// goBack is false when the viewer quit instead.
func RunScoreboard(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, player, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
