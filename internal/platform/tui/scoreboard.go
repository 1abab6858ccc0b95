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

	"github.com/vovakirdan/dropcatch/internal/storage"
)

const maxRounds = 100 // rounds loaded into the table

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(2, 4)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap is the round history key set.
type ScoreboardKeyMap struct {
	Up, Down, Toggle, Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Quit}}
}

// DefaultScoreboardKeyMap scrolls with arrows or j/k and switches between
// the player's rounds and everyone's with tab.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(help, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}
	return ScoreboardKeyMap{
		Up:     bind("↑/k", "older", "up", "k"),
		Down:   bind("↓/j", "newer", "down", "j"),
		Toggle: bind("tab", "mine/everyone", "tab"),
		Quit:   bind("q", "close", "q", "esc", "ctrl+c"),
	}
}

// ScoreboardModel shows the round history with the player's statistics.
type ScoreboardModel struct {
	store    *storage.Store
	player   string
	everyone bool // show every player's rounds instead of player's
	rounds   []storage.RoundEntry
	stats    *storage.PlayerStats
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard for player. An empty player starts
// with everyone's rounds.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:    store,
		player:   player,
		everyone: player == "",
		keys:     DefaultScoreboardKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.table = roundsTable(height)
	m.load()
	return m
}

// roundsTable builds the history table sized to the terminal height minus
// the title, stats, frame and help rows.
func roundsTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 12},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 8},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24"))
	t.SetStyles(st)
	return t
}

// filter returns the player name RecentRounds is queried with.
func (m ScoreboardModel) filter() string {
	if m.everyone {
		return ""
	}
	return m.player
}

// load reads rounds and statistics from the store.
func (m *ScoreboardModel) load() {
	m.rounds, m.stats, m.err = nil, nil, nil
	if m.store == nil {
		m.fillRows()
		return
	}

	rounds, err := m.store.RecentRounds(m.filter(), maxRounds)
	if err != nil {
		m.err = err
	}
	m.rounds = rounds
	if m.player != "" {
		if stats, err := m.store.Stats(m.player); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

// fillRows copies the loaded rounds into the table, newest first. The
// player's best round is starred.
func (m *ScoreboardModel) fillRows() {
	best := -1
	if m.stats != nil && m.stats.Rounds > 0 {
		best = m.stats.BestScore
	}
	rows := make([]table.Row, 0, len(m.rounds))
	for i, r := range m.rounds {
		score := strconv.Itoa(r.Score)
		if r.Player == m.player && r.Score == best {
			score += " *"
			best = -1
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			r.Player,
			score,
			r.Difficulty,
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Toggle) {
			if m.player != "" {
				m.everyone = !m.everyone
				m.load()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = roundsTable(msg.Height)
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "ROUNDS - everyone"
	if !m.everyone {
		title = "ROUNDS - " + m.player
	}

	body := m.table.View()
	switch {
	case m.err != nil:
		body = boardEmptyStyle.Render("Could not read rounds:\n" + m.err.Error())
	case len(m.rounds) == 0:
		body = boardEmptyStyle.Render("No rounds recorded yet.\nFinish a round to see it here!")
	}

	return strings.Join([]string{
		centerText(boardTitleStyle.Render(title), m.width),
		centerText(m.statsLine(), m.width),
		"",
		centerText(boardFrameStyle.Render(body), m.width),
		helpStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return " "
	}
	return boardDimStyle.Render(fmt.Sprintf("%d rounds   best %d   average %.1f",
		m.stats.Rounds, m.stats.BestScore, m.stats.AvgScore))
}

// centerText centers a possibly multi-line block within width.
func centerText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// RunScoreboard runs the round history screen.
func RunScoreboard(store *storage.Store, player string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, player, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
