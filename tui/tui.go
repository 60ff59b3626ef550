package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"

	"github.com/zvonler/vex/model"
)

// Source feeds the listing screen. The v2ex refresh coordinator satisfies
// it in the program; tests substitute their own.
type Source interface {
	Refresh(pageNum int) bool
	Poll() ([]model.Topic, bool)
	InFlight() bool
}

// dots cycle through this many frames while the first page loads
const loadingDotStates = 5

type tickMsg struct{}

/*---------------------------------------------------------------------------*/

// Model drives the topic listing screen. Topic data only ever arrives
// through the Source; the render path never fetches anything itself.
type Model struct {
	source Source
	theme  Theme
	tick   time.Duration

	page     int
	topics   []model.Topic
	loaded   bool
	dots     int
	selected int
	width    int
	height   int
}

func NewModel(source Source, page int, tick time.Duration, theme Theme) Model {
	return Model{
		source: source,
		theme:  theme,
		tick:   tick,
		page:   page,
		dots:   1,
	}
}

func (m Model) Init() tea.Cmd {
	m.source.Refresh(m.page)
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case tickMsg:
		if topics, ok := m.source.Poll(); ok {
			m.applyTopics(topics)
		} else if !m.loaded {
			m.dots = (m.dots + 1) % loadingDotStates
		}
		return m, m.tickCmd()
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) View() string {
	title := fmt.Sprintf("V2EX topics / p.%d", m.page)
	if m.loaded && m.source.InFlight() {
		title += "  (refreshing)"
	}
	titleLine := m.theme.titleStyle().Render(truncate(title, m.width))

	if !m.loaded {
		loading := m.theme.loadingStyle().Render("Loading" + strings.Repeat(".", m.dots))
		return lipgloss.JoinVertical(lipgloss.Left, titleLine, loading)
	}

	rows := m.renderRows()
	detail := m.renderDetail()
	hints := m.theme.mutedStyle().Render(truncate("j/k move  enter open  r refresh  n/p page  q quit", m.width))
	return lipgloss.JoinVertical(lipgloss.Left, titleLine, rows, detail, hints)
}

/*---------------------------------------------------------------------------*/

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)
	case "enter", "o":
		if topic, ok := m.selectedTopic(); ok {
			browser.OpenURL(topic.BrowserURL())
		}
	case "r":
		m.source.Refresh(m.page)
	case "n":
		if m.source.Refresh(m.page + 1) {
			m.page++
		}
	case "p":
		if m.page > 1 && m.source.Refresh(m.page-1) {
			m.page--
		}
	}
	return m, nil
}

func (m *Model) applyTopics(topics []model.Topic) {
	m.topics = append([]model.Topic(nil), topics...)
	m.loaded = true
	m.clampSelection()
}

func (m *Model) moveSelection(delta int) {
	m.selected += delta
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.topics) {
		m.selected = len(m.topics) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) selectedTopic() (model.Topic, bool) {
	if len(m.topics) == 0 || m.selected < 0 || m.selected >= len(m.topics) {
		return model.Topic{}, false
	}
	return m.topics[m.selected], true
}

func (m Model) renderRows() string {
	if len(m.topics) == 0 {
		return m.theme.mutedStyle().Render("No topics")
	}

	maxRows := len(m.topics)
	if m.height > 4 && m.height-4 < maxRows {
		maxRows = m.height - 4
	}
	start := 0
	if len(m.topics) > maxRows {
		start = m.selected - maxRows/2
		if start < 0 {
			start = 0
		}
		if start+maxRows > len(m.topics) {
			start = len(m.topics) - maxRows
		}
	}

	lines := make([]string, 0, maxRows)
	for i := start; i < len(m.topics) && len(lines) < maxRows; i++ {
		cursor := "  "
		if i == m.selected {
			cursor = "▸ "
		}
		line := truncate(cursor+m.topics[i].DisplayLine(), m.width)
		if i == m.selected {
			line = m.theme.selectedStyle().Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	topic, ok := m.selectedTopic()
	if !ok {
		return ""
	}
	info := m.theme.mutedStyle().Render(fmt.Sprintf("node %s  by ", topic.Node.Name)) +
		m.theme.authorStyle().Render(topic.Author.Name) +
		m.theme.mutedStyle().Render("  last reply "+topic.LastReplyUser.Name)
	urlLine := m.theme.urlStyle().Render(truncate(topic.BrowserURL(), m.width))
	return lipgloss.JoinVertical(lipgloss.Left, info, urlLine)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
