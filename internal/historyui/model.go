// Package historyui provides the Bubble Tea history browser.
package historyui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/stats"
	"github.com/verte-zerg/tartil/internal/store"
)

const plotHeight = 8

const (
	tabOverview = iota
	tabVerses
	tabMistakes
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea history UI.
type Model struct {
	store  *store.Store
	filter model.HistoryFilter

	report stats.Report
	errMsg string

	tabs       []string
	activeTab  int
	viewports  []viewport.Model
	verseTable table.Model

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

// NewModel constructs a history UI model.
func NewModel(st *store.Store, filter model.HistoryFilter) *Model {
	m := &Model{
		store:  st,
		filter: filter,
		tabs:   []string{"Overview", "Verses", "Mistakes"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.filterInputs = []textinput.Model{
		newFilterInput("Surah: "),
		newFilterInput("Since (YYYY-MM-DD): "),
		newFilterInput("Last: "),
		newFilterInput("Trend window: "),
	}
	m.verseTable = table.New(table.WithColumns(verseColumns()), table.WithHeight(1))
	m.verseTable.SetStyles(verseTableStyles())
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (!m.filterMode && msg.String() == "q") {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=":
			m.filter.TrendWindow = nextWindow(m.filter.TrendWindow)
			m.refreshReport()
			return m, nil
		case "-":
			m.filter.TrendWindow = prevWindow(m.filter.TrendWindow)
			m.refreshReport()
			return m, nil
		case "/":
			return m.startFilter()
		}
		if m.activeTab == tabVerses {
			var cmd tea.Cmd
			m.verseTable, cmd = m.verseTable.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight := m.layoutHeights()
	header := fitLines(m.renderTabs()+"\n"+m.renderFilterSummary(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	return header + "\n" + body + "\n" + fitLines(m.renderFooter(), m.width, 1)
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight int) {
	headerHeight = lipgloss.Height(activeNavStyle.Render("X")) + 1
	bodyHeight = max(1, m.height-headerHeight-1)
	return headerHeight, bodyHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.verseTable.SetWidth(m.width)
	m.verseTable.SetHeight(max(1, bodyHeight-1))
	for i := range m.filterInputs {
		m.filterInputs[i].Width = max(10, m.width-lipgloss.Width(m.filterInputs[i].Prompt)-2)
	}
}

func (m *Model) moveTab(delta int) {
	m.activeTab = (m.activeTab + delta + len(m.tabs)) % len(m.tabs)
	if m.activeTab == tabVerses {
		m.verseTable.Focus()
	} else {
		m.verseTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFilterSummary() string {
	surah := "any"
	if m.filter.Surah > 0 {
		surah = strconv.Itoa(m.filter.Surah)
	}
	since := "any"
	if m.filter.Since != nil {
		since = m.filter.Since.Format("2006-01-02")
	}
	last := "all"
	if m.filter.Last > 0 {
		last = strconv.Itoa(m.filter.Last)
	}
	return headerStyle.Render(fmt.Sprintf("Filter: surah=%s  since=%s  last=%s  window=%d", surah, since, last, m.filter.TrendWindow))
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
	}
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Filter: /  Quit: q")
}

func (m *Model) renderBody() string {
	if m.filterMode {
		lines := []string{"Filter (enter to apply, esc to cancel)"}
		for _, input := range m.filterInputs {
			lines = append(lines, input.View())
		}
		if m.filterError != "" {
			lines = append(lines, errorStyle.Render(m.filterError))
		}
		return strings.Join(lines, "\n")
	}
	if m.activeTab == tabVerses {
		if len(m.report.Verses) == 0 {
			return "No attempts found."
		}
		return m.verseTable.View()
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.filter)
	if err != nil {
		m.errMsg = err.Error()
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load history.")
		}
		return
	}
	m.errMsg = ""
	m.report = report
	m.verseTable.SetRows(verseRows(stats.WeakestVerses(report.Verses, 0)))
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if m.errMsg != "" {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.report.Attempts, m.filter.TrendWindow, width))
	m.viewports[tabMistakes].SetContent(renderMistakes(m.report))
}

func renderOverview(attempts []model.AttemptAggregate, window, width int) string {
	if len(attempts) == 0 {
		return "No attempts found."
	}
	s := stats.Summarize(attempts)
	cards := []string{
		metricCard("Attempts", fmt.Sprintf("%d", s.Attempts)),
		metricCard("Avg Score", fmt.Sprintf("%.1f", s.AvgScore)),
		metricCard("Best", fmt.Sprintf("%d", s.BestScore)),
		metricCard("Haraka", fmt.Sprintf("%.1f", s.AvgHaraka)),
		metricCard("Madd", fmt.Sprintf("%.1f", s.AvgMadd)),
		metricCard("Complete", fmt.Sprintf("%.1f", s.AvgCompleteness)),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5])
		summary = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	var buf bytes.Buffer
	if err := stats.RenderTrend(&buf, attempts, window, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render trend: %v", err)
	}
	return strings.TrimRight(summary+"\n\n"+buf.String(), "\n")
}

func renderMistakes(report stats.Report) string {
	var buf bytes.Buffer
	if _, err := fmt.Fprintln(&buf, headerStyle.Render("All attempts")); err != nil {
		return err.Error()
	}
	if err := stats.RenderMistakeTable(&buf, report.MistakesAll); err != nil {
		return err.Error()
	}
	if _, err := fmt.Fprintln(&buf, headerStyle.Render(fmt.Sprintf("Last %d attempts", len(report.WindowIDs)))); err != nil {
		return err.Error()
	}
	if err := stats.RenderMistakeTable(&buf, report.MistakesWindow); err != nil {
		return err.Error()
	}
	return strings.TrimRight(buf.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func verseColumns() []table.Column {
	return []table.Column{
		{Title: "Verse", Width: 8},
		{Title: "Avg Score", Width: 10},
		{Title: "Attempts", Width: 9},
	}
}

func verseRows(verses []model.VerseAggregate) []table.Row {
	rows := make([]table.Row, 0, len(verses))
	for _, v := range verses {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d:%d", v.Surah, v.Ayah),
			fmt.Sprintf("%.1f", v.AvgScore),
			fmt.Sprintf("%d", v.Attempts),
		})
	}
	return rows
}

func verseTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		PaddingLeft(0)
	styles.Cell = styles.Cell.PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromFilter()
	return m, m.setFilterIndex(0)
}

func (m *Model) setInputsFromFilter() {
	m.filterInputs[0].SetValue(optionalInt(m.filter.Surah))
	if m.filter.Since != nil {
		m.filterInputs[1].SetValue(m.filter.Since.Format("2006-01-02"))
	} else {
		m.filterInputs[1].SetValue("")
	}
	m.filterInputs[2].SetValue(optionalInt(m.filter.Last))
	m.filterInputs[3].SetValue(strconv.Itoa(m.filter.TrendWindow))
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		filter, err := parseFilter(m.filterInputs)
		if err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filter = filter
		m.filterMode = false
		m.filterError = ""
		m.refreshReport()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	m.filterIndex = (idx + count) % count
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func parseFilter(inputs []textinput.Model) (model.HistoryFilter, error) {
	surah, err := parseNonNegative(inputs[0].Value(), "surah")
	if err != nil {
		return model.HistoryFilter{}, err
	}
	var since *time.Time
	if raw := strings.TrimSpace(inputs[1].Value()); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return model.HistoryFilter{}, fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
		}
		since = &parsed
	}
	last, err := parseNonNegative(inputs[2].Value(), "last")
	if err != nil {
		return model.HistoryFilter{}, err
	}
	window, err := parseNonNegative(inputs[3].Value(), "trend window")
	if err != nil {
		return model.HistoryFilter{}, err
	}
	return model.HistoryFilter{Surah: surah, Since: since, Last: last, TrendWindow: max(window, 1)}, nil
}

func parseNonNegative(raw, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s (use 0 or a positive integer)", name)
	}
	return v, nil
}

func optionalInt(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func nextWindow(n int) int {
	if n < 5 {
		return 5
	}
	return (n/5 + 1) * 5
}

func prevWindow(n int) int {
	if n <= 5 {
		return 1
	}
	if n%5 == 0 {
		return n - 5
	}
	return (n / 5) * 5
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(lines, "\n")
}
