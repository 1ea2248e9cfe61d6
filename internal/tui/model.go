// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tartil/internal/generator"
	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/quran"
	"github.com/verte-zerg/tartil/internal/recitation"
	statsPkg "github.com/verte-zerg/tartil/internal/stats"
	"github.com/verte-zerg/tartil/internal/store"
)

// Model implements the Bubble Tea practice UI.
type Model struct {
	config            model.Config
	store             *store.Store
	gen               *generator.Generator
	checker           *recitation.Checker
	verses            []quran.Verse
	weakSet           map[quran.Key]struct{}
	weakNoticePrinted bool

	width  int
	height int

	verse     quran.Verse
	input     textinput.Model
	result    *model.RecitationResult
	resultVP  viewport.Model
	startedAt time.Time

	lastScore   int
	hasLast     bool
	allScoreSum int
	allCount    int
}

var (
	verseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	refStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))

	// statusStyles is keyed by recitation.StatusClass.
	statusStyles = map[string]lipgloss.Style{
		"word-correct": lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")),
		"word-partial": lipgloss.NewStyle().Foreground(lipgloss.Color("#FAAD14")),
		"word-wrong":   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		"word-missed":  lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Strikethrough(true),
		"word-extra":   lipgloss.NewStyle().Foreground(lipgloss.Color("#B37FEB")).Italic(true),
		"word-unknown": lipgloss.NewStyle(),
	}
	gradeStyles = map[string]lipgloss.Style{
		"Excellent":      lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true),
		"Good":           lipgloss.NewStyle().Foreground(lipgloss.Color("#FAAD14")).Bold(true),
		"Needs Practice": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
	}
)

// NewModel constructs a practice TUI model. verses must not be empty.
func NewModel(cfg model.Config, st *store.Store, gen *generator.Generator, checker *recitation.Checker, verses []quran.Verse, weakSet map[quran.Key]struct{}, weakNoticePrinted bool) *Model {
	input := textinput.New()
	input.Placeholder = "type or paste your recitation, enter to check"
	input.CharLimit = 0
	input.Focus()

	m := &Model{
		config:            cfg,
		store:             st,
		gen:               gen,
		checker:           checker,
		verses:            verses,
		weakSet:           weakSet,
		weakNoticePrinted: weakNoticePrinted,
		input:             input,
		resultVP:          viewport.New(0, 0),
	}
	m.nextVerse()
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, m.contentWidth()-lipgloss.Width(m.input.Prompt)-1)
		m.resultVP.Width = m.contentWidth()
		m.resultVP.Height = max(1, m.height-m.headerHeight()-2)
		m.refreshResultView()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.submit()
			return m, nil
		case "ctrl+n":
			m.nextVerse()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.resultVP, cmd = m.resultVP.Update(msg)
			return m, cmd
		}
		if m.startedAt.IsZero() {
			m.startedAt = time.Now()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.renderVerse(), m.input.View()}
	if m.result != nil {
		sections = append(sections, m.resultVP.View())
	}
	content := strings.Join(sections, "\n\n")
	if m.width == 0 || m.height == 0 {
		return content + "\n" + m.renderFooter()
	}
	body := lipgloss.Place(m.width, max(1, m.height-1), lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(m.contentWidth()).Render(content))
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	return body + "\n" + footer
}

func (m *Model) contentWidth() int {
	return max(1, int(float64(m.width)*0.80))
}

func (m *Model) headerHeight() int {
	return lipgloss.Height(m.renderVerse()) + 3
}

func (m *Model) renderVerse() string {
	words := strings.Fields(m.verse.Text)
	styled := make([]styledWord, len(words))
	for i, w := range words {
		styled[i] = newStyledWord(w, verseStyle.Render)
	}
	return refStyle.Render(m.verse.Ref()) + "\n" + wrapStyledWords(styled, m.contentWidth())
}

func (m *Model) submit() {
	spoken := strings.TrimSpace(m.input.Value())
	if spoken == "" {
		return
	}
	startedAt := m.startedAt
	endedAt := time.Now()
	if startedAt.IsZero() {
		startedAt = endedAt
	}
	res := m.checker.Compare(m.verse.Text, spoken)
	m.result = &res
	m.refreshResultView()
	m.recordAttempt(res, spoken, startedAt, endedAt)
	m.input.SetValue("")
	m.startedAt = time.Time{}
}

func (m *Model) recordAttempt(res model.RecitationResult, spoken string, startedAt, endedAt time.Time) {
	m.lastScore = res.OverallScore
	m.hasLast = true
	m.allScoreSum += res.OverallScore
	m.allCount++
	if m.store == nil {
		return
	}
	attempt, mistakes := model.AttemptFromResult(res, m.verse.Surah, m.verse.Ayah, m.verse.Text, spoken, startedAt, endedAt)
	if _, err := m.store.InsertAttempt(context.Background(), attempt, mistakes); err != nil {
		logErrf("failed to save attempt: %v\n", err)
	}
	if m.config.FocusWeak {
		m.refreshWeakSet()
	}
}

func (m *Model) nextVerse() {
	if len(m.verses) == 0 {
		return
	}
	if m.config.FocusWeak && len(m.weakSet) > 0 {
		m.verse = m.gen.PickWeighted(m.verses, m.weakSet, m.config.WeakFactor)
	} else {
		m.verse = m.gen.Pick(m.verses)
	}
	m.result = nil
	m.input.SetValue("")
	m.startedAt = time.Time{}
	m.resultVP.SetContent("")
}

func (m *Model) refreshResultView() {
	if m.result == nil {
		return
	}
	m.resultVP.SetContent(renderResult(*m.result, m.contentWidth()))
	m.resultVP.GotoTop()
}

func renderResult(res model.RecitationResult, width int) string {
	grade := gradeStyles[res.Grade].Render(fmt.Sprintf("%d %s · %s", res.OverallScore, res.Grade, res.GradeArabic))
	scores := mutedStyle.Render(fmt.Sprintf("letters %d  haraka %d  madd %d  completeness %d",
		res.LetterScore, res.HarakaScore, res.MaddScore, res.CompletenessScore))

	words := make([]styledWord, 0, len(res.WordResults))
	var details []string
	for _, wr := range res.WordResults {
		text := wr.Original
		if text == "" {
			text = wr.Spoken
		}
		style := statusStyles[recitation.StatusClass(wr.Status)]
		words = append(words, newStyledWord(text, style.Render))
		for _, mk := range wr.Mistakes {
			details = append(details, fmt.Sprintf("%s %s", recitation.StatusIcon(wr.Status), mk.Description))
		}
	}

	lines := []string{grade, scores, "", wrapStyledWords(words, width)}
	if len(details) > 0 {
		lines = append(lines, "")
		lines = append(lines, details...)
	}
	if legend := renderRuleLegend(res); legend != "" {
		lines = append(lines, "", legend)
	}
	return strings.Join(lines, "\n")
}

// renderRuleLegend lists each tajweed rule found in the verse once, in its
// colour.
func renderRuleLegend(res model.RecitationResult) string {
	seen := map[string]bool{}
	var parts []string
	for _, wr := range res.WordResults {
		for _, a := range wr.Tajweed.Annotations {
			if seen[a.Rule] {
				continue
			}
			seen[a.Rule] = true
			parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(a.Info.Color)).Render("■ "+a.Rule))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	attempts, err := m.store.ListAttempts(context.Background(), model.HistoryFilter{})
	if err != nil {
		logErrf("failed to load attempt history: %v\n", err)
		return
	}
	if len(attempts) == 0 {
		return
	}
	m.lastScore = attempts[len(attempts)-1].OverallScore
	m.hasLast = true
	for _, a := range attempts {
		m.allScoreSum += a.OverallScore
	}
	m.allCount = len(attempts)
}

func (m *Model) renderFooter() string {
	segments := []string{fmt.Sprintf("Verse %s", m.verse.Ref())}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %d", m.lastScore))
	}
	if m.allCount > 0 {
		segments = append(segments, fmt.Sprintf("All-time %.1f over %d", float64(m.allScoreSum)/float64(m.allCount), m.allCount))
	}
	segments = append(segments, "ctrl+n next · esc quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) refreshWeakSet() {
	aggs, err := m.store.VerseAverages(context.Background(), m.config.WeakWindow)
	if err != nil {
		logErrf("failed to load verse averages: %v\n", err)
		return
	}
	if len(aggs) == 0 {
		if !m.weakNoticePrinted {
			logErrln("no history available for weak-verse focus yet; picking verses uniformly")
			m.weakNoticePrinted = true
		}
		m.weakSet = map[quran.Key]struct{}{}
		return
	}
	m.weakSet = statsPkg.WeakVerses(aggs, m.config.WeakTop)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
