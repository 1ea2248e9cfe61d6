package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tartil/internal/generator"
	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/quran"
	"github.com/verte-zerg/tartil/internal/recitation"
	"github.com/verte-zerg/tartil/internal/store"
)

var testVerse = quran.Verse{Key: quran.Key{Surah: 112, Ayah: 1}, Text: "قُلْ هُوَ اللَّهُ أَحَدٌ"}

func newTestModel(t *testing.T, st *store.Store) *Model {
	t.Helper()
	return NewModel(model.Config{}, st, generator.NewSeeded(1), recitation.New(), []quran.Verse{testVerse}, nil, false)
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestSubmitScoresAndSavesAttempt(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "tartil.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	m := newTestModel(t, st)
	typeText(m, "قل هو الله")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.result == nil {
		t.Fatalf("expected a result after enter")
	}
	if m.result.MissedCount != 1 || m.result.CorrectCount != 3 {
		t.Fatalf("unexpected result %+v", *m.result)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input cleared after submit")
	}

	attempts, err := st.ListAttempts(context.Background(), model.HistoryFilter{})
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Surah != 112 || attempts[0].OverallScore != m.result.OverallScore {
		t.Fatalf("expected the attempt to be saved, got %+v", attempts)
	}
	if !strings.Contains(m.renderFooter(), "Last ") {
		t.Fatalf("expected footer to show last score: %s", m.renderFooter())
	}
}

func TestEmptySubmitIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.result != nil {
		t.Fatalf("expected no result for empty input")
	}
}

func TestNextVerseClearsResult(t *testing.T) {
	m := newTestModel(t, nil)
	typeText(m, "قل هو الله احد")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.result == nil || m.result.OverallScore != 100 {
		t.Fatalf("expected a perfect result")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.result != nil {
		t.Fatalf("expected result cleared on next verse")
	}
}

func TestRenderResultListsMistakesAndRules(t *testing.T) {
	res := recitation.Compare(testVerse.Text, "قل هو")
	out := renderResult(res, 80)
	for _, want := range []string{"Excellent", "was not recited", "Qalqalah"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in result view:\n%s", want, out)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	m := &Model{verse: testVerse, hasLast: true, lastScore: 86, allScoreSum: 150, allCount: 2}
	out := m.renderFooter()
	for _, want := range []string{"Verse 112:1", "Last 86", "All-time 75.0 over 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}
