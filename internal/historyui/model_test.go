package historyui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "tartil.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, score := range []int{55, 70, 95} {
		a := model.Attempt{
			StartedAt:    base.Add(time.Duration(i) * time.Hour),
			EndedAt:      base.Add(time.Duration(i)*time.Hour + time.Minute),
			Surah:        112,
			Ayah:         i%2 + 1,
			OverallScore: score,
			Grade:        "Good",
			TotalWords:   4,
		}
		mistakes := []model.MistakeCount{{Type: model.MistakeHaraka, Count: 1}}
		if _, err := st.InsertAttempt(context.Background(), a, mistakes); err != nil {
			t.Fatalf("insert attempt: %v", err)
		}
	}
	return st
}

func TestModelRendersTabs(t *testing.T) {
	m := NewModel(openStore(t), model.HistoryFilter{TrendWindow: 2})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if out := m.View(); !strings.Contains(out, "Attempts") || !strings.Contains(out, "Score Trend") {
		t.Fatalf("expected overview cards and trend:\n%s", out)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if out := m.View(); !strings.Contains(out, "112:1") {
		t.Fatalf("expected verse table:\n%s", out)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if out := m.View(); !strings.Contains(out, "haraka-error") {
		t.Fatalf("expected mistake table:\n%s", out)
	}
}

func TestFilterForm(t *testing.T) {
	m := NewModel(openStore(t), model.HistoryFilter{TrendWindow: 1})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.filterMode {
		t.Fatalf("expected filter mode")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode || m.filter.Last != 2 {
		t.Fatalf("expected last=2 applied, got %+v (error %q)", m.filter, m.filterError)
	}
	if len(m.report.Attempts) != 2 {
		t.Fatalf("expected 2 attempts after filtering, got %d", len(m.report.Attempts))
	}
}

func TestParseFilterRejectsBadInput(t *testing.T) {
	m := NewModel(openStore(t), model.HistoryFilter{})
	m.filterInputs[1].SetValue("yesterday")
	if _, err := parseFilter(m.filterInputs); err == nil {
		t.Fatalf("expected invalid date error")
	}
	m.filterInputs[1].SetValue("")
	m.filterInputs[0].SetValue("-3")
	if _, err := parseFilter(m.filterInputs); err == nil {
		t.Fatalf("expected invalid surah error")
	}
}

func TestWindowSteps(t *testing.T) {
	if nextWindow(1) != 5 || nextWindow(5) != 10 || nextWindow(7) != 10 {
		t.Fatalf("unexpected next window steps")
	}
	if prevWindow(5) != 1 || prevWindow(10) != 5 || prevWindow(7) != 5 {
		t.Fatalf("unexpected previous window steps")
	}
}
