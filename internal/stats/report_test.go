package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "tartil.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).UTC().Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		attempt := model.Attempt{
			StartedAt:     start,
			EndedAt:       end,
			Surah:         112,
			Ayah:          i + 1,
			ReferenceText: "قل هو الله احد",
			SpokenText:    "قل هو الله",
			OverallScore:  60 + i*10,
			Grade:         "Good",
			TotalWords:    4,
			DurationMs:    end.Sub(start).Milliseconds(),
		}
		mistakes := []model.MistakeCount{{Type: model.MistakeWordOmission, Count: 1}}
		id, err := st.InsertAttempt(ctx, attempt, mistakes)
		if err != nil {
			t.Fatalf("insert attempt: %v", err)
		}
		ids = append(ids, id)
	}

	filter := model.HistoryFilter{
		Surah:       112,
		Last:        2,
		TrendWindow: 1,
	}
	report, err := BuildReport(ctx, st, filter)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(report.Attempts))
	}
	if report.Attempts[0].AttemptID != ids[1] || report.Attempts[1].AttemptID != ids[2] {
		t.Fatalf("unexpected attempt ids: %+v", report.Attempts)
	}
	if len(report.WindowIDs) != 1 || report.WindowIDs[0] != ids[2] {
		t.Fatalf("expected the latest attempt in the window, got %v", report.WindowIDs)
	}
	if len(report.MistakesAll) != 1 || report.MistakesAll[0].Count != 2 {
		t.Fatalf("expected 2 omissions across the report, got %+v", report.MistakesAll)
	}
	if len(report.MistakesWindow) != 1 || report.MistakesWindow[0].Count != 1 {
		t.Fatalf("expected 1 omission in the window, got %+v", report.MistakesWindow)
	}
	if len(report.Verses) != 2 {
		t.Fatalf("expected 2 verse averages, got %+v", report.Verses)
	}
}
