package recitation

import (
	"testing"

	"github.com/verte-zerg/tartil/internal/model"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		ref, spoken string
		want        int
	}{
		{"", "", 100},
		{"الرحمن", "الرحمن", 100},
		{"الرحمن", "الرحمان", 86},
		{"احد", "اهد", 67},
		{"احد", "", 0},
		{"احد", "كتب", 0},
	}
	for _, tt := range tests {
		if got := Similarity(tt.ref, tt.spoken); got != tt.want {
			t.Fatalf("Similarity(%q, %q): expected %d, got %d", tt.ref, tt.spoken, tt.want, got)
		}
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		similarity int
		want       model.Status
	}{
		{100, model.StatusCorrect},
		{99, model.StatusPartial},
		{PartialThreshold, model.StatusPartial},
		{PartialThreshold - 1, model.StatusWrong},
		{0, model.StatusWrong},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.similarity); got != tt.want {
			t.Fatalf("StatusFor(%d): expected %s, got %s", tt.similarity, tt.want, got)
		}
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score  int
		grade  string
		arabic string
	}{
		{100, "Excellent", "ممتاز"},
		{85, "Excellent", "ممتاز"},
		{84, "Good", "جيد"},
		{60, "Good", "جيد"},
		{59, "Needs Practice", "يحتاج تدريب"},
		{0, "Needs Practice", "يحتاج تدريب"},
	}
	for _, tt := range tests {
		grade, arabic := GradeFor(tt.score)
		if grade != tt.grade || arabic != tt.arabic {
			t.Fatalf("GradeFor(%d): expected %s/%s, got %s/%s", tt.score, tt.grade, tt.arabic, grade, arabic)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(nil, DefaultWeights())
	if res.OverallScore != 50 || res.LetterScore != 0 || res.HarakaScore != 100 || res.MaddScore != 100 {
		t.Fatalf("unexpected empty aggregate: %+v", res)
	}
}

func TestStatusDisplay(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range model.Statuses() {
		icon := StatusIcon(s)
		if icon == "" || icon == "•" {
			t.Fatalf("expected a dedicated icon for %s", s)
		}
		if seen[icon] {
			t.Fatalf("duplicate icon %s", icon)
		}
		seen[icon] = true
		if got := StatusClass(s); got != "word-"+string(s) {
			t.Fatalf("unexpected class for %s: %s", s, got)
		}
	}
	if StatusIcon("bogus") != "•" || StatusClass("bogus") != "word-unknown" {
		t.Fatalf("expected fallbacks for unknown status")
	}
}

func TestDefaultWeightsReturnsCopy(t *testing.T) {
	w := DefaultWeights()
	w.Letter = 0
	if got := DefaultWeights(); got.Letter != 0.25 {
		t.Fatalf("expected default letter weight 0.25, got %v", got.Letter)
	}
	if New().weights != DefaultWeights() {
		t.Fatalf("expected a new checker to use the default weights")
	}
}
