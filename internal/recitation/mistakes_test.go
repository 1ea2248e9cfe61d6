package recitation

import (
	"strings"
	"testing"

	"github.com/verte-zerg/tartil/internal/arabic"
	"github.com/verte-zerg/tartil/internal/model"
)

func full(s string) string {
	return arabic.Normalize(s, arabic.Full)
}

func TestClassifyMistakes(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		spoken string
		want   []model.MistakeType
	}{
		{name: "identical", ref: "الرحمن", spoken: "الرحمن", want: nil},
		{name: "substitution", ref: "احد", spoken: "اهد", want: []model.MistakeType{model.MistakeLetterSubstitution}},
		{name: "omission", ref: "الحمد", spoken: "الحد", want: []model.MistakeType{model.MistakeLetterOmission}},
		{name: "insertion", ref: "رب", spoken: "ربك", want: []model.MistakeType{model.MistakeLetterInsertion}},
		{name: "extra_elongation", ref: "الرحمن", spoken: "الرحمان", want: []model.MistakeType{model.MistakeMadd}},
		{name: "dropped_elongation", ref: "العالمين", spoken: "العلمين", want: []model.MistakeType{model.MistakeMadd}},
		{
			name:   "two_regions_in_order",
			ref:    "سبحان",
			spoken: "صبحن",
			want:   []model.MistakeType{model.MistakeLetterSubstitution, model.MistakeMadd},
		},
		{name: "haraka", ref: "بِسْمِ", spoken: "بَسْمِ", want: []model.MistakeType{model.MistakeHaraka}},
		{name: "undiacritized_spoken_not_judged", ref: "بِسْمِ", spoken: "بسم", want: nil},
		{name: "madd_sign", ref: "الرَّحْمَٰنِ", spoken: "الرَّحْمَنِ", want: []model.MistakeType{model.MistakeMadd}},
		{name: "diacritized_madd_dropped", ref: "قَالَ", spoken: "قَلَ", want: []model.MistakeType{model.MistakeMadd}},
		{name: "conjunction_waw_dropped", ref: "وَقَالَ", spoken: "قَالَ", want: []model.MistakeType{model.MistakeLetterOmission}},
		{name: "conjunction_waw_added", ref: "قَالَ", spoken: "وَقَالَ", want: []model.MistakeType{model.MistakeLetterInsertion}},
		{name: "hamzated_alef_dropped", ref: "أَحَدٌ", spoken: "حَدٌ", want: []model.MistakeType{model.MistakeLetterOmission}},
		{name: "prefix_yeh_dropped", ref: "يَقُولُ", spoken: "قُولُ", want: []model.MistakeType{model.MistakeLetterOmission}},
		{name: "article_alef_dropped", ref: "الحمد", spoken: "لحمد", want: []model.MistakeType{model.MistakeLetterOmission}},
		{name: "diphthong_waw_dropped", ref: "يَوْمِ", spoken: "يَمِ", want: []model.MistakeType{model.MistakeLetterOmission}},
		{name: "voweled_waw_dropped", ref: "عِوَجًا", spoken: "عِجًا", want: []model.MistakeType{model.MistakeLetterOmission}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyMistakes(full(tt.ref), full(tt.spoken))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d mistakes, got %+v", len(tt.want), got)
			}
			for i, typ := range tt.want {
				if got[i].Type != typ {
					t.Fatalf("mistake %d: expected %s, got %+v", i, typ, got[i])
				}
				if got[i].Description == "" {
					t.Fatalf("mistake %d: expected a description", i)
				}
			}
		})
	}
}

func TestClassifyMistakesDescriptions(t *testing.T) {
	got := ClassifyMistakes("سبحان", "صبحن")
	if got[0].Description != `Letter "ص" said instead of "س"` {
		t.Fatalf("unexpected substitution description: %s", got[0].Description)
	}
	if got[1].Description != `Madd length differs at "ا"` {
		t.Fatalf("unexpected madd description: %s", got[1].Description)
	}

	got = ClassifyMistakes("الحمد", "الحد")
	if got[0].Description != `Missing letter "م"` {
		t.Fatalf("unexpected omission description: %s", got[0].Description)
	}

	got = ClassifyMistakes(full("وَقَالَ"), full("قَالَ"))
	if got[0].Description != `Missing letter "و"` {
		t.Fatalf("unexpected omission description: %s", got[0].Description)
	}

	got = ClassifyMistakes("رب", "ربك")
	if got[0].Description != `Extra letter "ك"` {
		t.Fatalf("unexpected insertion description: %s", got[0].Description)
	}
}

func TestMissedMistake(t *testing.T) {
	m := MissedMistake("الرحيم")
	if m.Type != model.MistakeWordOmission {
		t.Fatalf("expected word omission, got %s", m.Type)
	}
	if !strings.Contains(m.Description, "الرحيم") {
		t.Fatalf("expected description to name the word, got %q", m.Description)
	}
}
