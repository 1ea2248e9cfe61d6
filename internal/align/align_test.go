package align

import (
	"testing"

	"github.com/verte-zerg/tartil/internal/arabic"
)

const basmala = "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ"

func TestAlignIdentical(t *testing.T) {
	tokens := arabic.Tokens(basmala)
	pairs := Align(tokens, tokens)
	if len(pairs) != len(tokens) {
		t.Fatalf("expected %d pairs, got %d", len(tokens), len(pairs))
	}
	for i, p := range pairs {
		if p.Ref != i || p.Spoken != i {
			t.Fatalf("expected diagonal pair %d, got %+v", i, p)
		}
	}
}

func TestAlignScenarios(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		spoken string
		want   []Pair
	}{
		{
			name:   "empty_both",
			ref:    "",
			spoken: "",
			want:   []Pair{},
		},
		{
			name:   "empty_spoken",
			ref:    "قل هو الله",
			spoken: "",
			want:   []Pair{{0, None}, {1, None}, {2, None}},
		},
		{
			name:   "empty_reference",
			ref:    "",
			spoken: "قل هو",
			want:   []Pair{{None, 0}, {None, 1}},
		},
		{
			name:   "last_word_dropped",
			ref:    basmala,
			spoken: "بسم الله الرحمن",
			want:   []Pair{{0, 0}, {1, 1}, {2, 2}, {3, None}},
		},
		{
			name:   "middle_word_dropped",
			ref:    basmala,
			spoken: "بسم الرحمن الرحيم",
			want:   []Pair{{0, 0}, {1, None}, {2, 1}, {3, 2}},
		},
		{
			name:   "trailing_extra",
			ref:    basmala,
			spoken: "بسم الله الرحمن الرحيم كتاب",
			want:   []Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {None, 4}},
		},
		{
			name:   "leading_extra",
			ref:    "قل هو الله",
			spoken: "يا قل هو الله",
			want:   []Pair{{None, 0}, {0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:   "misspelled_word_still_paired",
			ref:    "قل هو الله احد",
			spoken: "قل هو الله اهد",
			want:   []Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name:   "unrelated_word_not_paired",
			ref:    "احد",
			spoken: "كتب",
			want:   []Pair{{0, None}, {None, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Align(arabic.Tokens(tt.ref), arabic.Tokens(tt.spoken))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d pairs, got %d: %+v", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("pair %d: expected %+v, got %+v (all: %+v)", i, tt.want[i], got[i], got)
				}
			}
		})
	}
}

func TestAlignInvariants(t *testing.T) {
	cases := [][2]string{
		{basmala, "بسم الله الرحيم"},
		{basmala, "الرحيم الرحمن الله بسم"},
		{"الحمد لله رب العالمين", "الحمد لله رب رب العالمين العالمين"},
		{"قل اعوذ برب الناس ملك الناس", "قل اعود برب ناس ملك"},
		{"ا ب ت ث", "ث ت ب ا"},
	}
	for _, c := range cases {
		ref := arabic.Tokens(c[0])
		spoken := arabic.Tokens(c[1])
		pairs := Align(ref, spoken)

		refSeen := make([]int, len(ref))
		spokenSeen := make([]int, len(spoken))
		lastRef, lastSpoken := -1, -1
		for _, p := range pairs {
			if p.Ref == None && p.Spoken == None {
				t.Fatalf("pair with both sides missing in %+v", pairs)
			}
			if p.Ref != None {
				refSeen[p.Ref]++
				if p.Ref <= lastRef {
					t.Fatalf("reference order broken in %+v", pairs)
				}
				lastRef = p.Ref
			}
			if p.Spoken != None {
				spokenSeen[p.Spoken]++
				if p.Spoken <= lastSpoken {
					t.Fatalf("spoken order broken in %+v", pairs)
				}
				lastSpoken = p.Spoken
			}
		}
		for i, n := range refSeen {
			if n != 1 {
				t.Fatalf("reference index %d covered %d times", i, n)
			}
		}
		for j, n := range spokenSeen {
			if n != 1 {
				t.Fatalf("spoken index %d covered %d times", j, n)
			}
		}
		for a := range pairs {
			for b := a + 1; b < len(pairs); b++ {
				pa, pb := pairs[a], pairs[b]
				if pa.Matched() && pb.Matched() && pa.Ref < pb.Ref && pa.Spoken > pb.Spoken {
					t.Fatalf("crossing pairs %+v and %+v", pa, pb)
				}
			}
		}
	}
}

func TestAlignPairsBelowCeiling(t *testing.T) {
	ref := arabic.Tokens("العالمين")
	spoken := arabic.Tokens("العلمين")
	pairs := Align(ref, spoken)
	if len(pairs) != 1 || !pairs[0].Matched() {
		t.Fatalf("expected a single matched pair, got %+v", pairs)
	}
}
