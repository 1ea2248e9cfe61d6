package recitation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/verte-zerg/tartil/internal/arabic"
	"github.com/verte-zerg/tartil/internal/model"
)

type editOp uint8

const (
	opMatch editOp = iota
	opSubstitute
	opOmit   // reference letter not recited
	opInsert // spoken letter not in the reference
)

type step struct {
	op     editOp
	ref    int
	spoken int
}

// ClassifyMistakes explains how a spoken word differs from its reference.
// Both arguments are full-form words. Letters are compared on their folded
// base form; each contiguous run of letter edits becomes one mistake. Marks
// are only judged when the spoken word carries any, since a plain transcript
// says nothing about harakat. Mistakes are ordered by position in the word.
func ClassifyMistakes(refFull, spokenFull string) []model.Mistake {
	ref := arabic.Units(refFull)
	spoken := arabic.Units(spokenFull)
	judgeMarks := arabic.HasMarks(spokenFull)

	mistakes := []model.Mistake{}
	var region []step
	flush := func() {
		if len(region) > 0 {
			mistakes = append(mistakes, regionMistake(region, ref, spoken))
			region = region[:0]
		}
	}
	for _, s := range editScript(ref, spoken) {
		if s.op != opMatch {
			region = append(region, s)
			continue
		}
		flush()
		if judgeMarks {
			mistakes = append(mistakes, markMistakes(ref[s.ref], spoken[s.spoken])...)
		}
	}
	flush()
	return mistakes
}

// MissedMistake is the single mistake recorded for a word that was not
// recited at all.
func MissedMistake(word string) model.Mistake {
	return model.Mistake{
		Type:        model.MistakeWordOmission,
		Description: fmt.Sprintf("Word %q was not recited", word),
	}
}

// editScript is a Levenshtein edit script over base letters, in word order.
func editScript(ref, spoken []arabic.Unit) []step {
	n, m := len(ref), len(spoken)
	cols := m + 1
	dist := make([]int, (n+1)*cols)
	for i := 0; i <= n; i++ {
		dist[i*cols] = i
	}
	for j := 0; j <= m; j++ {
		dist[j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub := 1
			if ref[i-1].Base() == spoken[j-1].Base() {
				sub = 0
			}
			dist[i*cols+j] = min(
				dist[(i-1)*cols+j-1]+sub,
				dist[(i-1)*cols+j]+1,
				dist[i*cols+j-1]+1,
			)
		}
	}

	steps := make([]step, 0, max(n, m))
	i, j := n, m
	for i > 0 || j > 0 {
		cur := dist[i*cols+j]
		if i > 0 && j > 0 {
			same := ref[i-1].Base() == spoken[j-1].Base()
			if same && cur == dist[(i-1)*cols+j-1] {
				steps = append(steps, step{op: opMatch, ref: i - 1, spoken: j - 1})
				i--
				j--
				continue
			}
			if !same && cur == dist[(i-1)*cols+j-1]+1 {
				steps = append(steps, step{op: opSubstitute, ref: i - 1, spoken: j - 1})
				i--
				j--
				continue
			}
		}
		if i > 0 && cur == dist[(i-1)*cols+j]+1 {
			steps = append(steps, step{op: opOmit, ref: i - 1, spoken: -1})
			i--
			continue
		}
		steps = append(steps, step{op: opInsert, ref: -1, spoken: j - 1})
		j--
	}
	slices.Reverse(steps)
	return steps
}

func regionMistake(region []step, ref, spoken []arabic.Unit) model.Mistake {
	var said, expected []rune
	substituted := false
	elongationOnly := true
	for _, s := range region {
		switch s.op {
		case opSubstitute:
			substituted = true
			expected = append(expected, ref[s.ref].Letter)
			said = append(said, spoken[s.spoken].Letter)
		case opOmit:
			expected = append(expected, ref[s.ref].Letter)
			elongationOnly = elongationOnly && arabic.IsMaddLetter(ref, s.ref)
		case opInsert:
			said = append(said, spoken[s.spoken].Letter)
			elongationOnly = elongationOnly && arabic.IsMaddLetter(spoken, s.spoken)
		}
	}

	switch {
	case !substituted && elongationOnly:
		letters := expected
		if len(letters) == 0 {
			letters = said
		}
		return model.Mistake{
			Type:        model.MistakeMadd,
			Description: fmt.Sprintf("Madd length differs at %q", string(letters)),
		}
	case !substituted && len(said) == 0:
		return model.Mistake{
			Type:        model.MistakeLetterOmission,
			Description: fmt.Sprintf("Missing letter %q", string(expected)),
		}
	case !substituted && len(expected) == 0:
		return model.Mistake{
			Type:        model.MistakeLetterInsertion,
			Description: fmt.Sprintf("Extra letter %q", string(said)),
		}
	default:
		return model.Mistake{
			Type:        model.MistakeLetterSubstitution,
			Description: fmt.Sprintf("Letter %q said instead of %q", string(said), string(expected)),
		}
	}
}

func markMistakes(ref, spoken arabic.Unit) []model.Mistake {
	var out []model.Mistake
	if !slices.Equal(ref.MarksOf(arabic.MarkHaraka), spoken.MarksOf(arabic.MarkHaraka)) {
		out = append(out, model.Mistake{
			Type:        model.MistakeHaraka,
			Description: fmt.Sprintf("Wrong haraka on %q", unitText(ref)),
		})
	}
	if !slices.Equal(ref.MarksOf(arabic.MarkMadd), spoken.MarksOf(arabic.MarkMadd)) {
		out = append(out, model.Mistake{
			Type:        model.MistakeMadd,
			Description: fmt.Sprintf("Madd length differs at %q", unitText(ref)),
		})
	}
	return out
}

func unitText(u arabic.Unit) string {
	var b strings.Builder
	b.WriteRune(u.Letter)
	for _, m := range u.Marks {
		b.WriteRune(m)
	}
	return b.String()
}
