// Package align pairs reference words with spoken words using a global,
// order-preserving alignment (Needleman-Wunsch) over skeleton forms.
package align

import (
	"math"

	"github.com/verte-zerg/tartil/internal/arabic"
)

const (
	// GapCost is charged for leaving a reference word missed or a spoken
	// word extra.
	GapCost = 0.35
	// MatchCeiling is the normalized edit distance at or above which two
	// words are never paired; leaving both as gaps costs the same.
	MatchCeiling = 2 * GapCost

	epsilon = 1e-9
)

// None marks the missing side of a gap pair.
const None = -1

// Pair links a reference index to a spoken index. At most one side is None.
type Pair struct {
	Ref    int
	Spoken int
}

// Matched reports whether both sides are present.
func (p Pair) Matched() bool {
	return p.Ref != None && p.Spoken != None
}

// Missed reports whether the reference word has no spoken counterpart.
func (p Pair) Missed() bool {
	return p.Ref != None && p.Spoken == None
}

// Extra reports whether the spoken word has no reference counterpart.
func (p Pair) Extra() bool {
	return p.Ref == None && p.Spoken != None
}

type move uint8

const (
	moveDiag move = iota
	moveUp        // reference word missed
	moveLeft      // spoken word extra
)

// Align returns the minimum-cost alignment of ref and spoken. Every
// reference and spoken index appears exactly once, in increasing order on
// both sides.
func Align(ref, spoken []arabic.Token) []Pair {
	n, m := len(ref), len(spoken)
	cols := m + 1

	// Flat (n+1)x(m+1) score and backpointer tables.
	score := make([]float64, (n+1)*cols)
	back := make([]move, (n+1)*cols)
	for i := 1; i <= n; i++ {
		score[i*cols] = float64(i) * GapCost
		back[i*cols] = moveUp
	}
	for j := 1; j <= m; j++ {
		score[j] = float64(j) * GapCost
		back[j] = moveLeft
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			best := math.Inf(1)
			choice := moveLeft
			if cost := arabic.NormalizedDistance(ref[i-1].Skeleton, spoken[j-1].Skeleton); cost < MatchCeiling-epsilon {
				best = score[(i-1)*cols+j-1] + cost
				choice = moveDiag
			}
			// Ties prefer the extra move so that, once the traceback is
			// reversed, a missed word comes before the extra word that
			// replaced it.
			if left := score[i*cols+j-1] + GapCost; left < best-epsilon {
				best = left
				choice = moveLeft
			}
			if up := score[(i-1)*cols+j] + GapCost; up < best-epsilon {
				best = up
				choice = moveUp
			}
			score[i*cols+j] = best
			back[i*cols+j] = choice
		}
	}

	pairs := make([]Pair, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch back[i*cols+j] {
		case moveDiag:
			pairs = append(pairs, Pair{Ref: i - 1, Spoken: j - 1})
			i--
			j--
		case moveUp:
			pairs = append(pairs, Pair{Ref: i - 1, Spoken: None})
			i--
		default:
			pairs = append(pairs, Pair{Ref: None, Spoken: j - 1})
			j--
		}
	}
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
	return pairs
}
