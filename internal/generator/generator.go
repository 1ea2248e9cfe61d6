// Package generator picks the next verse to practice.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tartil/internal/quran"
)

// Generator picks verses at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects a verse uniformly. verses must not be empty.
func (g *Generator) Pick(verses []quran.Verse) quran.Verse {
	return verses[g.rnd.Intn(len(verses))]
}

// PickWeighted selects a verse with a bias toward weak verses: each weak
// verse weighs 1+factor, every other verse weighs 1.
func (g *Generator) PickWeighted(verses []quran.Verse, weak map[quran.Key]struct{}, factor float64) quran.Verse {
	if len(weak) == 0 || factor <= 0 {
		return g.Pick(verses)
	}
	weights := make([]float64, len(verses))
	total := 0.0
	for i, v := range verses {
		w := 1.0
		if _, ok := weak[v.Key]; ok {
			w += factor
		}
		weights[i] = w
		total += w
	}

	r := g.rnd.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return verses[i]
		}
	}
	return verses[len(verses)-1]
}
