package recitation

import (
	"github.com/verte-zerg/tartil/internal/align"
	"github.com/verte-zerg/tartil/internal/arabic"
	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/tajweed"
)

// Option configures a Checker.
type Option func(*Checker)

// WithWeights sets the sub-score weights of the overall score.
func WithWeights(w Weights) Option {
	return func(c *Checker) {
		if w.valid() {
			c.weights = w
		}
	}
}

// WithPartialThreshold sets the lowest similarity that still counts as a
// partial match. Values are clamped to [0, 100].
func WithPartialThreshold(threshold int) Option {
	return func(c *Checker) {
		c.partial = clamp(threshold, 0, CorrectThreshold)
	}
}

// Checker compares recitations. It is read-only after construction and safe
// for concurrent use.
type Checker struct {
	weights Weights
	partial int
}

// New returns a Checker with equal weights and the default partial
// threshold, adjusted by opts.
func New(opts ...Option) *Checker {
	c := &Checker{
		weights: DefaultWeights(),
		partial: PartialThreshold,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

var defaultChecker = New()

// Compare checks spoken against reference with the default settings.
func Compare(reference, spoken string) model.RecitationResult {
	return defaultChecker.Compare(reference, spoken)
}

// Compare aligns the words of spoken against reference and scores every
// pair. Word results follow reference order; extra spoken words appear at
// the position where the alignment put them.
func (c *Checker) Compare(reference, spoken string) model.RecitationResult {
	ref := arabic.Tokens(reference)
	said := arabic.Tokens(spoken)
	pairs := align.Align(ref, said)

	words := make([]model.WordResult, 0, len(pairs))
	for _, p := range pairs {
		switch {
		case p.Matched():
			words = append(words, c.matchedWord(ref[p.Ref], said[p.Spoken]))
		case p.Missed():
			r := ref[p.Ref]
			words = append(words, model.WordResult{
				Original: r.Original,
				Status:   model.StatusMissed,
				Mistakes: []model.Mistake{MissedMistake(r.Original)},
				Tajweed:  model.Tajweed{Annotations: tajweed.Annotate(r.Full)},
			})
		default:
			words = append(words, model.WordResult{
				Spoken:   said[p.Spoken].Original,
				Status:   model.StatusExtra,
				Mistakes: []model.Mistake{},
				Tajweed:  model.Tajweed{Annotations: []model.TajweedAnnotation{}},
			})
		}
	}
	return Aggregate(words, c.weights)
}

func (c *Checker) matchedWord(r, s arabic.Token) model.WordResult {
	sim := Similarity(r.Skeleton, s.Skeleton)
	status := statusFor(sim, c.partial)
	mistakes := []model.Mistake{}
	if status != model.StatusCorrect {
		mistakes = ClassifyMistakes(r.Full, s.Full)
	}
	return model.WordResult{
		Original:   r.Original,
		Spoken:     s.Original,
		Status:     status,
		Similarity: sim,
		Mistakes:   mistakes,
		Tajweed:    model.Tajweed{Annotations: tajweed.Annotate(r.Full)},
	}
}
