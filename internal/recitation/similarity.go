// Package recitation compares a recited text against a reference verse and
// scores it word by word.
//
// Compare is pure and deterministic: it never fails, performs no I/O and
// shares nothing mutable between calls, so it may be called concurrently.
package recitation

import (
	"math"

	"github.com/verte-zerg/tartil/internal/arabic"
	"github.com/verte-zerg/tartil/internal/model"
)

// Status thresholds on the 0-100 similarity scale. A similarity equal to
// PartialThreshold is partial.
const (
	CorrectThreshold = 100
	PartialThreshold = 70
)

// Similarity returns how close two skeleton forms are, from 0 (nothing in
// common) to 100 (identical).
func Similarity(ref, spoken string) int {
	sim := int(math.Round(100 * (1 - arabic.NormalizedDistance(ref, spoken))))
	return clamp(sim, 0, 100)
}

// StatusFor maps a similarity to the status of a matched word using the
// default thresholds.
func StatusFor(similarity int) model.Status {
	return statusFor(similarity, PartialThreshold)
}

func statusFor(similarity, partial int) model.Status {
	switch {
	case similarity >= CorrectThreshold:
		return model.StatusCorrect
	case similarity >= partial:
		return model.StatusPartial
	default:
		return model.StatusWrong
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
