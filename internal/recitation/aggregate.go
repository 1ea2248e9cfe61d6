package recitation

import (
	"math"

	"github.com/verte-zerg/tartil/internal/model"
)

// Weights controls how the four sub-scores are blended into the overall
// score. Weights are relative; they need not sum to one.
type Weights struct {
	Letter       float64
	Haraka       float64
	Madd         float64
	Completeness float64
}

// DefaultWeights gives every sub-score an equal quarter.
func DefaultWeights() Weights {
	return Weights{Letter: 0.25, Haraka: 0.25, Madd: 0.25, Completeness: 0.25}
}

func (w Weights) valid() bool {
	if w.Letter < 0 || w.Haraka < 0 || w.Madd < 0 || w.Completeness < 0 {
		return false
	}
	return w.Letter+w.Haraka+w.Madd+w.Completeness > 0
}

// Grade boundaries on the overall score.
const (
	ExcellentScore = 85
	GoodScore      = 60
)

// GradeFor returns the English and Arabic grade of an overall score.
func GradeFor(score int) (string, string) {
	switch {
	case score >= ExcellentScore:
		return "Excellent", "ممتاز"
	case score >= GoodScore:
		return "Good", "جيد"
	default:
		return "Needs Practice", "يحتاج تدريب"
	}
}

// Aggregate folds word results into counts, sub-scores and a grade. Extra
// words only count toward ExtraCount. Invalid weights fall back to
// DefaultWeights.
func Aggregate(words []model.WordResult, w Weights) model.RecitationResult {
	if !w.valid() {
		w = DefaultWeights()
	}
	res := model.RecitationResult{WordResults: words}

	matched, similaritySum := 0, 0
	harakaClean, maddClean := 0, 0
	for _, word := range words {
		switch word.Status {
		case model.StatusCorrect:
			res.CorrectCount++
		case model.StatusPartial:
			res.PartialCount++
		case model.StatusWrong:
			res.WrongCount++
		case model.StatusMissed:
			res.MissedCount++
			continue
		case model.StatusExtra:
			res.ExtraCount++
			continue
		}
		matched++
		similaritySum += word.Similarity
		if !hasMistake(word.Mistakes, model.MistakeHaraka) {
			harakaClean++
		}
		if !hasMistake(word.Mistakes, model.MistakeMadd) {
			maddClean++
		}
	}
	res.TotalOriginalWords = res.CorrectCount + res.PartialCount + res.WrongCount + res.MissedCount

	res.CompletenessScore = percent(res.CorrectCount+res.PartialCount, res.TotalOriginalWords, 0)
	res.HarakaScore = percent(harakaClean, matched, 100)
	res.MaddScore = percent(maddClean, matched, 100)
	if matched > 0 {
		res.LetterScore = round(float64(similaritySum) / float64(matched))
	}

	total := w.Letter + w.Haraka + w.Madd + w.Completeness
	overall := (w.Letter*float64(res.LetterScore) +
		w.Haraka*float64(res.HarakaScore) +
		w.Madd*float64(res.MaddScore) +
		w.Completeness*float64(res.CompletenessScore)) / total
	res.OverallScore = clamp(round(overall), 0, 100)
	res.Grade, res.GradeArabic = GradeFor(res.OverallScore)
	return res
}

// percent returns round(100*part/whole), or empty when whole is zero.
func percent(part, whole, empty int) int {
	if whole == 0 {
		return empty
	}
	return round(100 * float64(part) / float64(whole))
}

func round(v float64) int {
	return int(math.Round(v))
}

func hasMistake(mistakes []model.Mistake, t model.MistakeType) bool {
	for _, m := range mistakes {
		if m.Type == t {
			return true
		}
	}
	return false
}
