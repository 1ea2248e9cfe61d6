// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	QuranPath  string
	Surah      int
	FocusWeak  bool
	WeakTop    int
	WeakFactor float64
	WeakWindow int
	Scoring    ScoringConfig
}

// ScoringConfig holds the tunable scoring constants.
type ScoringConfig struct {
	PartialThreshold   int
	LetterWeight       float64
	HarakaWeight       float64
	MaddWeight         float64
	CompletenessWeight float64
}

// HistoryFilter defines filters and options for history output.
type HistoryFilter struct {
	Surah       int
	Since       *time.Time
	Last        int
	TrendWindow int
}

// Attempt captures a completed recitation attempt.
type Attempt struct {
	StartedAt         time.Time
	EndedAt           time.Time
	Surah             int
	Ayah              int
	ReferenceText     string
	SpokenText        string
	OverallScore      int
	Grade             string
	CorrectCount      int
	PartialCount      int
	WrongCount        int
	MissedCount       int
	ExtraCount        int
	TotalWords        int
	LetterScore       int
	MaddScore         int
	HarakaScore       int
	CompletenessScore int
	DurationMs        int64
}

// MistakeCount stores how often a mistake type occurred in one attempt.
type MistakeCount struct {
	Type  MistakeType
	Count int
}

// AttemptAggregate summarizes an attempt for reporting.
type AttemptAggregate struct {
	AttemptID         int64
	EndedAt           time.Time
	Surah             int
	Ayah              int
	OverallScore      int
	LetterScore       int
	MaddScore         int
	HarakaScore       int
	CompletenessScore int
	DurationMs        int64
}

// VerseAggregate averages recent attempts of one verse.
type VerseAggregate struct {
	Surah    int
	Ayah     int
	Attempts int
	AvgScore float64
}

// AttemptFromResult builds the history summary for a result. The mistake
// tally is keyed by type in first-seen order.
func AttemptFromResult(res RecitationResult, surah, ayah int, reference, spoken string, startedAt, endedAt time.Time) (Attempt, []MistakeCount) {
	attempt := Attempt{
		StartedAt:         startedAt,
		EndedAt:           endedAt,
		Surah:             surah,
		Ayah:              ayah,
		ReferenceText:     reference,
		SpokenText:        spoken,
		OverallScore:      res.OverallScore,
		Grade:             res.Grade,
		CorrectCount:      res.CorrectCount,
		PartialCount:      res.PartialCount,
		WrongCount:        res.WrongCount,
		MissedCount:       res.MissedCount,
		ExtraCount:        res.ExtraCount,
		TotalWords:        res.TotalOriginalWords,
		LetterScore:       res.LetterScore,
		MaddScore:         res.MaddScore,
		HarakaScore:       res.HarakaScore,
		CompletenessScore: res.CompletenessScore,
		DurationMs:        endedAt.Sub(startedAt).Milliseconds(),
	}

	var counts []MistakeCount
	index := map[MistakeType]int{}
	for _, wr := range res.WordResults {
		for _, m := range wr.Mistakes {
			idx, ok := index[m.Type]
			if !ok {
				idx = len(counts)
				index[m.Type] = idx
				counts = append(counts, MistakeCount{Type: m.Type})
			}
			counts[idx].Count++
		}
	}
	return attempt, counts
}
