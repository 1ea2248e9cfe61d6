package stats

import (
	"context"

	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Attempts       []model.AttemptAggregate
	WindowIDs      []int64
	MistakesAll    []model.MistakeCount
	MistakesWindow []model.MistakeCount
	Verses         []model.VerseAggregate
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, filter model.HistoryFilter) (Report, error) {
	attempts, err := st.ListAttempts(ctx, filter)
	if err != nil {
		return Report{}, err
	}

	allIDs := attemptIDs(attempts)
	windowIDs := lastAttemptIDs(attempts, filter.TrendWindow)
	mistakesAll, err := st.MistakeTotals(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	mistakesWindow, err := st.MistakeTotals(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Attempts:       attempts,
		WindowIDs:      windowIDs,
		MistakesAll:    mistakesAll,
		MistakesWindow: mistakesWindow,
		Verses:         AverageByVerse(attempts),
	}, nil
}

func attemptIDs(attempts []model.AttemptAggregate) []int64 {
	ids := make([]int64, len(attempts))
	for i, a := range attempts {
		ids[i] = a.AttemptID
	}
	return ids
}

func lastAttemptIDs(attempts []model.AttemptAggregate, window int) []int64 {
	if window <= 0 || len(attempts) <= window {
		return attemptIDs(attempts)
	}
	return attemptIDs(attempts[len(attempts)-window:])
}
