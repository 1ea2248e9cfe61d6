package stats

import (
	"sort"

	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/quran"
)

// WeakestVerses returns up to top verses ordered by lowest average score.
// A non-positive top returns all of them.
func WeakestVerses(verses []model.VerseAggregate, top int) []model.VerseAggregate {
	candidates := make([]model.VerseAggregate, len(verses))
	copy(candidates, verses)
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.AvgScore != b.AvgScore {
			return a.AvgScore < b.AvgScore
		}
		if a.Surah != b.Surah {
			return a.Surah < b.Surah
		}
		return a.Ayah < b.Ayah
	})
	if top > 0 && top < len(candidates) {
		candidates = candidates[:top]
	}
	return candidates
}

// WeakVerses selects the lowest-scoring verses as a set for the generator.
func WeakVerses(verses []model.VerseAggregate, top int) map[quran.Key]struct{} {
	weakSet := map[quran.Key]struct{}{}
	for _, v := range WeakestVerses(verses, top) {
		weakSet[quran.Key{Surah: v.Surah, Ayah: v.Ayah}] = struct{}{}
	}
	return weakSet
}

// AverageByVerse groups attempts by verse and averages their overall score,
// ordered by surah and ayah.
func AverageByVerse(attempts []model.AttemptAggregate) []model.VerseAggregate {
	index := map[quran.Key]int{}
	var out []model.VerseAggregate
	for _, a := range attempts {
		key := quran.Key{Surah: a.Surah, Ayah: a.Ayah}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, model.VerseAggregate{Surah: a.Surah, Ayah: a.Ayah})
		}
		out[i].Attempts++
		out[i].AvgScore += float64(a.OverallScore)
	}
	for i := range out {
		out[i].AvgScore /= float64(out[i].Attempts)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Surah != out[j].Surah {
			return out[i].Surah < out[j].Surah
		}
		return out[i].Ayah < out[j].Ayah
	})
	return out
}
