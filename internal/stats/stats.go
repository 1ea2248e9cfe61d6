// Package stats summarizes recitation history and renders it as text.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/recitation"
)

// Summary aggregates a list of attempts.
type Summary struct {
	Attempts        int
	AvgScore        float64
	BestScore       int
	AvgLetter       float64
	AvgHaraka       float64
	AvgMadd         float64
	AvgCompleteness float64
	PracticeMs      int64
}

// Summarize averages scores over attempts.
func Summarize(attempts []model.AttemptAggregate) Summary {
	s := Summary{Attempts: len(attempts)}
	if len(attempts) == 0 {
		return s
	}
	var overall, letter, haraka, madd, completeness int
	for _, a := range attempts {
		overall += a.OverallScore
		letter += a.LetterScore
		haraka += a.HarakaScore
		madd += a.MaddScore
		completeness += a.CompletenessScore
		s.PracticeMs += a.DurationMs
		if a.OverallScore > s.BestScore {
			s.BestScore = a.OverallScore
		}
	}
	n := float64(len(attempts))
	s.AvgScore = float64(overall) / n
	s.AvgLetter = float64(letter) / n
	s.AvgHaraka = float64(haraka) / n
	s.AvgMadd = float64(madd) / n
	s.AvgCompleteness = float64(completeness) / n
	return s
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// RenderSummary prints a summary of attempts.
func RenderSummary(w io.Writer, attempts []model.AttemptAggregate) error {
	if len(attempts) == 0 {
		_, err := fmt.Fprintln(w, "No attempts found.")
		return err
	}
	s := Summarize(attempts)
	lines := []string{
		"Summary",
		fmt.Sprintf("Attempts: %d", s.Attempts),
		fmt.Sprintf("Avg Score: %.1f", s.AvgScore),
		fmt.Sprintf("Best Score: %d", s.BestScore),
		fmt.Sprintf("Avg Letters: %.1f  Haraka: %.1f  Madd: %.1f  Completeness: %.1f",
			s.AvgLetter, s.AvgHaraka, s.AvgMadd, s.AvgCompleteness),
		fmt.Sprintf("Practice Time: %s", formatDuration(s.PracticeMs)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderTrend plots the moving averages of the overall score and the four
// sub-scores, sized to fit totalWidth columns.
func RenderTrend(w io.Writer, attempts []model.AttemptAggregate, window, totalWidth, height int, useColor bool) error {
	if len(attempts) == 0 {
		return nil
	}
	overall := make([]float64, len(attempts))
	letter := make([]float64, len(attempts))
	haraka := make([]float64, len(attempts))
	madd := make([]float64, len(attempts))
	completeness := make([]float64, len(attempts))
	for i, a := range attempts {
		overall[i] = float64(a.OverallScore)
		letter[i] = float64(a.LetterScore)
		haraka[i] = float64(a.HarakaScore)
		madd[i] = float64(a.MaddScore)
		completeness[i] = float64(a.CompletenessScore)
	}
	window = max(window, 1)
	title := fmt.Sprintf("Score Trend (moving average, window %d)", window)
	return PlotScores(w, title, []Series{
		{Name: "Overall", Values: MovingAverage(overall, window)},
		{Name: "Letters", Values: MovingAverage(letter, window)},
		{Name: "Haraka", Values: MovingAverage(haraka, window)},
		{Name: "Madd", Values: MovingAverage(madd, window)},
		{Name: "Complete", Values: MovingAverage(completeness, window)},
	}, PlotWidthFor(totalWidth), height, useColor)
}

// RenderMistakeTable prints mistake totals by type.
func RenderMistakeTable(w io.Writer, totals []model.MistakeCount) error {
	if len(totals) == 0 {
		_, err := fmt.Fprintln(w, "No mistakes recorded.")
		return err
	}
	sum := 0
	for _, mc := range totals {
		sum += mc.Count
	}
	if _, err := fmt.Fprintln(w, "Mistakes"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(totals))
	for _, mc := range totals {
		rows = append(rows, []string{
			string(mc.Type),
			fmt.Sprintf("%d", mc.Count),
			fmt.Sprintf("%.1f%%", float64(mc.Count)/float64(sum)*100),
		})
	}
	return writeTable(w, []string{"Type", "Count", "Share"}, rows, map[int]bool{1: true, 2: true})
}

// RenderVerseTable prints per-verse averages, weakest first.
func RenderVerseTable(w io.Writer, verses []model.VerseAggregate, top int) error {
	weakest := WeakestVerses(verses, top)
	if len(weakest) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Weakest Verses"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(weakest))
	for _, v := range weakest {
		rows = append(rows, []string{
			fmt.Sprintf("%d:%d", v.Surah, v.Ayah),
			fmt.Sprintf("%.1f", v.AvgScore),
			fmt.Sprintf("%d", v.Attempts),
		})
	}
	return writeTable(w, []string{"Verse", "Avg Score", "Attempts"}, rows, map[int]bool{1: true, 2: true})
}

// RenderRecentAttempts prints the last n attempts, newest first, with the
// grade in English and Arabic.
func RenderRecentAttempts(w io.Writer, attempts []model.AttemptAggregate, n int) error {
	if len(attempts) == 0 || n <= 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Recent Attempts"); err != nil {
		return err
	}
	rows := make([][]string, 0, min(n, len(attempts)))
	for i := len(attempts) - 1; i >= 0 && len(rows) < n; i-- {
		a := attempts[i]
		grade, gradeArabic := recitation.GradeFor(a.OverallScore)
		rows = append(rows, []string{
			a.EndedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d:%d", a.Surah, a.Ayah),
			fmt.Sprintf("%d", a.OverallScore),
			grade,
			gradeArabic,
		})
	}
	return writeTable(w, []string{"Date", "Verse", "Score", "Grade", "التقدير"}, rows, map[int]bool{2: true})
}

func writeTable(w io.Writer, headers []string, rows [][]string, rightAlign map[int]bool) error {
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func formatDuration(ms int64) string {
	totalSec := ms / 1000
	if totalSec < 60 {
		return fmt.Sprintf("%ds", totalSec)
	}
	if totalSec < 3600 {
		return fmt.Sprintf("%dm%02ds", totalSec/60, totalSec%60)
	}
	return fmt.Sprintf("%dh%02dm", totalSec/3600, (totalSec%3600)/60)
}
