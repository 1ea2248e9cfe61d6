// Package store handles SQLite persistence of recitation attempts.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tartil/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width so stored timestamps sort as text in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// Store wraps SQLite access for attempt history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			surah INTEGER NOT NULL,
			ayah INTEGER NOT NULL,
			reference_text TEXT NOT NULL,
			spoken_text TEXT NOT NULL,
			overall_score INTEGER NOT NULL,
			grade TEXT NOT NULL,
			correct_count INTEGER NOT NULL,
			partial_count INTEGER NOT NULL,
			wrong_count INTEGER NOT NULL,
			missed_count INTEGER NOT NULL,
			extra_count INTEGER NOT NULL,
			total_words INTEGER NOT NULL,
			letter_score INTEGER NOT NULL,
			madd_score INTEGER NOT NULL,
			haraka_score INTEGER NOT NULL,
			completeness_score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS attempt_mistakes (
			attempt_id INTEGER NOT NULL,
			type TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (attempt_id, type)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_ended_at ON attempts(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_verse ON attempts(surah, ayah);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAttempt stores a completed attempt and its mistake tally.
func (s *Store) InsertAttempt(ctx context.Context, a model.Attempt, mistakes []model.MistakeCount) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO attempts (started_at, ended_at, surah, ayah, reference_text, spoken_text, overall_score, grade,
			correct_count, partial_count, wrong_count, missed_count, extra_count, total_words,
			letter_score, madd_score, haraka_score, completeness_score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		formatTime(a.StartedAt),
		formatTime(a.EndedAt),
		a.Surah,
		a.Ayah,
		a.ReferenceText,
		a.SpokenText,
		a.OverallScore,
		a.Grade,
		a.CorrectCount,
		a.PartialCount,
		a.WrongCount,
		a.MissedCount,
		a.ExtraCount,
		a.TotalWords,
		a.LetterScore,
		a.MaddScore,
		a.HarakaScore,
		a.CompletenessScore,
		a.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(mistakes) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO attempt_mistakes (attempt_id, type, count) VALUES (?, ?, ?)`)
		if perr != nil {
			err = perr
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, mc := range mistakes {
			if _, err = stmt.ExecContext(ctx, id, string(mc.Type), mc.Count); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListAttempts returns attempts matching filter, oldest first. A positive
// Last keeps only the most recent attempts.
func (s *Store) ListAttempts(ctx context.Context, filter model.HistoryFilter) ([]model.AttemptAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Surah > 0 {
		clauses = append(clauses, "surah = ?")
		args = append(args, filter.Surah)
	}
	if filter.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, formatTime(*filter.Since))
	}
	limit := -1
	if filter.Last > 0 {
		limit = filter.Last
	}
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT * FROM (
			SELECT id, ended_at, surah, ayah, overall_score, letter_score, madd_score, haraka_score, completeness_score, duration_ms
			FROM attempts
			WHERE %s
			ORDER BY ended_at DESC, id DESC
			LIMIT ?
		) ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var attempts []model.AttemptAggregate
	for rows.Next() {
		var agg model.AttemptAggregate
		var endedAt string
		if err := rows.Scan(&agg.AttemptID, &endedAt, &agg.Surah, &agg.Ayah, &agg.OverallScore,
			&agg.LetterScore, &agg.MaddScore, &agg.HarakaScore, &agg.CompletenessScore, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		attempts = append(attempts, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attempts, nil
}

// MistakeTotals sums mistake counts across attempts, most frequent first.
func (s *Store) MistakeTotals(ctx context.Context, attemptIDs []int64) ([]model.MistakeCount, error) {
	if len(attemptIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(attemptIDs))
	args := make([]any, len(attemptIDs))
	for i, id := range attemptIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT type, SUM(count) AS total
		FROM attempt_mistakes
		WHERE attempt_id IN (%s)
		GROUP BY type
		ORDER BY total DESC, type ASC`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.MistakeCount
	for rows.Next() {
		var mc model.MistakeCount
		var typ string
		if err := rows.Scan(&typ, &mc.Count); err != nil {
			return nil, err
		}
		mc.Type = model.MistakeType(typ)
		result = append(result, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// VerseAverages averages the overall score per verse over the most recent
// window attempts.
func (s *Store) VerseAverages(ctx context.Context, window int) ([]model.VerseAggregate, error) {
	if window <= 0 {
		return nil, nil
	}
	query := `WITH recent AS (
		SELECT surah, ayah, overall_score FROM attempts
		ORDER BY ended_at DESC, id DESC
		LIMIT ?
	)
	SELECT surah, ayah, COUNT(*) AS attempts, AVG(overall_score) AS avg_score
	FROM recent
	GROUP BY surah, ayah
	ORDER BY surah, ayah`

	rows, err := s.db.QueryContext(ctx, query, window)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.VerseAggregate
	for rows.Next() {
		var agg model.VerseAggregate
		if err := rows.Scan(&agg.Surah, &agg.Ayah, &agg.Attempts, &agg.AvgScore); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
