package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/verte-zerg/tartil/internal/config"
	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/quran"
	"github.com/verte-zerg/tartil/internal/recitation"
	"github.com/verte-zerg/tartil/internal/report"
	"github.com/verte-zerg/tartil/internal/store"
)

var (
	checkRef    string
	checkSpoken string
	checkSurah  int
	checkAyah   int
	checkFormat string
	checkSave   bool

	batchFormat string
	batchJobs   int
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Score one recitation against a reference verse",
		Args:  cobra.NoArgs,
		RunE:  runCheckCmd,
	}
	cmd.Flags().StringVar(&checkRef, "ref", "", "reference text")
	cmd.Flags().StringVar(&checkSpoken, "spoken", "", "recited text (read from stdin when empty)")
	cmd.Flags().IntVar(&checkSurah, "surah", 0, "reference surah (with --ayah)")
	cmd.Flags().IntVar(&checkAyah, "ayah", 0, "reference ayah (with --surah)")
	cmd.Flags().StringVar(&checkFormat, "format", string(report.FormatText), "output format: text, json or yaml")
	cmd.Flags().BoolVar(&checkSave, "save", false, "record the attempt in history")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := validateScoring(cfg.Scoring); err != nil {
		return err
	}
	format, err := report.ParseFormat(checkFormat)
	if err != nil {
		return err
	}

	verse, err := resolveReference(cfg.QuranPath, checkRef, checkSurah, checkAyah)
	if err != nil {
		return err
	}
	spoken := checkSpoken
	if spoken == "" {
		spoken, err = readSpoken(os.Stdin)
		if err != nil {
			return err
		}
	}

	startedAt := time.Now()
	res := newChecker(cfg.Scoring).Compare(verse.Text, spoken)
	if err := report.Write(cmd.OutOrStdout(), res, format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !checkSave {
		return nil
	}
	return saveAttempt(res, verse, spoken, startedAt, time.Now())
}

// resolveReference returns the verse named by ref or by surah and ayah.
func resolveReference(quranPath, ref string, surah, ayah int) (quran.Verse, error) {
	if strings.TrimSpace(ref) != "" {
		if surah != 0 || ayah != 0 {
			return quran.Verse{}, fmt.Errorf("use either --ref or --surah/--ayah, not both")
		}
		return quran.Verse{Text: ref}, nil
	}
	if surah <= 0 || ayah <= 0 {
		return quran.Verse{}, fmt.Errorf("--ref or both --surah and --ayah are required")
	}
	verses, err := loadVerses(quranPath)
	if err != nil {
		return quran.Verse{}, err
	}
	verse, ok := quran.NewIndex(verses).Lookup(surah, ayah)
	if !ok {
		return quran.Verse{}, fmt.Errorf("verse %d:%d not found in %s", surah, ayah, quranPath)
	}
	return verse, nil
}

func readSpoken(f *os.File) (string, error) {
	if term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("--spoken is required when stdin is a terminal")
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func saveAttempt(res model.RecitationResult, verse quran.Verse, spoken string, startedAt, endedAt time.Time) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	attempt, mistakes := model.AttemptFromResult(res, verse.Surah, verse.Ayah, verse.Text, spoken, startedAt, endedAt)
	if _, err := st.InsertAttempt(context.Background(), attempt, mistakes); err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	return nil
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Score tab-separated reference/recitation pairs",
		Long:  "Each non-empty line of FILE holds a reference text and a recited text separated by a tab. Lines starting with # are skipped. Use - to read stdin.",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatchCmd,
	}
	cmd.Flags().StringVar(&batchFormat, "format", string(report.FormatText), "output format: text, json or yaml")
	cmd.Flags().IntVar(&batchJobs, "jobs", runtime.NumCPU(), "number of parallel checks")
	return cmd
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := validateScoring(cfg.Scoring); err != nil {
		return err
	}
	format, err := report.ParseFormat(batchFormat)
	if err != nil {
		return err
	}
	if batchJobs <= 0 {
		return fmt.Errorf("--jobs must be > 0")
	}

	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open batch file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				// Best-effort close for read-only file.
				_ = cerr
			}
		}()
		in = f
	}
	items, err := parseBatch(in)
	if err != nil {
		return err
	}

	entries, err := checkBatch(context.Background(), newChecker(cfg.Scoring), items, batchJobs)
	if err != nil {
		return err
	}
	if err := report.WriteBatch(cmd.OutOrStdout(), entries, format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

type batchItem struct {
	line      int
	reference string
	spoken    string
}

func parseBatch(r io.Reader) ([]batchItem, error) {
	var items []batchItem
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		ref, spoken, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected reference<TAB>recitation", lineNo)
		}
		items = append(items, batchItem{line: lineNo, reference: ref, spoken: spoken})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch: %w", err)
	}
	return items, nil
}

// checkBatch scores items in parallel and returns entries in input order.
func checkBatch(ctx context.Context, checker *recitation.Checker, items []batchItem, jobs int) ([]report.Entry, error) {
	entries := make([]report.Entry, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries[i] = report.Entry{
				Label:  fmt.Sprintf("line %d", item.line),
				Result: checker.Compare(item.reference, item.spoken),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to check batch: %w", err)
	}
	return entries, nil
}
