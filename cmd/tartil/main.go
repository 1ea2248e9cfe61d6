// Package main provides the CLI entrypoint for tartil.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tartil/internal/config"
	"github.com/verte-zerg/tartil/internal/generator"
	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/quran"
	"github.com/verte-zerg/tartil/internal/recitation"
	"github.com/verte-zerg/tartil/internal/stats"
	"github.com/verte-zerg/tartil/internal/store"
	"github.com/verte-zerg/tartil/internal/tui"
)

const (
	defaultWeakTop     = 5
	defaultWeakFactor  = 3.0
	defaultWeakWindow  = 200
	defaultWeight      = 0.25
	defaultTrendWindow = 10
)

var (
	practiceQuran      string
	practiceSurah      int
	practiceFocusWeak  bool
	practiceWeakTop    int
	practiceWeakFactor float64
	practiceWeakWindow int

	scoringPartial      int
	scoringLetter       float64
	scoringHaraka       float64
	scoringMadd         float64
	scoringCompleteness float64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tartil",
		Short:         "Quran recitation trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&practiceQuran, "quran", config.DefaultQuranPath(), "verse text file (surah|ayah|text lines)")
	pf.IntVar(&scoringPartial, "partial-threshold", recitation.PartialThreshold, "lowest similarity counted as partial (0-100)")
	pf.Float64Var(&scoringLetter, "letter-weight", defaultWeight, "weight of the letter score")
	pf.Float64Var(&scoringHaraka, "haraka-weight", defaultWeight, "weight of the haraka score")
	pf.Float64Var(&scoringMadd, "madd-weight", defaultWeight, "weight of the madd score")
	pf.Float64Var(&scoringCompleteness, "completeness-weight", defaultWeight, "weight of the completeness score")

	rootCmd.Flags().IntVar(&practiceSurah, "surah", 0, "practice only this surah (0 = all)")
	rootCmd.Flags().BoolVar(&practiceFocusWeak, "focus-weak", false, "bias practice toward weak verses")
	rootCmd.Flags().IntVar(&practiceWeakTop, "weak-top", defaultWeakTop, "number of weak verses to focus on")
	rootCmd.Flags().Float64Var(&practiceWeakFactor, "weak-factor", defaultWeakFactor, "extra weight for weak verses")
	rootCmd.Flags().IntVar(&practiceWeakWindow, "weak-window", defaultWeakWindow, "number of recent attempts used to find weak verses")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	verses, err := loadVerses(cfg.QuranPath)
	if err != nil {
		return err
	}
	if cfg.Surah > 0 {
		verses = quran.FilterSurah(verses, cfg.Surah)
		if len(verses) == 0 {
			return fmt.Errorf("no verses for surah %d in %s", cfg.Surah, cfg.QuranPath)
		}
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	weakSet := map[quran.Key]struct{}{}
	weakNoticePrinted := false
	if cfg.FocusWeak {
		aggs, err := st.VerseAverages(context.Background(), cfg.WeakWindow)
		if err != nil {
			logErrf("failed to load verse averages: %v\n", err)
		} else {
			weakSet = stats.WeakVerses(aggs, cfg.WeakTop)
			if len(weakSet) == 0 {
				logErrln("no history available for weak-verse focus yet; picking verses uniformly")
				weakNoticePrinted = true
			}
		}
	}

	m := tui.NewModel(cfg, st, generator.New(), newChecker(cfg.Scoring), verses, weakSet, weakNoticePrinted)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadSettings merges the config file into flags the user did not set.
func loadSettings(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "quran", &practiceQuran, fileCfg.Practice.Quran)
	applyIntConfig(cmd, "surah", &practiceSurah, fileCfg.Practice.Surah)
	applyBoolConfig(cmd, "focus-weak", &practiceFocusWeak, fileCfg.Practice.FocusWeak)
	applyIntConfig(cmd, "weak-top", &practiceWeakTop, fileCfg.Practice.WeakTop)
	applyFloatConfig(cmd, "weak-factor", &practiceWeakFactor, fileCfg.Practice.WeakFactor)
	applyIntConfig(cmd, "weak-window", &practiceWeakWindow, fileCfg.Practice.WeakWindow)
	applyIntConfig(cmd, "partial-threshold", &scoringPartial, fileCfg.Scoring.PartialThreshold)
	applyFloatConfig(cmd, "letter-weight", &scoringLetter, fileCfg.Scoring.LetterWeight)
	applyFloatConfig(cmd, "haraka-weight", &scoringHaraka, fileCfg.Scoring.HarakaWeight)
	applyFloatConfig(cmd, "madd-weight", &scoringMadd, fileCfg.Scoring.MaddWeight)
	applyFloatConfig(cmd, "completeness-weight", &scoringCompleteness, fileCfg.Scoring.CompletenessWeight)

	return model.Config{
		QuranPath:  config.ExpandHome(practiceQuran),
		Surah:      practiceSurah,
		FocusWeak:  practiceFocusWeak,
		WeakTop:    practiceWeakTop,
		WeakFactor: practiceWeakFactor,
		WeakWindow: practiceWeakWindow,
		Scoring: model.ScoringConfig{
			PartialThreshold:   scoringPartial,
			LetterWeight:       scoringLetter,
			HarakaWeight:       scoringHaraka,
			MaddWeight:         scoringMadd,
			CompletenessWeight: scoringCompleteness,
		},
	}, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Surah < 0 || cfg.Surah > 114 {
		return fmt.Errorf("--surah must be between 0 and 114")
	}
	if cfg.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if cfg.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	if cfg.WeakWindow < 0 {
		return fmt.Errorf("--weak-window must be >= 0")
	}
	return validateScoring(cfg.Scoring)
}

func validateScoring(s model.ScoringConfig) error {
	if s.PartialThreshold < 0 || s.PartialThreshold > recitation.CorrectThreshold {
		return fmt.Errorf("--partial-threshold must be between 0 and %d", recitation.CorrectThreshold)
	}
	for name, w := range map[string]float64{
		"letter-weight":       s.LetterWeight,
		"haraka-weight":       s.HarakaWeight,
		"madd-weight":         s.MaddWeight,
		"completeness-weight": s.CompletenessWeight,
	} {
		if w < 0 {
			return fmt.Errorf("--%s must be >= 0", name)
		}
	}
	return nil
}

func newChecker(s model.ScoringConfig) *recitation.Checker {
	return recitation.New(
		recitation.WithPartialThreshold(s.PartialThreshold),
		recitation.WithWeights(recitation.Weights{
			Letter:       s.LetterWeight,
			Haraka:       s.HarakaWeight,
			Madd:         s.MaddWeight,
			Completeness: s.CompletenessWeight,
		}),
	)
}

func loadVerses(path string) ([]quran.Verse, error) {
	verses, err := quran.LoadVerses(path)
	if err != nil {
		lines := []string{
			fmt.Sprintf("failed to load verses: %v", err),
			fmt.Sprintf("expected verse text at: %s", path),
			"Provide one with --quran or set quran in the config file (tartil config)",
		}
		return nil, fmt.Errorf("%s", strings.Join(lines, "\n"))
	}
	return verses, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Lookup(name) == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Lookup(name) == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil || cmd.Flags().Lookup(name) == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Lookup(name) == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
