package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tartil/internal/config"
	"github.com/verte-zerg/tartil/internal/historyui"
	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/stats"
	"github.com/verte-zerg/tartil/internal/store"
	"github.com/verte-zerg/tartil/internal/tajweed"
)

const recentAttempts = 5

var (
	historySurah       int
	historySince       string
	historyLast        int
	historyTrendWindow int
	historyTop         int
	historyTUI         bool
	historyColor       bool
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recitation history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historySurah, "surah", 0, "surah filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N attempts")
	cmd.Flags().IntVar(&historyTrendWindow, "trend-window", defaultTrendWindow, "moving average window")
	cmd.Flags().IntVar(&historyTop, "top", defaultWeakTop, "number of weak verses to list")
	cmd.Flags().BoolVar(&historyTUI, "tui", false, "browse history interactively")
	cmd.Flags().BoolVar(&historyColor, "color", false, "force colored output")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	filter, err := historyFilter(historySurah, historySince, historyLast, historyTrendWindow)
	if err != nil {
		return err
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

	if historyTUI {
		program := tea.NewProgram(historyui.NewModel(st, filter), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run history TUI: %w", err)
		}
		return nil
	}

	rep, err := stats.BuildReport(context.Background(), st, filter)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return writeHistory(out, rep, filter.TrendWindow, historyTop, stats.TerminalWidth(), stats.ShouldUseColor(out, historyColor))
}

func historyFilter(surah int, since string, last, window int) (model.HistoryFilter, error) {
	if surah < 0 || surah > 114 {
		return model.HistoryFilter{}, fmt.Errorf("--surah must be between 0 and 114")
	}
	if last < 0 {
		return model.HistoryFilter{}, fmt.Errorf("--last must be >= 0")
	}
	if window <= 0 {
		return model.HistoryFilter{}, fmt.Errorf("--trend-window must be > 0")
	}
	var sinceTime *time.Time
	if since != "" {
		parsed, err := time.ParseInLocation("2006-01-02", since, time.Local)
		if err != nil {
			return model.HistoryFilter{}, fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	return model.HistoryFilter{Surah: surah, Since: sinceTime, Last: last, TrendWindow: window}, nil
}

func writeHistory(w io.Writer, rep stats.Report, window, top, width int, useColor bool) error {
	if err := stats.RenderSummary(w, rep.Attempts); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if len(rep.Attempts) == 0 {
		return nil
	}
	if err := stats.RenderTrend(w, rep.Attempts, window, width, 0, useColor); err != nil {
		return fmt.Errorf("failed to write trend: %w", err)
	}
	if err := stats.RenderMistakeTable(w, rep.MistakesAll); err != nil {
		return fmt.Errorf("failed to write mistakes: %w", err)
	}
	if err := stats.RenderVerseTable(w, rep.Verses, top); err != nil {
		return fmt.Errorf("failed to write verses: %w", err)
	}
	if err := stats.RenderRecentAttempts(w, rep.Attempts, recentAttempts); err != nil {
		return fmt.Errorf("failed to write recent attempts: %w", err)
	}
	return nil
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List tajweed rules and their colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeRules(cmd.OutOrStdout(), stats.ShouldUseColor(os.Stdout, false))
		},
	}
}

func writeRules(w io.Writer, useColor bool) error {
	for _, r := range tajweed.Rules() {
		swatch := "  "
		if useColor {
			swatch = lipgloss.NewStyle().Background(lipgloss.Color(r.Info.Color)).Render("  ")
		}
		if _, err := fmt.Fprintf(w, "%s %-9s %s  %s\n", swatch, r.ID, r.Info.Color, r.Info.Description); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
