// Package report writes a recitation result as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tartil/internal/model"
	"github.com/verte-zerg/tartil/internal/recitation"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Write encodes res to w.
func Write(w io.Writer, res model.RecitationResult, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
		return nil
	case FormatText, "":
		return writeText(w, res)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeText(w io.Writer, res model.RecitationResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d (%s / %s)\n", res.OverallScore, res.Grade, res.GradeArabic)
	fmt.Fprintf(&b, "Letters: %d  Haraka: %d  Madd: %d  Completeness: %d\n",
		res.LetterScore, res.HarakaScore, res.MaddScore, res.CompletenessScore)
	fmt.Fprintf(&b, "Words: %d correct, %d partial, %d wrong, %d missed of %d; %d extra\n\n",
		res.CorrectCount, res.PartialCount, res.WrongCount, res.MissedCount,
		res.TotalOriginalWords, res.ExtraCount)

	for _, wr := range res.WordResults {
		word := wr.Original
		if word == "" {
			word = wr.Spoken
		}
		fmt.Fprintf(&b, "%s %s", recitation.StatusIcon(wr.Status), word)
		switch wr.Status {
		case model.StatusPartial, model.StatusWrong:
			fmt.Fprintf(&b, " (heard %s, %d%%)", wr.Spoken, wr.Similarity)
		case model.StatusMissed, model.StatusExtra:
			fmt.Fprintf(&b, " (%s)", wr.Status)
		}
		b.WriteByte('\n')
		for _, m := range wr.Mistakes {
			fmt.Fprintf(&b, "    - %s: %s\n", m.Type, m.Description)
		}
		if rules := ruleNames(wr.Tajweed.Annotations); rules != "" {
			fmt.Fprintf(&b, "    tajweed: %s\n", rules)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ruleNames lists distinct rule names in first-seen order.
func ruleNames(annotations []model.TajweedAnnotation) string {
	seen := map[string]bool{}
	var names []string
	for _, a := range annotations {
		if !seen[a.Rule] {
			seen[a.Rule] = true
			names = append(names, a.Rule)
		}
	}
	return strings.Join(names, ", ")
}

// Entry is one labelled result of a batch run.
type Entry struct {
	Label  string                 `json:"label" yaml:"label"`
	Result model.RecitationResult `json:"result" yaml:"result"`
}

// WriteBatch encodes entries in order. Text output separates entries with a
// "== label" heading.
func WriteBatch(w io.Writer, entries []Entry, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
		return nil
	case FormatText, "":
		for i, e := range entries {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "== %s\n", e.Label); err != nil {
				return err
			}
			if err := writeText(w, e.Result); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}
