// Package config loads the TOML configuration file and resolves XDG paths.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Pointer fields stay nil
// when a key is absent so flags and defaults can tell "unset" apart.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Scoring  ScoringConfig  `toml:"scoring"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Quran      *string  `toml:"quran"`
	Surah      *int     `toml:"surah"`
	FocusWeak  *bool    `toml:"focus-weak"`
	WeakTop    *int     `toml:"weak-top"`
	WeakFactor *float64 `toml:"weak-factor"`
	WeakWindow *int     `toml:"weak-window"`
}

// ScoringConfig maps scoring thresholds and weights.
type ScoringConfig struct {
	PartialThreshold   *int     `toml:"partial-threshold"`
	LetterWeight       *float64 `toml:"letter-weight"`
	HarakaWeight       *float64 `toml:"haraka-weight"`
	MaddWeight         *float64 `toml:"madd-weight"`
	CompletenessWeight *float64 `toml:"completeness-weight"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Template is written by `tartil config` when no file exists yet.
const Template = `# tartil configuration

[practice]
# Tanzil-style text file with one "surah|ayah|text" line per verse.
# quran = "~/.config/tartil/quran.txt"
# surah = 1
# focus-weak = false
# weak-top = 5
# weak-factor = 3.0
# weak-window = 200

[scoring]
# partial-threshold = 70
# letter-weight = 0.25
# haraka-weight = 0.25
# madd-weight = 0.25
# completeness-weight = 0.25
`
