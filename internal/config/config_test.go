package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg.Practice.Quran != nil || cfg.Scoring.PartialThreshold != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[practice]
quran = "/tmp/quran.txt"
surah = 112
focus-weak = true

[scoring]
partial-threshold = 60
completeness-weight = 0.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Practice.Quran == nil || *cfg.Practice.Quran != "/tmp/quran.txt" {
		t.Fatalf("expected quran path, got %+v", cfg.Practice.Quran)
	}
	if cfg.Practice.Surah == nil || *cfg.Practice.Surah != 112 {
		t.Fatalf("expected surah 112")
	}
	if cfg.Practice.FocusWeak == nil || !*cfg.Practice.FocusWeak {
		t.Fatalf("expected focus-weak true")
	}
	if cfg.Scoring.PartialThreshold == nil || *cfg.Scoring.PartialThreshold != 60 {
		t.Fatalf("expected partial threshold 60")
	}
	if cfg.Scoring.CompletenessWeight == nil || *cfg.Scoring.CompletenessWeight != 0.5 {
		t.Fatalf("expected completeness weight 0.5")
	}
	if cfg.Scoring.LetterWeight != nil {
		t.Fatalf("expected unset letter weight")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice]\nlang = \"en\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "practice.lang") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Fatalf("expected template to decode, got %v", err)
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "tartil", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "tartil", "tartil.db") {
		t.Fatalf("unexpected db path %s", got)
	}
	if got := DefaultQuranPath(); got != filepath.Join("/cfg", "tartil", "quran.txt") {
		t.Fatalf("unexpected quran path %s", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Fatalf("expected absolute path unchanged, got %s", got)
	}
}
