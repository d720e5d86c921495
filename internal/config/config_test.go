package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"size too small", func(c *Config) { c.Board.Size = 1 }, false},
		{"size too big", func(c *Config) { c.Board.Size = 9 }, false},
		{"size 8", func(c *Config) { c.Board.Size = 8 }, true},
		{"no start tiles", func(c *Config) { c.Board.StartTiles = 0 }, false},
		{"start tiles fill board", func(c *Config) { c.Board.Size = 2; c.Board.StartTiles = 4 }, true},
		{"start tiles overflow", func(c *Config) { c.Board.Size = 2; c.Board.StartTiles = 5 }, false},
		{"negative probability", func(c *Config) { c.Board.Spawn4Probability = -0.1 }, false},
		{"never four", func(c *Config) { c.Board.Spawn4Probability = 0 }, false},
		{"probability above one", func(c *Config) { c.Board.Spawn4Probability = 1.5 }, false},
		{"always four", func(c *Config) { c.Board.Spawn4Probability = 1 }, true},
		{"zero threshold", func(c *Config) { c.Input.SwipeThreshold = 0 }, false},
		{"zero score limit", func(c *Config) { c.Scores.Limit = 0 }, false},
		{"huge score limit", func(c *Config) { c.Scores.Limit = 101 }, false},
		{"zero tick rate", func(c *Config) { c.Display.TickRate = 0 }, false},
		{"huge tick rate", func(c *Config) { c.Display.TickRate = 500 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  size: 5\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Board.StartTiles != 2 || cfg.Scores.Limit != DefaultScoreLimit {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  size: 3\n  spawn4_probability: 0.5\nscores:\n  limit: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Board.Size != 3 || cfg.Board.Spawn4Probability != 0.5 || cfg.Scores.Limit != 10 {
		t.Errorf("Load returned %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load with malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load with out-of-range size error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadFirstSearchOrder(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	second := filepath.Join(dir, "second.yaml")
	if err := os.WriteFile(broken, []byte("board:\n  size: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("board:\n  size: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadFirst(filepath.Join(dir, "missing.yaml"), broken, second)
	if cfg.Board.Size != 6 {
		t.Errorf("Board.Size = %d, want 6 from the first valid file", cfg.Board.Size)
	}

	cfg = loadFirst("", filepath.Join(dir, "missing.yaml"))
	if cfg != Default() {
		t.Errorf("fallback config = %+v, want defaults", cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected float64
	}{
		{DifficultyEasy, 0.05},
		{DifficultyNormal, 0.10},
		{DifficultyHard, 0.25},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Board.Spawn4Probability != tt.expected {
				t.Errorf("Spawn4Probability = %v, want %v", cfg.Board.Spawn4Probability, tt.expected)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "Normal", " HARD "} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; want normal", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("SLIDE2048_SSH_ADDR", ":2222")
	t.Setenv("SLIDE2048_IDLE_TIMEOUT", "5m")
	t.Setenv("SLIDE2048_LOG_LEVEL", "debug")

	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatalf("LoadServerConfig failed: %v", err)
	}
	if cfg.SSHAddr != ":2222" {
		t.Errorf("SSHAddr = %q, want :2222", cfg.SSHAddr)
	}
	if cfg.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.IdleTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.HTTPAddr != ":8048" {
		t.Errorf("HTTPAddr default = %q, want :8048", cfg.HTTPAddr)
	}
}

func TestLoadServerConfigBadDuration(t *testing.T) {
	t.Setenv("SLIDE2048_IDLE_TIMEOUT", "soon")
	if _, err := LoadServerConfig(); err == nil {
		t.Error("LoadServerConfig should reject an unparseable duration")
	}
}
