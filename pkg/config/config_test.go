package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Match.TypoLevel != 0 {
		t.Errorf("default typo_level = %d, want 0 (scaled)", cfg.Match.TypoLevel)
	}
	if cfg.Match.ShrinkBound != 1 || cfg.Match.ExpandBound != 4 {
		t.Errorf("default bounds = (%d, %d), want (1, 4)", cfg.Match.ShrinkBound, cfg.Match.ExpandBound)
	}
	if !cfg.Match.AllCompletions {
		t.Error("all_completions should default to true")
	}
}

// typo_level 0 keeps the sqrt policy, anything above pins a fixed budget
func TestMatchOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.MatchOptions()
	budget, err := opts.Level.Budget(6)
	if err != nil {
		t.Fatal(err)
	}
	if budget != 3 {
		t.Errorf("scaled Budget(6) = %d, want 3", budget)
	}

	cfg.Match.TypoLevel = 2
	cfg.Match.ShrinkBound = 0
	cfg.Match.AllCompletions = false
	opts = cfg.MatchOptions()
	budget, err = opts.Level.Budget(40)
	if err != nil {
		t.Fatal(err)
	}
	if budget != 2 {
		t.Errorf("fixed Budget(40) = %d, want 2", budget)
	}
	if opts.ShrinkBound != 0 || opts.AllCompletions {
		t.Errorf("options not mapped from config: %+v", opts)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Match.TypoLevel = 3
	cfg.Match.ExpandBound = 2
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Match.TypoLevel != 3 || loaded.Match.ExpandBound != 2 {
		t.Errorf("roundtrip lost values: %+v", loaded.Match)
	}
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Match.ExpandBound != 4 {
		t.Errorf("created config is not the default: %+v", cfg.Match)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

// a half-broken file keeps its valid sections
func TestPartialParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[match]\ntypo_level = 2\nshrink_bound = \"oops\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Match.TypoLevel != 2 {
		t.Errorf("valid value lost in recovery: %+v", cfg.Match)
	}
	if cfg.Match.ShrinkBound != 1 || cfg.Match.ExpandBound != 4 {
		t.Errorf("defaults lost in recovery: %+v", cfg.Match)
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	level := 2
	all := false
	if err := cfg.Update(path, &level, nil, nil, &all); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if cfg.Match.TypoLevel != 2 || cfg.Match.AllCompletions {
		t.Errorf("Update did not apply: %+v", cfg.Match)
	}
	if cfg.Match.ShrinkBound != 1 {
		t.Errorf("nil field was modified: %+v", cfg.Match)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Match.TypoLevel != 2 {
		t.Errorf("Update was not persisted: %+v", loaded.Match)
	}
}
