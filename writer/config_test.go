package writer

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TitlesPath != DefaultTitlesPath {
		t.Errorf("TitlesPath = %q", cfg.TitlesPath)
	}
	if cfg.PromptPath != DefaultPromptPath {
		t.Errorf("PromptPath = %q", cfg.PromptPath)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Pace() != 2*time.Second {
		t.Errorf("Pace = %v", cfg.Pace())
	}
	if cfg.LLM.Provider != "gemini" || cfg.LLM.Model != DefaultModel {
		t.Errorf("LLM defaults = %+v", cfg.LLM)
	}
	if cfg.LLM.APIKey != "test-key" {
		t.Errorf("APIKey not read from environment: %q", cfg.LLM.APIKey)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"titles_path": "queue.txt",
		"output_dir": "out",
		"min_backlinks": 10,
		"pace_seconds": 5,
		"llm": {"provider": "openai", "model": "gpt-4o"}
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TitlesPath != "queue.txt" || cfg.OutputDir != "out" {
		t.Errorf("paths = %q %q", cfg.TitlesPath, cfg.OutputDir)
	}
	if cfg.MinBacklinks != 10 || cfg.Pace() != 5*time.Second {
		t.Errorf("thresholds = %d %v", cfg.MinBacklinks, cfg.Pace())
	}
	if cfg.LLM.Provider != "openai" || cfg.LLM.APIKey != "sk-test" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	// Unset fields still get defaults.
	if cfg.PromptPath != DefaultPromptPath {
		t.Errorf("PromptPath = %q", cfg.PromptPath)
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
