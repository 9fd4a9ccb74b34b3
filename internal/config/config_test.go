package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultModel != DefaultConfig().DefaultModel {
		t.Fatalf("DefaultModel = %q, want %q", cfg.DefaultModel, DefaultConfig().DefaultModel)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"default_model": "claude-3-5-haiku-20241022"}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultModel != "claude-3-5-haiku-20241022" {
		t.Fatalf("DefaultModel = %q, want %q", cfg.DefaultModel, "claude-3-5-haiku-20241022")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{not json}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_EnvKeyWins(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"api_key": "sk-ant-file"}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-env")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "sk-ant-env" {
		t.Fatalf("APIKey = %q, want env value", cfg.APIKey)
	}
}

func TestMerge_DisabledTools(t *testing.T) {
	base := &Config{DisabledTools: []string{"library_import", " "}}
	overlay := &Config{DisabledTools: []string{"library_import", "prompt_delete"}}

	merged := Merge(base, overlay)
	if len(merged.DisabledTools) != 2 {
		t.Fatalf("DisabledTools = %v, want 2 deduplicated entries", merged.DisabledTools)
	}
}

func TestMerge_ScalarPrecedence(t *testing.T) {
	base := DefaultConfig()
	overlay := &Config{ExportDir: "/tmp/exports"}

	merged := Merge(base, overlay)
	if merged.ExportDir != "/tmp/exports" {
		t.Fatalf("ExportDir = %q, want overlay value", merged.ExportDir)
	}
	if merged.DefaultModel != base.DefaultModel {
		t.Fatalf("DefaultModel = %q, want base default", merged.DefaultModel)
	}
}
