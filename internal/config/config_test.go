package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Default()
	if cfg.Input != want.Input || cfg.Output != want.Output {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
	if cfg.Columns.Date != "start_date" || cfg.Columns.Minutes != "duration_min" {
		t.Errorf("default columns wrong: %+v", cfg.Columns)
	}
}

func TestLoad_FileOverridesLayerOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
input: 時間軌跡.csv
columns:
  date: 開始日期
  minutes: 持續時間（分鐘）
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Input != "時間軌跡.csv" {
		t.Errorf("input not overridden: %q", cfg.Input)
	}
	if cfg.Columns.Date != "開始日期" {
		t.Errorf("columns.date not overridden: %q", cfg.Columns.Date)
	}
	// Untouched fields keep their defaults
	if cfg.Output != Default().Output {
		t.Errorf("output should keep default, got %q", cfg.Output)
	}
	if cfg.Columns.Project != "project_name" {
		t.Errorf("columns.project should keep default, got %q", cfg.Columns.Project)
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("input: [unclosed"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_RejectsBlankRequiredFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(`input: ""`), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "input") {
		t.Errorf("expected validation error about input, got %v", err)
	}
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Input = "export.csv"
	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Input != "export.csv" || loaded.Labels != cfg.Labels {
		t.Errorf("round trip changed config: %+v", loaded)
	}
}
