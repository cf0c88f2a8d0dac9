package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
extract:
  pronunciation: true
  translations: false
  languages: "English, Finnish"
  workers: 2

database:
  dsn: "postgres://u:p@localhost:5432/testdb"

log:
  level: "debug"
  format: "text"
`

func TestLoadFromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Extract.Translations {
		t.Error("expected translations capture disabled")
	}
	if !cfg.Extract.Pronunciation {
		t.Error("expected pronunciation capture enabled")
	}
	if got := cfg.Extract.Workers; got != 2 {
		t.Errorf("workers: got %d, want 2", got)
	}
	want := []string{"English", "Finnish"}
	if len(cfg.Extract.Languages) != len(want) {
		t.Fatalf("languages: got %v, want %v", cfg.Extract.Languages, want)
	}
	for i, l := range want {
		if cfg.Extract.Languages[i] != l {
			t.Errorf("languages[%d]: got %q, want %q", i, cfg.Extract.Languages[i], l)
		}
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q, want debug", cfg.Log.Level)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("EXTRACT_WORKERS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if got := cfg.Extract.Workers; got != 8 {
		t.Errorf("workers: got %d, want 8 (env override)", got)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if got := cfg.Extract.Workers; got != 4 {
		t.Errorf("workers default: got %d, want 4", got)
	}
	if cfg.Extract.Languages != nil {
		t.Errorf("languages default: got %v, want nil", cfg.Extract.Languages)
	}
}

func TestValidateRejectsZeroWorkers(t *testing.T) {
	cfg := &Config{}
	cfg.Extract.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for zero workers")
	}
}

func TestParseLanguages(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"English", 1},
		{"English, Finnish , German", 3},
		{" , ", 0},
	}
	for _, tc := range tests {
		if got := ParseLanguages(tc.raw); len(got) != tc.want {
			t.Errorf("ParseLanguages(%q): got %v, want %d entries", tc.raw, got, tc.want)
		}
	}
}
