package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathRespectsXDGConfigHome(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	want := filepath.Join(tmpDir, ConfigDir, ConfigFile)
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Bibliography != "" {
		t.Errorf("Bibliography = %q, want empty", cfg.Bibliography)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Bibliography: "~/papers/refs.bib"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Bibliography != cfg.Bibliography {
		t.Errorf("Bibliography = %q, want %q", loaded.Bibliography, cfg.Bibliography)
	}
}

func TestLoadMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("bibliography: [broken"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() with malformed YAML: expected error")
	}
}

func TestResolveBibliography(t *testing.T) {
	t.Setenv(EnvBibliography, "")

	cfg := &Config{Bibliography: "/from/config.bib"}
	if got := ResolveBibliography(cfg); got != "/from/config.bib" {
		t.Errorf("ResolveBibliography() = %q, want config value", got)
	}

	t.Setenv(EnvBibliography, "/from/env.bib")
	if got := ResolveBibliography(cfg); got != "/from/env.bib" {
		t.Errorf("ResolveBibliography() = %q, want env override", got)
	}

	t.Setenv(EnvBibliography, "")
	if got := ResolveBibliography(nil); got != "" {
		t.Errorf("ResolveBibliography(nil) = %q, want empty", got)
	}
}
