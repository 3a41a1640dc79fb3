package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.IndentWidth != 2 || cfg.UseTabs || !cfg.ElideRedundantParens || cfg.ASTStyle != "colored" {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".dai.yaml")
	if err := os.WriteFile(path, []byte("indent_width: 4\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IndentWidth != 4 {
		t.Fatalf("IndentWidth = %d, want 4", cfg.IndentWidth)
	}
	if !cfg.ElideRedundantParens {
		t.Fatalf("ElideRedundantParens should still be the default (true)")
	}
}

func TestLoadDefaultFileFallsBackWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(oldwd)

	cfg, err := LoadDefaultFile()
	if err != nil {
		t.Fatalf("LoadDefaultFile: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("LoadDefaultFile() = %+v, want Default()", cfg)
	}
}

func TestMarshalRoundTrips(t *testing.T) {
	cfg := Default()
	cfg.UseTabs = true

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, ".dai.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing marshaled config: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round-tripped config = %+v, want %+v", got, cfg)
	}
}
