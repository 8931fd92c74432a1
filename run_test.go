package treent

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseRunConfig(t *testing.T) {
	cfg, err := ParseRunConfig([]byte(`
title: board
width: 800
height: 600
tps: 30
resizable: true
debug: true
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := RunConfig{Title: "board", Width: 800, Height: 600, TPS: 30, Resizable: true, Debug: true}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseRunConfigDefaults(t *testing.T) {
	cfg, err := ParseRunConfig([]byte(`width: -1`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := RunConfig{Title: defaultTitle, Width: defaultWidth, Height: defaultHeight, TPS: ebiten.DefaultTPS}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseRunConfigInvalid(t *testing.T) {
	_, err := ParseRunConfig([]byte("width: [oops"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.HasPrefix(err.Error(), "treent: parse run config") {
		t.Errorf("error = %q", err)
	}
}

func TestLoadRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("title: from file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Title != "from file" || cfg.Width != defaultWidth {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := LoadRunConfig(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want wrapped fs.ErrNotExist", err)
	}
	if err != nil && !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file: %q", err)
	}
}
