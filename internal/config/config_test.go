package config

import (
	"os"
	"path/filepath"
	"testing"

	"chisel/internal/format"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[format]
max_width = 80
indent_width = 2
imports_layout = "horizontal-vertical"
indent_style = "visual"
trailing_separator = "never"
inline_block_comments = true
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if opts.MaxWidth != 80 || opts.IndentWidth != 2 {
		t.Fatalf("widths: got %+v", opts)
	}
	if opts.Tactic != format.TacticHorizontalVertical {
		t.Fatalf("tactic: got %v", opts.Tactic)
	}
	if opts.IndentStyle != format.IndentVisual {
		t.Fatalf("indent style: got %v", opts.IndentStyle)
	}
	if opts.TrailingSeparator != format.SeparatorNever {
		t.Fatalf("separator policy: got %v", opts.TrailingSeparator)
	}
	if !opts.InlineBlockComments {
		t.Fatal("inline_block_comments not applied")
	}
}

func TestLoad_RejectsUnknownKey(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[format]
max_widht = 80
`)
	if _, err := Load(path); err == nil {
		t.Fatal("unknown key must be rejected")
	}
}

func TestLoad_RejectsBadTactic(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[format]
imports_layout = "diagonal"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("bad tactic must be rejected")
	}
}

func TestDiscover_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[format]\nmax_width = 60\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	opts, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if opts.MaxWidth != 60 {
		t.Fatalf("manifest not found from nested dir: %+v", opts)
	}
}

func TestDiscover_DefaultsWithoutManifest(t *testing.T) {
	opts, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	want := format.Options{}.WithDefaults()
	if opts != want {
		t.Fatalf("defaults: want %+v got %+v", want, opts)
	}
}
