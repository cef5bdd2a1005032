package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindDriverTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	manifest := filepath.Join(root, "fsdriver.toml")
	if err := os.WriteFile(manifest, []byte("[compiler]\nexecutable = \"fsc\"\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	path, ok, err := findDriverToml(nested)
	if err != nil {
		t.Fatalf("findDriverToml: %v", err)
	}
	if !ok || path != manifest {
		t.Fatalf("found %q (ok=%v), want %q", path, ok, manifest)
	}
}

func TestLoadDriverManifest(t *testing.T) {
	root := t.TempDir()
	content := `
[compiler]
executable = "fsc"

[format]
vs_errors = true
`
	if err := os.WriteFile(filepath.Join(root, "fsdriver.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	manifest, ok, err := loadDriverManifest(root)
	if err != nil || !ok {
		t.Fatalf("loadDriverManifest: ok=%v err=%v", ok, err)
	}
	if manifest.Config.Compiler.Executable != "fsc" || !manifest.Config.Format.VSErrors {
		t.Fatalf("config = %+v", manifest.Config)
	}
	if manifest.Root != root {
		t.Fatalf("root = %q, want %q", manifest.Root, root)
	}
}

func TestApplyFormatDefaults(t *testing.T) {
	cfg := formatConfig{ErrorRanges: true, VSErrors: true}
	got := applyFormatDefaults("x.fs", cfg)
	if got != "x.fs /test:ErrorRanges /vserrors" {
		t.Fatalf("applyFormatDefaults = %q", got)
	}

	// Switches already present in the vector are not duplicated.
	got = applyFormatDefaults("x.fs --VSERRORS", cfg)
	if got != "x.fs --VSERRORS /test:ErrorRanges" {
		t.Fatalf("applyFormatDefaults = %q", got)
	}

	if got := applyFormatDefaults("x.fs", formatConfig{}); got != "x.fs" {
		t.Fatalf("no defaults must leave the line unchanged, got %q", got)
	}
}
