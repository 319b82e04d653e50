package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"citrine/internal/project"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, project.ManifestName)
	if err := os.WriteFile(manifest, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	got := project.FindRoot(nested)
	want, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != want {
		t.Fatalf("FindRoot = %q, want %q", got, root)
	}
}

func TestFindRootMissing(t *testing.T) {
	if got := project.FindRoot(t.TempDir()); got != "" {
		t.Fatalf("FindRoot = %q, want empty for a bare directory", got)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := project.LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Check.MaxDiagnostics != 100 || !cfg.Check.Cache || cfg.Output.Color != "auto" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigManifest(t *testing.T) {
	root := t.TempDir()
	manifest := `
[check]
max-diagnostics = 7
jobs = 2
cache = false

[output]
color = "never"
`
	if err := os.WriteFile(filepath.Join(root, project.ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := project.LoadConfig(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Check.MaxDiagnostics != 7 || cfg.Check.Jobs != 2 || cfg.Check.Cache {
		t.Fatalf("check config = %+v", cfg.Check)
	}
	if cfg.Output.Color != "never" {
		t.Fatalf("color = %q", cfg.Output.Color)
	}
}
