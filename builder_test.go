package cratepy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeStubCargo writes a fake cargo executable for end-to-end pipeline
// tests, so no Rust toolchain is needed to run them.
func writeStubCargo(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub cargo scripts are POSIX shell, skipping on windows")
	}

	path := filepath.Join(t.TempDir(), "cargo")
	content := "#!/bin/sh\n" + script
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("writing stub cargo: %v", err)
	}
	return path
}

func TestBuildEndToEnd(t *testing.T) {
	suffix := CurrentPlatform().SharedLibSuffix
	stub := writeStubCargo(t, fmt.Sprintf(
		"mkdir -p target/debug\nprintf 'cdylib' > target/debug/libfoo_bar.%s\necho 'Compiling foo-bar v0.1.0'\n", suffix))

	input := writeInput(t, "// depA = \"1.0\"\n// depB = \"2.0\"\nuse pyo3::prelude::*;\n")
	destDir := t.TempDir()

	opts := &Options{
		Input:     input,
		CargoPath: stub,
		TempRoot:  t.TempDir(),
		DestDir:   destDir,
	}

	result, err := NewBuilder().Build(context.Background(), opts)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if result.Identity.Module != "foo_bar" {
		t.Errorf("Module = %q, expected foo_bar", result.Identity.Module)
	}
	if filepath.Base(result.Workspace) != "foo-bar" {
		t.Errorf("Workspace = %q, expected a foo-bar directory", result.Workspace)
	}

	// The normalized artifact appears in the destination directory
	expectedDest := filepath.Join(destDir, "foo_bar.so")
	if result.Artifact != expectedDest {
		t.Errorf("Artifact = %q, expected %q", result.Artifact, expectedDest)
	}
	if _, err := os.Stat(expectedDest); err != nil {
		t.Errorf("Expected installed artifact at %s: %v", expectedDest, err)
	}

	// The workspace manifest carries the managed entry and the raw block
	manifest, err := os.ReadFile(filepath.Join(result.Workspace, "Cargo.toml"))
	if err != nil {
		t.Fatalf("reading generated manifest: %v", err)
	}
	for _, want := range []string{"[dependencies.pyo3]", `depA = "1.0"`, `depB = "2.0"`} {
		if !strings.Contains(string(manifest), want) {
			t.Errorf("Generated manifest missing %q:\n%s", want, manifest)
		}
	}

	// The linker config is always materialized
	if _, err := os.Stat(filepath.Join(result.Workspace, ".cargo", "config.toml")); err != nil {
		t.Errorf("Expected linker config in workspace: %v", err)
	}
}

func TestBuildFailureCapturesOutput(t *testing.T) {
	stub := writeStubCargo(t, "echo 'error[E0425]: cannot find value' 1>&2\nexit 101\n")
	input := writeInput(t, "fn broken() {}\n")

	opts := &Options{
		Input:     input,
		CargoPath: stub,
		TempRoot:  t.TempDir(),
		DestDir:   t.TempDir(),
	}

	_, err := NewBuilder().Build(context.Background(), opts)
	if err == nil {
		t.Fatal("Expected error for failing cargo")
	}
	if !errors.Is(err, ErrBuild) {
		t.Errorf("Expected ErrBuild, got %v", err)
	}
	if !strings.Contains(err.Error(), "error[E0425]") {
		t.Errorf("Build error should carry cargo diagnostics, got: %v", err)
	}
}

func TestBuildMissingArtifact(t *testing.T) {
	// cargo exits 0 but never produces the expected output directory,
	// simulating a profile mismatch
	stub := writeStubCargo(t, "exit 0\n")
	input := writeInput(t, "fn main() {}\n")
	destDir := t.TempDir()

	opts := &Options{
		Input:     input,
		CargoPath: stub,
		TempRoot:  t.TempDir(),
		DestDir:   destDir,
	}

	_, err := NewBuilder().Build(context.Background(), opts)
	if err == nil {
		t.Fatal("Expected error when artifact is missing")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
	if !strings.Contains(err.Error(), "libfoo_bar.") {
		t.Errorf("Error should name the missing artifact path, got: %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(destDir, "foo_bar.so")); !os.IsNotExist(statErr) {
		t.Error("No artifact must be installed when the build output is missing")
	}
}

func TestBuildReleaseProfile(t *testing.T) {
	suffix := CurrentPlatform().SharedLibSuffix
	stub := writeStubCargo(t, fmt.Sprintf(
		"case \"$*\" in *--release*) ;; *) echo 'missing --release' 1>&2; exit 1;; esac\nmkdir -p target/release\n: > target/release/libfoo.%s\n", suffix))

	input := filepath.Join(t.TempDir(), "foo.rs")
	if err := os.WriteFile(input, []byte("fn main() {}\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	opts := &Options{
		Input:     input,
		Release:   true,
		CargoPath: stub,
		TempRoot:  t.TempDir(),
		DestDir:   t.TempDir(),
	}

	result, err := NewBuilder().Build(context.Background(), opts)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if filepath.Base(result.Artifact) != "foo.so" {
		t.Errorf("Artifact = %q, expected foo.so", result.Artifact)
	}
}

func TestBuildMissingCargo(t *testing.T) {
	input := writeInput(t, "fn main() {}\n")

	opts := &Options{
		Input:     input,
		CargoPath: filepath.Join(t.TempDir(), "no-such-cargo"),
		TempRoot:  t.TempDir(),
		DestDir:   t.TempDir(),
	}

	_, err := NewBuilder().Build(context.Background(), opts)
	if err == nil {
		t.Fatal("Expected error for missing cargo executable")
	}
	if !errors.Is(err, ErrBuild) {
		t.Errorf("Expected ErrBuild, got %v", err)
	}
}

func TestBuildMissingInput(t *testing.T) {
	opts := &Options{
		Input:    filepath.Join(t.TempDir(), "absent.rs"),
		TempRoot: t.TempDir(),
	}

	_, err := NewBuilder().Build(context.Background(), opts)
	if err == nil {
		t.Fatal("Expected error for missing input file")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
}
