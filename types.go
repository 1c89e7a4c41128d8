package cratepy

import (
	"os"
	"path/filepath"
	"strings"
)

// PyO3Source selects the git checkout of pyo3 instead of a released version.
//
// When Options.PyO3 is set to this value the generated manifest pins the
// dependency to the upstream repository's main branch with a wildcard
// version; any other value is treated as a released crates.io version.
const PyO3Source = "source"

// DefaultPyO3Version is the released pyo3 version used when nothing else is
// configured.
const DefaultPyO3Version = "0.13"

// Identity is the derived naming pair for the synthesized crate.
//
// Crate is the input file's stem and names both the cargo package and the
// workspace directory. Module is Crate with hyphens replaced by underscores,
// because Python module names (and therefore the cdylib output name) cannot
// contain hyphens. No other characters are rewritten; anything else illegal
// surfaces as a cargo failure downstream.
type Identity struct {
	Crate  string // cargo package name, e.g. "foo-bar"
	Module string // importable module name, e.g. "foo_bar"
}

// NewIdentity derives the crate and module names from an input file path.
func NewIdentity(inputPath string) Identity {
	base := filepath.Base(inputPath)
	crate := strings.TrimSuffix(base, filepath.Ext(base))

	return Identity{
		Crate:  crate,
		Module: strings.ReplaceAll(crate, "-", "_"),
	}
}

// Options controls a single build run.
//
// Only Input is required. Zero values select the debug profile, the default
// released pyo3 version, the system temp directory, and cargo from PATH
// (honoring the CARGO environment variable).
type Options struct {
	// Input is the path to the Rust source file to build.
	Input string

	// Release selects the release profile (cargo build --release).
	Release bool

	// PyO3 is the managed dependency mode: a released version string, or
	// PyO3Source for a git checkout. Empty means DefaultPyO3Version.
	PyO3 string

	// CargoPath overrides the cargo executable. Empty falls back to the
	// CARGO environment variable, then to "cargo" from PATH.
	CargoPath string

	// TempRoot overrides the directory the workspace is created under.
	// Empty means os.TempDir().
	TempRoot string

	// DestDir is where the final <module>.so is written. Empty means the
	// current working directory.
	DestDir string
}

// Identity returns the naming pair derived from the input path.
func (o *Options) Identity() Identity {
	return NewIdentity(o.Input)
}

// WorkspaceDir returns the ephemeral crate directory for this run. The
// directory is shared across runs with the same crate name and is never
// cleaned up, so failed builds can be inspected afterwards.
func (o *Options) WorkspaceDir() string {
	root := o.TempRoot
	if root == "" {
		root = os.TempDir()
	}
	return filepath.Join(root, o.Identity().Crate)
}

// pyo3Version returns the effective managed dependency mode.
func (o *Options) pyo3Version() string {
	if o.PyO3 == "" {
		return DefaultPyO3Version
	}
	return o.PyO3
}

// Profile returns the cargo profile directory name for this run.
func (o *Options) Profile() string {
	if o.Release {
		return "release"
	}
	return "debug"
}

// Result describes a completed build.
type Result struct {
	Identity  Identity // derived crate/module names
	Workspace string   // ephemeral crate directory (left on disk)
	Artifact  string   // destination path of the copied <module>.so
	Output    []string // captured cargo output lines
}
