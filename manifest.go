package cratepy

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Fixed coordinates of the managed pyo3 dependency's source checkout.
const (
	pyo3GitURL    = "https://github.com/PyO3/pyo3"
	pyo3GitBranch = "main"
)

// Manifest models the generated Cargo.toml.
//
// Only the managed pyo3 entry is structured. User-supplied dependency specs
// are spliced in as raw text by Render, after serialization, under a
// separate [dependencies] heading. That keeps the tool-managed entry and the
// user's opaque syntax strictly separate: a malformed spec corrupts the
// manifest only when cargo parses it, never at generation time.
type Manifest struct {
	Package Package
	Lib     Lib
	PyO3    Dependency
}

// Package is the [package] section of the manifest.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// Lib is the [lib] section. CrateType is always ["cdylib"] so cargo emits a
// dynamically loadable C-compatible library, and Name carries the
// hyphen-free module name the Python interpreter will import.
type Lib struct {
	Name      string   `toml:"name"`
	CrateType []string `toml:"crate-type"`
}

// Dependency is the structured [dependencies.pyo3] table entry.
type Dependency struct {
	Version  string   `toml:"version"`
	Features []string `toml:"features"`
	Git      string   `toml:"git,omitempty"`
	Branch   string   `toml:"branch,omitempty"`
}

// NewManifest constructs the manifest for the synthesized crate.
//
// pyo3Version is either a released version, which is pinned as-is with no
// source-control fields, or PyO3Source, which switches the entry to a
// wildcard version plus the fixed upstream repository and branch.
func NewManifest(id Identity, pyo3Version string) Manifest {
	pyo3 := Dependency{
		Version:  pyo3Version,
		Features: []string{"extension-module"},
	}
	if pyo3Version == PyO3Source {
		pyo3.Version = "*"
		pyo3.Git = pyo3GitURL
		pyo3.Branch = pyo3GitBranch
	}

	return Manifest{
		Package: Package{
			Name:    id.Crate,
			Version: "0.1.0",
			Edition: "2018",
		},
		Lib: Lib{
			Name:      id.Module,
			CrateType: []string{"cdylib"},
		},
		PyO3: pyo3,
	}
}

// Render serializes the manifest and appends the raw user dependency block.
//
// The document comes out in three pieces: the [package] and [lib] sections,
// the managed [dependencies.pyo3] subtable, and a trailing [dependencies]
// heading followed by the user specs joined with newlines, exactly as
// written in the input file. Defining the pyo3 subtable before its
// super-table keeps the document valid TOML while leaving the raw block a
// plain append.
//
// Returns ErrSerialize if TOML encoding fails.
func Render(m Manifest, deps []string) (string, error) {
	head, err := toml.Marshal(struct {
		Package Package `toml:"package"`
		Lib     Lib     `toml:"lib"`
	}{m.Package, m.Lib})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	pyo3, err := toml.Marshal(m.PyO3)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	var b strings.Builder
	b.Write(head)
	b.WriteString("\n[dependencies.pyo3]\n")
	b.Write(pyo3)
	b.WriteString("\n[dependencies]\n")
	b.WriteString(strings.Join(deps, "\n"))

	return b.String(), nil
}
