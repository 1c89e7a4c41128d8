package cratepy

import (
	"fmt"
	"os/exec"
	"strings"
)

// ToolRequirement describes an external tool the build needs.
//
// Alternatives satisfy the requirement if the primary name is absent.
// Optional tools are checked but never fail the run.
type ToolRequirement struct {
	// Name is the primary tool binary name (e.g., "cargo").
	Name string

	// Alternatives are alternative binary names that also satisfy this
	// requirement.
	Alternatives []string

	// Optional marks a tool that is useful but not required.
	Optional bool

	// Purpose is a human-readable description used in error messages.
	Purpose string
}

// BuildToolRequirements returns the toolchain the pipeline shells out to.
// cargo is the only hard requirement; rustc ships with every cargo install
// and is listed so a broken half-installation is reported by name.
func BuildToolRequirements() []ToolRequirement {
	return []ToolRequirement{
		{Name: "cargo", Purpose: "Rust build system and package manager"},
		{Name: "rustc", Optional: true, Purpose: "Rust compiler"},
	}
}

// CheckToolAvailable reports whether a tool can be executed.
//
// Accepts either a bare binary name resolved through PATH or an explicit
// path to an executable.
func CheckToolAvailable(tool string) error {
	_, err := exec.LookPath(tool)
	if err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}
	return nil
}

// CheckRequiredTools verifies that every non-optional requirement is
// satisfied, trying alternatives in order. All missing required tools are
// reported in a single error.
func CheckRequiredTools(requirements []ToolRequirement) error {
	var missingTools []string

	for _, req := range requirements {
		found := CheckToolAvailable(req.Name) == nil

		if !found {
			for _, alt := range req.Alternatives {
				if CheckToolAvailable(alt) == nil {
					found = true
					break
				}
			}
		}

		if !found && !req.Optional {
			if req.Purpose != "" {
				missingTools = append(missingTools, fmt.Sprintf("%s (%s)", req.Name, req.Purpose))
			} else {
				missingTools = append(missingTools, req.Name)
			}
		}
	}

	if len(missingTools) == 0 {
		return nil
	}

	if len(missingTools) == 1 {
		return fmt.Errorf("%s not found in PATH", missingTools[0])
	}

	return fmt.Errorf("missing required tools: %s", strings.Join(missingTools, ", "))
}
