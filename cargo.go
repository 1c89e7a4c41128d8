package cratepy

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// resolveCargo picks the cargo executable for this run.
//
// Priority: explicit configuration, then the CARGO environment variable,
// then "cargo" from PATH.
func resolveCargo(configured string) string {
	if configured != "" {
		return configured
	}
	if cargoPath := os.Getenv("CARGO"); cargoPath != "" {
		return cargoPath
	}
	return "cargo"
}

// runCargo invokes cargo build in the workspace directory.
//
// The release flag adds --release. Stdout and stderr are captured together
// and returned as lines; on non-zero exit they are folded into the returned
// BuildError so the compiler diagnostics reach the user. The call blocks
// until cargo terminates: there is no timeout, and an interrupt of this
// process takes the child down with it through normal process-group signal
// delivery.
func runCargo(ctx context.Context, cargoPath, workspace string, release bool) ([]string, error) {
	args := []string{"build"}
	if release {
		args = append(args, "--release")
	}

	cmd := exec.CommandContext(ctx, cargoPath, args...)
	cmd.Dir = workspace

	output, err := cmd.CombinedOutput()
	outputLines := strings.Split(strings.TrimRight(string(output), "\n"), "\n")
	if len(outputLines) == 1 && outputLines[0] == "" {
		outputLines = nil
	}

	if err != nil {
		return outputLines, BuildError(outputLines, err)
	}

	return outputLines, nil
}
