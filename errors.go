package cratepy

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds a run can end with.
//
// Every stage wraps one of these so callers can classify failures with
// errors.Is without parsing messages.
var (
	// ErrDecode indicates the input file is not valid UTF-8 text.
	ErrDecode = errors.New("input is not valid UTF-8")

	// ErrIO indicates a filesystem operation failed, including the expected
	// build artifact being absent after a successful cargo run.
	ErrIO = errors.New("io error")

	// ErrSerialize indicates the generated manifest could not be encoded.
	// With the fixed document shapes this is effectively unreachable, but it
	// is surfaced rather than swallowed.
	ErrSerialize = errors.New("manifest serialization error")

	// ErrBuild indicates the external cargo process exited non-zero, or the
	// build toolchain is missing.
	ErrBuild = errors.New("cargo build failed")
)

// BuildError creates a build failure error carrying the captured cargo output.
//
// The returned error wraps ErrBuild. When output lines are available they are
// appended after the message so the compiler diagnostics reach the user
// unmodified.
//
// # Format
//
// With cause and output:
//
//	cargo build failed: exit status 101
//
//	Build output:
//	error[E0425]: cannot find value `x` in this scope
//	...
func BuildError(output []string, err error) error {
	outputStr := strings.TrimRight(strings.Join(output, "\n"), "\n")

	switch {
	case err != nil && outputStr != "":
		return fmt.Errorf("%w: %v\n\nBuild output:\n%s", ErrBuild, err, outputStr)
	case err != nil:
		return fmt.Errorf("%w: %v", ErrBuild, err)
	case outputStr != "":
		return fmt.Errorf("%w\n\nBuild output:\n%s", ErrBuild, outputStr)
	default:
		return ErrBuild
	}
}

// ioError wraps a filesystem failure with the path it concerns.
func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrIO, op, path, err)
}
