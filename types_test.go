package cratepy

import (
	"path/filepath"
	"testing"
)

func TestNewIdentity(t *testing.T) {
	testCases := []struct {
		input          string
		expectedCrate  string
		expectedModule string
	}{
		{"foo.rs", "foo", "foo"},
		{"foo-bar.rs", "foo-bar", "foo_bar"},
		{"foo-bar-baz.rs", "foo-bar-baz", "foo_bar_baz"},
		{"already_snake.rs", "already_snake", "already_snake"},
		{"path/to/my-mod.rs", "my-mod", "my_mod"},
		{"noext", "noext", "noext"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			id := NewIdentity(tc.input)
			if id.Crate != tc.expectedCrate {
				t.Errorf("Crate = %q, expected %q", id.Crate, tc.expectedCrate)
			}
			if id.Module != tc.expectedModule {
				t.Errorf("Module = %q, expected %q", id.Module, tc.expectedModule)
			}
		})
	}
}

func TestOptionsWorkspaceDir(t *testing.T) {
	opts := &Options{Input: "foo-bar.rs", TempRoot: "/custom/tmp"}

	expected := filepath.Join("/custom/tmp", "foo-bar")
	if dir := opts.WorkspaceDir(); dir != expected {
		t.Errorf("WorkspaceDir = %q, expected %q", dir, expected)
	}

	// Default temp root is never empty
	opts.TempRoot = ""
	if dir := opts.WorkspaceDir(); filepath.Base(dir) != "foo-bar" {
		t.Errorf("WorkspaceDir = %q, expected a foo-bar directory", dir)
	}
}

func TestOptionsProfile(t *testing.T) {
	opts := &Options{Input: "foo.rs"}
	if p := opts.Profile(); p != "debug" {
		t.Errorf("Profile = %q, expected debug", p)
	}

	opts.Release = true
	if p := opts.Profile(); p != "release" {
		t.Errorf("Profile = %q, expected release", p)
	}
}

func TestOptionsPyO3Version(t *testing.T) {
	opts := &Options{Input: "foo.rs"}
	if v := opts.pyo3Version(); v != DefaultPyO3Version {
		t.Errorf("pyo3Version = %q, expected %q", v, DefaultPyO3Version)
	}

	opts.PyO3 = "0.20"
	if v := opts.pyo3Version(); v != "0.20" {
		t.Errorf("pyo3Version = %q, expected 0.20", v)
	}
}
