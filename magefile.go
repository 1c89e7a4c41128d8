//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs a full build.
var Default = Build

const versionPkg = "github.com/cratepy/cratepy/internal/version"

func ldflags() (string, error) {
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "v0.0.0-dev"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	return fmt.Sprintf("-X %s.Version=%s -X %s.GitCommit=%s -X %s.BuildDate=%s",
		versionPkg, version, versionPkg, commit, versionPkg, date), nil
}

// Build compiles the cratepy binary into ./bin.
func Build() error {
	flags, err := ldflags()
	if err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", flags, "-o", "bin/cratepy", "./cmd/cratepy")
}

// Install installs the cratepy binary with go install.
func Install() error {
	flags, err := ldflags()
	if err != nil {
		return err
	}
	return sh.RunV("go", "install", "-ldflags", flags, "./cmd/cratepy")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet across the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// CI runs lint and tests, the same set the pipeline runs.
func CI() {
	mg.SerialDeps(Lint, Test)
}
