// Package cratepy builds a single Rust source file into a loadable Python
// extension module.
//
// The tool synthesizes an ephemeral cargo crate around the input file,
// shells out to cargo, and relocates the produced cdylib next to the caller
// as <module>.so. It never embeds a compiler and never caches between runs.
//
// # Pipeline
//
// A build runs five sequential stages; the first failure aborts the run:
//
//	Directive parsing   leading "// " lines become raw Cargo.toml
//	                    dependency declarations
//	Manifest building   [package]/[lib]/[dependencies.pyo3] plus the raw
//	                    user dependency block spliced in as text
//	Materialization     Cargo.toml, .cargo/config.toml linker flags, and a
//	                    copy of the input at src/lib.rs
//	Cargo invocation    cargo build [--release], output captured
//	Artifact relocation target/<profile>/lib<module>.<ext> copied to
//	                    <module>.so in the destination directory
//
// # Basic Usage
//
//	builder := cratepy.NewBuilder()
//
//	result, err := builder.Build(ctx, &cratepy.Options{
//	    Input:   "foo-bar.rs",
//	    Release: true,
//	})
//
// Directives sit at the top of the input file, one dependency per line:
//
//	// rand = "0.8"
//	// serde = { version = "1", features = ["derive"] }
//	use pyo3::prelude::*;
//	...
//
// # Workspace Lifetime
//
// The workspace directory (<temp>/<crate-name>) is created fresh as needed
// and intentionally never deleted, so failed builds can be inspected. Two
// concurrent runs with the same crate name share it unprotected.
package cratepy
