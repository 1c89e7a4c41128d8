package cratepy

import (
	"context"
	"os"
)

// Builder runs the whole pipeline for one input file.
//
// The stages run strictly in order (collect directives, render the
// manifest, materialize the workspace, invoke cargo, relocate the artifact)
// and the first failure aborts the run. There is no retry and no partial
// cleanup: whatever was written stays on disk for inspection.
type Builder struct {
	// Platform is the resolved host platform. NewBuilder fills it in;
	// tests may substitute one to exercise foreign naming conventions.
	Platform Platform
}

// NewBuilder creates a Builder for the current platform.
func NewBuilder() *Builder {
	return &Builder{Platform: CurrentPlatform()}
}

// Build turns opts.Input into a loadable Python extension module.
//
// On success the returned Result names the workspace, the captured cargo
// output, and the destination <module>.so path. On failure the returned
// error wraps one of ErrDecode, ErrIO, ErrSerialize or ErrBuild.
func (b *Builder) Build(ctx context.Context, opts *Options) (*Result, error) {
	src, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, ioError("reading", opts.Input, err)
	}

	deps, err := CollectDeps(src)
	if err != nil {
		return nil, err
	}

	id := opts.Identity()
	manifest, err := Render(NewManifest(id, opts.pyo3Version()), deps)
	if err != nil {
		return nil, err
	}

	workspace := opts.WorkspaceDir()
	linker := DefaultLinkerConfig()
	if err := Materialize(workspace, manifest, opts.Input, &linker); err != nil {
		return nil, err
	}

	cargoPath := resolveCargo(opts.CargoPath)
	if err := CheckToolAvailable(cargoPath); err != nil {
		return nil, BuildError(nil, err)
	}

	output, err := runCargo(ctx, cargoPath, workspace, opts.Release)
	if err != nil {
		return &Result{Identity: id, Workspace: workspace, Output: output}, err
	}

	artifact := ArtifactPath(workspace, id, opts.Profile(), b.Platform)
	dest, err := InstallArtifact(artifact, opts.DestDir, id)
	if err != nil {
		return &Result{Identity: id, Workspace: workspace, Output: output}, err
	}

	return &Result{
		Identity:  id,
		Workspace: workspace,
		Artifact:  dest,
		Output:    output,
	}, nil
}
