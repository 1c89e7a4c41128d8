package cratepy

import (
	"fmt"
	"path/filepath"
)

// ArtifactPath computes where cargo left the compiled cdylib: the workspace's
// profile-specific output directory plus the platform's native shared-library
// filename, lib<module>.<suffix>.
func ArtifactPath(workspace string, id Identity, profile string, platform Platform) string {
	libName := fmt.Sprintf("lib%s.%s", id.Module, platform.SharedLibSuffix)
	return filepath.Join(workspace, "target", profile, libName)
}

// InstallArtifact copies the built library to destDir under the fixed name
// <module>.so.
//
// The .so suffix is used on every platform because the Python import
// machinery looks for it regardless of the host's native convention; the
// rename is a normalization, not a mistake.
//
// A missing source artifact is the primary signal of a build-configuration
// mismatch (wrong profile directory, unexpected target triple) and surfaces
// as an ErrIO naming the absent path.
func InstallArtifact(artifactPath, destDir string, id Identity) (string, error) {
	destPath := filepath.Join(destDir, id.Module+".so")

	if err := copyFile(artifactPath, destPath); err != nil {
		return "", err
	}

	return destPath, nil
}
