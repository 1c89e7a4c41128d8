package cratepy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Conventional filenames inside the synthesized crate.
const (
	manifestFile    = "Cargo.toml"
	cargoConfigDir  = ".cargo"
	cargoConfigFile = "config.toml"
	sourceDir       = "src"
	entryFile       = "lib.rs"
)

// Materialize writes the synthesized crate into dir.
//
// It creates dir and its src/ subdirectory (succeeding if they already
// exist), writes the rendered manifest to Cargo.toml, copies the input
// file's bytes to src/lib.rs so the workspace is self-contained, and, when
// linker is non-nil, writes the per-target linker flags to
// .cargo/config.toml.
//
// Any filesystem failure aborts with ErrIO; nothing written so far is
// cleaned up, matching the tool's leave-the-workspace-behind policy.
func Materialize(dir, manifest, inputPath string, linker *LinkerConfig) error {
	srcDir := filepath.Join(dir, sourceDir)
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return ioError("creating directory", srcDir, err)
	}

	manifestPath := filepath.Join(dir, manifestFile)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return ioError("writing", manifestPath, err)
	}

	entryPath := filepath.Join(srcDir, entryFile)
	if err := copyFile(inputPath, entryPath); err != nil {
		return err
	}

	if linker != nil {
		if err := writeLinkerConfig(dir, *linker); err != nil {
			return err
		}
	}

	return nil
}

// writeLinkerConfig renders the auxiliary cargo config under dir/.cargo.
func writeLinkerConfig(dir string, linker LinkerConfig) error {
	configDir := filepath.Join(dir, cargoConfigDir)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return ioError("creating directory", configDir, err)
	}

	encoded, err := toml.Marshal(linker)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	configPath := filepath.Join(configDir, cargoConfigFile)
	if err := os.WriteFile(configPath, encoded, 0o644); err != nil {
		return ioError("writing", configPath, err)
	}

	return nil
}

// copyFile copies src to dst byte for byte.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return ioError("opening", src, err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return ioError("creating", dst, err)
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return ioError("copying to", dst, err)
	}

	return nil
}
