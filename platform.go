package cratepy

import "runtime"

// Platform constants
const (
	platformWindows = "windows"
	platformDarwin  = "darwin"
)

// Platform captures the host platform facts the pipeline needs, resolved
// once at startup instead of scattered GOOS checks. Adding a platform is a
// change to CurrentPlatform only.
type Platform struct {
	// OS is the runtime.GOOS value this platform was resolved from.
	OS string

	// SharedLibSuffix is the native shared-library filename extension
	// cargo uses for cdylib output on this platform, without the dot.
	SharedLibSuffix string
}

// CurrentPlatform resolves the platform the tool is running on.
func CurrentPlatform() Platform {
	p := Platform{OS: runtime.GOOS}

	switch runtime.GOOS {
	case platformDarwin:
		p.SharedLibSuffix = "dylib"
	case platformWindows:
		p.SharedLibSuffix = "dll"
	default:
		p.SharedLibSuffix = "so"
	}

	return p
}

// dynamicLookupTargets are the target triples whose linkers reject the
// undefined Python interpreter symbols an extension module refers to unless
// told to resolve them at load time. The generated cargo config carries a
// rustflags entry for each; cargo applies only the section matching the
// actual build target, so the file is safe to write on every platform.
var dynamicLookupTargets = []string{
	"x86_64-apple-darwin",
	"aarch64-apple-darwin",
}

// LinkerConfig is the auxiliary .cargo/config.toml document: per-target
// additional linker flags.
type LinkerConfig struct {
	Target map[string]TargetFlags `toml:"target"`
}

// TargetFlags holds the rustflags for one target triple.
type TargetFlags struct {
	Rustflags []string `toml:"rustflags"`
}

// DefaultLinkerConfig returns the static multi-target linker configuration
// enabling dynamic symbol resolution for extension modules.
func DefaultLinkerConfig() LinkerConfig {
	targets := make(map[string]TargetFlags, len(dynamicLookupTargets))
	for _, triple := range dynamicLookupTargets {
		targets[triple] = TargetFlags{
			Rustflags: []string{"-C", "link-arg=-undefined", "-C", "link-arg=dynamic_lookup"},
		}
	}
	return LinkerConfig{Target: targets}
}
