package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cratepy/cratepy"
	"github.com/cratepy/cratepy/internal/config"
	"github.com/cratepy/cratepy/internal/output"
)

var (
	// Global flags
	flagVerbose bool
	flagRelease bool
	flagPyO3    string
	flagConfig  string
)

// rootCmd is the base command: build one Rust file into a Python module.
var rootCmd = &cobra.Command{
	Use:   "cratepy <input.rs>",
	Short: "Build a single Rust file as a Python extension module",
	Long: `cratepy builds a single Rust source file into a loadable Python
extension module using cargo and pyo3.

Dependencies are declared as leading comment lines in the input file, one
Cargo.toml table entry per line:

  // rand = "0.8"
  // serde = { version = "1", features = ["derive"] }

The compiled module is written to <name>.so in the current directory, where
<name> is the input file's stem with hyphens replaced by underscores.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runBuild,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print the workspace path and debug logging")
	rootCmd.Flags().BoolVar(&flagRelease, "release", false, "build with the release profile")
	rootCmd.Flags().StringVar(&flagPyO3, "pyo3", "", `pyo3 version, or "source" for the upstream git branch (env: CRATEPY_PYO3_VERSION)`)
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: CRATEPY_CONFIG)")

	rootCmd.AddCommand(newVersionCmd())
}

func runBuild(cmd *cobra.Command, args []string) error {
	output.SetupLogging(flagVerbose)

	configFile := flagConfig
	if configFile == "" {
		configFile = os.Getenv("CRATEPY_CONFIG")
	}

	cfg, err := config.NewLoader().Load(configFile)
	if err != nil {
		return err
	}

	pyo3 := flagPyO3
	if pyo3 == "" {
		pyo3 = cfg.PyO3Version
	}

	opts := &cratepy.Options{
		Input:     args[0],
		Release:   flagRelease,
		PyO3:      pyo3,
		CargoPath: cfg.Cargo,
		TempRoot:  cfg.TempDir,
	}

	if err := cratepy.CheckRequiredTools(cratepy.BuildToolRequirements()); err != nil {
		output.Warn("build toolchain incomplete", "err", err)
	}

	if flagVerbose {
		output.Println(opts.WorkspaceDir())
	}

	output.Debug("building extension module",
		"input", opts.Input,
		"profile", opts.Profile(),
		"pyo3", pyo3,
	)

	result, err := cratepy.NewBuilder().Build(cmd.Context(), opts)
	if err != nil {
		return err
	}

	output.Debug("build complete", "workspace", result.Workspace)
	output.Println(output.FormatSuccess("Built", result.Artifact))

	return nil
}
