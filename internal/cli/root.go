// Package cli provides the command-line interface for swiftpkg.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/irmakcan/swift-package-manager/internal/cli/commands"
	"github.com/irmakcan/swift-package-manager/internal/cli/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swiftpkg",
		Short: "swiftpkg - declarative package manifest tool",
		Long: `swiftpkg evaluates declarative package manifests (Package.star) into
canonical target descriptors for the build-graph builder.

A manifest declares targets (libraries, executables, test suites and
system library adapters) with their dependencies and per-language build
settings; swiftpkg validates the declarations and emits the canonical
serialized form.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
				fmt.Fprintf(os.Stderr, "Using tools version: %s\n", cfg.ToolsVersion)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Declarative package manifest tool
`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to config file (default: swiftpkg.yaml)")
	flags.String("manifest", config.DefaultManifest, "Path to the package manifest")
	flags.String("tools-version", config.DefaultToolsVersion, "Manifest format version (4 or 5)")
	flags.StringP("output", "o", config.DefaultOutput, "Output format: table, json")
	flags.BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		commands.NewDumpCommand(getConfig),
		commands.NewListCommand(getConfig),
		commands.NewValidateCommand(getConfig),
		commands.NewInitCommand(),
		commands.NewVersionCommand(Version),
	)

	return rootCmd
}

// getConfig returns the configuration loaded by PersistentPreRunE.
func getConfig() *config.Config {
	return cfg
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
