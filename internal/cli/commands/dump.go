// Package commands implements the swiftpkg subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/irmakcan/swift-package-manager/internal/cli/config"
	"github.com/irmakcan/swift-package-manager/internal/starlark"
	"github.com/irmakcan/swift-package-manager/pkg/manifest"
)

// ConfigProvider returns the configuration loaded by the root command.
type ConfigProvider func() *config.Config

// evaluateManifest runs the configured manifest through the Starlark
// evaluator for the configured tools version.
func evaluateManifest(cfg *config.Config) (*manifest.Package, error) {
	pkg, err := starlark.New(cfg.Version()).ExecFile(cfg.Manifest)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", cfg.Manifest, err)
	}
	return pkg, nil
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(getConfig ConfigProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Evaluate the manifest and print its canonical form",
		Long: `Evaluate the package manifest and print the canonical serialized
package as JSON. This is the exact shape handed to the build-graph
builder: fixed key order, explicit nulls for absent optional fields,
and per-language settings keys present only when the manifest supplied
them.`,
		Example: `  # Dump the manifest in the working directory
  swiftpkg dump

  # Dump a specific manifest under the older format rules
  swiftpkg dump --manifest pkgs/zlib/Package.star --tools-version 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pkg, err := evaluateManifest(getConfig())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), pkg)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
