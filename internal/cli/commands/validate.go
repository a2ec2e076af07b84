package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(getConfig ConfigProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Evaluate the manifest and report configuration errors",
		Long: `Evaluate the package manifest and report whether it produces a valid
set of target descriptors. Evaluation stops at the first invalid
target configuration; structural errors (unknown dependency names,
missing source files) are the build graph's concern and not checked
here.`,
		Example: `  # Validate the manifest in the working directory
  swiftpkg validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig()
			pkg, err := evaluateManifest(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (package %q, %d targets)\n",
				cfg.Manifest, pkg.Name, len(pkg.Targets))
			return nil
		},
	}
}
