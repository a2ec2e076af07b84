package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/irmakcan/swift-package-manager/internal/cli/config"
)

const configTemplate = `# swiftpkg configuration
manifest: Package.star
tools_version: "5"
output: table
`

const manifestTemplate = `package(
    name = %q,
    targets = [
        target(
            name = %q,
        ),
        test_target(
            name = %q,
            dependencies = [%q],
        ),
    ],
)
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new package",
		Long: `Initialize a new package with a starter manifest and configuration.

This creates:
  - Package.star manifest declaring a library target and its test target
  - swiftpkg.yaml configuration file`,
		Example: `  # Initialize in the current directory
  swiftpkg init

  # Initialize in a new directory
  swiftpkg init my-package

  # Overwrite existing files
  swiftpkg init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
				if err := os.MkdirAll(dir, 0750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	name := filepath.Base(absOrSelf(dir))

	files := map[string]string{
		config.ConfigFileName: configTemplate,
		"Package.star":        fmt.Sprintf(manifestTemplate, name, name, name+"Tests", name),
	}

	for file, content := range files {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists. Use --force to overwrite", path)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nPackage %q initialized. Try: swiftpkg list\n", name)
	return nil
}

func absOrSelf(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
