package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/irmakcan/swift-package-manager/pkg/manifest"
)

// NewListCommand creates the list command.
func NewListCommand(getConfig ConfigProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the targets declared in the manifest",
		Long: `Evaluate the package manifest and list its targets with their type,
dependencies and source location hints.

Use --output json for the canonical serialized form instead of a table.`,
		Example: `  # List targets as a table
  swiftpkg list

  # List targets as canonical JSON
  swiftpkg list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig()
			pkg, err := evaluateManifest(cfg)
			if err != nil {
				return err
			}

			if cfg.OutputFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), pkg)
			}
			return renderTargetTable(cmd.OutOrStdout(), pkg)
		},
	}
}

func renderTargetTable(w io.Writer, pkg *manifest.Package) error {
	fmt.Fprintf(w, "Package %s (%d targets)\n", pkg.Name, len(pkg.Targets))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"NAME", "TYPE", "DEPENDENCIES", "PATH"})

	for _, target := range pkg.Targets {
		t.AppendRow(table.Row{
			target.Name,
			string(target.Type()),
			formatDependencies(target.Dependencies),
			formatPath(target),
		})
	}

	t.Render()
	return nil
}

func formatDependencies(deps []manifest.Dependency) string {
	if len(deps) == 0 {
		return "-"
	}
	names := make([]string, len(deps))
	for i, d := range deps {
		switch {
		case d.Kind == manifest.DependencyKindProduct && d.Package != "":
			names[i] = fmt.Sprintf("%s (%s)", d.Name, d.Package)
		default:
			names[i] = d.Name
		}
	}
	return strings.Join(names, ", ")
}

func formatPath(t *manifest.Target) string {
	if t.Path == nil {
		return "(inferred)"
	}
	return *t.Path
}
