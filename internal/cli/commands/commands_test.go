package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irmakcan/swift-package-manager/internal/cli/config"
)

const testManifest = `
package(
    name = "demo",
    targets = [
        target(
            name = "Core",
            dependencies = ["Utils", dep.product(name = "Logging", package = "swift-log")],
        ),
        target(name = "Utils"),
        test_target(name = "CoreTests", dependencies = ["Core"]),
    ],
)
`

func testConfig(t *testing.T, output string) ConfigProvider {
	t.Helper()
	manifest := filepath.Join(t.TempDir(), "Package.star")
	require.NoError(t, os.WriteFile(manifest, []byte(testManifest), 0644))
	cfg := &config.Config{
		Manifest:     manifest,
		ToolsVersion: "5",
		OutputFormat: output,
	}
	return func() *config.Config { return cfg }
}

func TestNewDumpCommand(t *testing.T) {
	cmd := NewDumpCommand(testConfig(t, "json"))

	assert.Equal(t, "dump", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestDumpEmitsCanonicalJSON(t *testing.T) {
	cmd := NewDumpCommand(testConfig(t, "json"))
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))

	got := out.String()
	assert.Contains(t, got, `"name": "demo"`)
	assert.Contains(t, got, `"type": "regular"`)
	assert.Contains(t, got, `"type": "byName"`)
	assert.Contains(t, got, `"package": "swift-log"`)
	assert.NotContains(t, got, "cSettings")
}

func TestDumpReportsEvaluationErrors(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "Package.star")
	require.NoError(t, os.WriteFile(manifest, []byte(`package(`), 0644))
	cfg := &config.Config{Manifest: manifest, ToolsVersion: "5", OutputFormat: "json"}

	cmd := NewDumpCommand(func() *config.Config { return cfg })
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.RunE(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Package.star")
}

func TestNewListCommand(t *testing.T) {
	cmd := NewListCommand(testConfig(t, "table"))

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestListRendersTable(t *testing.T) {
	cmd := NewListCommand(testConfig(t, "table"))
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))

	got := out.String()
	assert.Contains(t, got, "Package demo (3 targets)")
	assert.Contains(t, got, "Core")
	assert.Contains(t, got, "Logging (swift-log)")
	assert.Contains(t, got, "(inferred)")
}

func TestListJSONMatchesDump(t *testing.T) {
	provider := testConfig(t, "json")

	var listOut, dumpOut bytes.Buffer
	list := NewListCommand(provider)
	list.SetOut(&listOut)
	require.NoError(t, list.RunE(list, nil))

	dump := NewDumpCommand(provider)
	dump.SetOut(&dumpOut)
	require.NoError(t, dump.RunE(dump, nil))

	assert.Equal(t, dumpOut.String(), listOut.String())
}

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand(testConfig(t, "table"))

	assert.Equal(t, "validate", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestValidateReportsOK(t *testing.T) {
	cmd := NewValidateCommand(testConfig(t, "table"))
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "OK")
	assert.Contains(t, out.String(), "3 targets")
}

func TestNewInitCommand(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("force"), "flag force should exist")
}

func TestInitCreatesStarterFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-package")

	cmd := NewInitCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, []string{dir}))

	assert.FileExists(t, filepath.Join(dir, "Package.star"))
	assert.FileExists(t, filepath.Join(dir, config.ConfigFileName))

	manifest, err := os.ReadFile(filepath.Join(dir, "Package.star"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `name = "my-package"`)
	assert.Contains(t, string(manifest), `test_target`)

	// A second init without --force refuses to overwrite.
	err = cmd.RunE(cmd, []string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")

	assert.Equal(t, "version", cmd.Use)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)
	assert.Contains(t, out.String(), "v1.2.3")
}
