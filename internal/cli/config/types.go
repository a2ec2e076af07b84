// Package config provides configuration management for the swiftpkg
// CLI. Values come from swiftpkg.yaml, environment variables and
// command-line flags, with precedence flags > env > file > defaults.
package config

// Default configuration values.
const (
	// DefaultManifest is the manifest file evaluated by default.
	DefaultManifest = "Package.star"
	// DefaultToolsVersion is the manifest format assumed when a
	// package declares none.
	DefaultToolsVersion = "5"
	// DefaultOutput is the default output mode.
	DefaultOutput = "table"
)

// Config holds all CLI configuration options.
type Config struct {
	// Manifest is the path to the package manifest file.
	Manifest string `koanf:"manifest"`
	// ToolsVersion selects the manifest format surface ("4" or "5").
	ToolsVersion string `koanf:"tools_version"`
	// OutputFormat is "table" or "json".
	OutputFormat string `koanf:"output"`
	// Verbose enables diagnostic output on stderr.
	Verbose bool `koanf:"verbose"`

	// ProjectRoot is the directory the config file was found in, or
	// the working directory. Not a config key.
	ProjectRoot string `koanf:"-"`
}
