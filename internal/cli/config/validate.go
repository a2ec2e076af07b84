package config

import (
	"fmt"

	"github.com/irmakcan/swift-package-manager/pkg/manifest"
)

// Validate checks the loaded configuration for values the tool cannot
// work with.
func (c *Config) Validate() error {
	if _, err := manifest.ParseToolsVersion(c.ToolsVersion); err != nil {
		return err
	}
	switch c.OutputFormat {
	case "table", "json":
	default:
		return fmt.Errorf("unsupported output format %q (supported: table, json)", c.OutputFormat)
	}
	if c.Manifest == "" {
		return fmt.Errorf("manifest path is required")
	}
	return nil
}

// Version returns the parsed tools version. Validate must have
// accepted the config first.
func (c *Config) Version() manifest.ToolsVersion {
	v, err := manifest.ParseToolsVersion(c.ToolsVersion)
	if err != nil {
		// Validate rejects unknown versions before commands run.
		return manifest.ToolsVersion5
	}
	return v
}
