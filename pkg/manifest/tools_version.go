package manifest

import "fmt"

// ToolsVersion is the manifest format version declared by a package.
// It selects which construction surface is available to author code:
// version 4 predates per-language build settings and system library
// targets, version 5 adds both.
type ToolsVersion string

// Supported manifest format versions.
const (
	ToolsVersion4 ToolsVersion = "4"
	ToolsVersion5 ToolsVersion = "5"
)

// ParseToolsVersion validates a version string from configuration.
func ParseToolsVersion(s string) (ToolsVersion, error) {
	switch ToolsVersion(s) {
	case ToolsVersion4, ToolsVersion5:
		return ToolsVersion(s), nil
	default:
		return "", fmt.Errorf("unsupported tools version %q (supported: 4, 5)", s)
	}
}

// SupportsBuildSettings reports whether this format version offers the
// per-language settings groups and the system library constructor.
func (v ToolsVersion) SupportsBuildSettings() bool {
	return v == ToolsVersion5
}
