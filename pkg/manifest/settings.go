package manifest

// Setting is one opaque build setting record inside a settings group.
// This core carries settings through to the build-graph builder without
// interpreting them; translation to compiler or linker flags happens in
// the build driver.
type Setting struct {
	// Name identifies the setting (e.g. "define", "headerSearchPath",
	// "unsafeFlags").
	Name string
	// Values are the setting's arguments, in author order.
	Values []string
}

// NewSetting constructs an opaque setting record.
func NewSetting(name string, values ...string) Setting {
	return Setting{Name: name, Values: values}
}
