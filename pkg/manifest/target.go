package manifest

// TargetType represents the semantic type of a target.
type TargetType string

// Target type constants.
const (
	// TypeRegular is a library or executable target built from sources.
	TypeRegular TargetType = "regular"
	// TypeTest is a test suite target.
	TypeTest TargetType = "test"
	// TypeSystem is an adapter target for a system-installed library.
	TypeSystem TargetType = "system"
)

// Target represents one compilation unit declared in a package manifest.
//
// The file-selection fields (Path, Sources, Exclude) are hints for the
// external source discovery engine and are carried verbatim: a nil
// Sources slice means "infer from Path", a non-nil slice bypasses
// discovery, and Exclude takes precedence over inference. Dependency
// order is preserved; duplicates are allowed and disambiguated later by
// the graph resolver.
//
// The type, pkgConfig and providers fields are fixed at construction.
// Everything else may be reassigned by author code between construction
// and serialization.
type Target struct {
	// Name identifies the target within its package.
	Name string
	// Path is the custom source root relative to the package root,
	// or nil to use the conventional location.
	Path *string
	// Sources is the explicit source file list, or nil to infer.
	Sources []string
	// Exclude lists paths omitted during source inference.
	Exclude []string
	// Dependencies are the entities this target builds against.
	Dependencies []Dependency
	// PublicHeadersPath is the public headers directory for C-family
	// library targets, or nil for the conventional "include".
	PublicHeadersPath *string

	// Per-language build settings groups. A nil group was never
	// supplied and is omitted from serialization; a non-nil empty
	// group was supplied empty and is emitted.
	CSettings      []Setting
	CXXSettings    []Setting
	SwiftSettings  []Setting
	LinkerSettings []Setting

	typ       TargetType
	pkgConfig *string
	providers []SystemPackageProvider
}

// Type returns the target type, fixed at construction.
func (t *Target) Type() TargetType {
	return t.typ
}

// IsTest reports whether this is a test suite target.
func (t *Target) IsTest() bool {
	return t.typ == TypeTest
}

// PkgConfig returns the pkg-config name of a system library target,
// or nil for non-system targets.
func (t *Target) PkgConfig() *string {
	return t.pkgConfig
}

// Providers returns the system package providers of a system library
// target, or nil for non-system targets.
func (t *Target) Providers() []SystemPackageProvider {
	return t.providers
}

// TargetSpec holds the author-supplied arguments shared by the regular
// target constructors. Zero values mean "not supplied": an empty Path
// or PublicHeadersPath leaves the field unset, a nil Sources slice
// requests inference.
type TargetSpec struct {
	Name              string
	Dependencies      []Dependency
	Path              string
	Exclude           []string
	Sources           []string
	PublicHeadersPath string
}

// TestTargetSpec holds the author-supplied arguments for test target
// constructors. Test targets have no public headers directory, so the
// field does not exist here.
type TestTargetSpec struct {
	Name         string
	Dependencies []Dependency
	Path         string
	Exclude      []string
	Sources      []string
}

// SystemLibrarySpec holds the author-supplied arguments for system
// library targets. System libraries carry no sources, dependencies or
// build settings, so those fields do not exist here.
type SystemLibrarySpec struct {
	Name      string
	Path      string
	PkgConfig string
	Providers []SystemPackageProvider
}

// TargetSettings holds the optional per-language settings groups
// accepted by the settings-aware constructors. A nil slice means the
// group was not supplied.
type TargetSettings struct {
	C      []Setting
	CXX    []Setting
	Swift  []Setting
	Linker []Setting
}

// NewTarget constructs a regular (library or executable) target using
// the pre-settings manifest format surface.
func NewTarget(spec TargetSpec) (*Target, error) {
	return NewTargetWithSettings(spec, TargetSettings{})
}

// NewTargetWithSettings constructs a regular target using the manifest
// format surface that accepts per-language build settings. Called with
// zero TargetSettings it produces a target indistinguishable on the
// wire from NewTarget with the same spec.
func NewTargetWithSettings(spec TargetSpec, settings TargetSettings) (*Target, error) {
	return newTarget(TypeRegular, targetFields{
		name:              spec.Name,
		dependencies:      spec.Dependencies,
		path:              optional(spec.Path),
		exclude:           spec.Exclude,
		sources:           spec.Sources,
		publicHeadersPath: optional(spec.PublicHeadersPath),
		settings:          settings,
	})
}

// NewTestTarget constructs a test target using the pre-settings
// manifest format surface.
func NewTestTarget(spec TestTargetSpec) (*Target, error) {
	return NewTestTargetWithSettings(spec, TargetSettings{})
}

// NewTestTargetWithSettings constructs a test target using the manifest
// format surface that accepts per-language build settings.
func NewTestTargetWithSettings(spec TestTargetSpec, settings TargetSettings) (*Target, error) {
	return newTarget(TypeTest, targetFields{
		name:         spec.Name,
		dependencies: spec.Dependencies,
		path:         optional(spec.Path),
		exclude:      spec.Exclude,
		sources:      spec.Sources,
		settings:     settings,
	})
}

// NewSystemLibrary constructs a system library target. Available only
// in the newer manifest format.
func NewSystemLibrary(spec SystemLibrarySpec) (*Target, error) {
	return newTarget(TypeSystem, targetFields{
		name:      spec.Name,
		path:      optional(spec.Path),
		pkgConfig: optional(spec.PkgConfig),
		providers: spec.Providers,
	})
}

// targetFields is the full canonical field set funneled into the shared
// constructor. The public constructors narrow it per target type and
// format version; newTarget itself never branches on either.
type targetFields struct {
	name              string
	dependencies      []Dependency
	path              *string
	exclude           []string
	sources           []string
	publicHeadersPath *string
	pkgConfig         *string
	providers         []SystemPackageProvider
	settings          TargetSettings
}

// newTarget is the shared constructor behind every public construction
// path. The pkgConfig/providers-vs-type invariant is the only runtime
// validation performed in this package; path syntax, name uniqueness
// and dependency resolution are the graph's responsibility.
func newTarget(typ TargetType, f targetFields) (*Target, error) {
	if typ != TypeSystem && (f.pkgConfig != nil || f.providers != nil) {
		return nil, &InvalidTargetError{
			Target: f.name,
			Reason: "pkgConfig and providers are only valid for system library targets",
		}
	}

	t := &Target{
		Name:              f.name,
		Path:              f.path,
		Sources:           f.sources,
		Dependencies:      f.dependencies,
		PublicHeadersPath: f.publicHeadersPath,
		CSettings:         f.settings.C,
		CXXSettings:       f.settings.CXX,
		SwiftSettings:     f.settings.Swift,
		LinkerSettings:    f.settings.Linker,
		typ:               typ,
		pkgConfig:         f.pkgConfig,
		providers:         f.providers,
	}
	t.Exclude = f.exclude
	if t.Exclude == nil {
		t.Exclude = []string{}
	}
	if t.Dependencies == nil {
		t.Dependencies = []Dependency{}
	}
	return t, nil
}

// optional maps the empty string to "not supplied".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
