package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTargetDefaults(t *testing.T) {
	target, err := NewTarget(TargetSpec{Name: "Core"})
	require.NoError(t, err)

	assert.Equal(t, "Core", target.Name)
	assert.Equal(t, TypeRegular, target.Type())
	assert.Nil(t, target.Path)
	assert.Nil(t, target.Sources, "nil sources means infer")
	assert.Equal(t, []string{}, target.Exclude)
	assert.Equal(t, []Dependency{}, target.Dependencies)
	assert.Nil(t, target.PublicHeadersPath)
	assert.Nil(t, target.PkgConfig())
	assert.Nil(t, target.Providers())
	assert.Nil(t, target.CSettings)
	assert.Nil(t, target.CXXSettings)
	assert.Nil(t, target.SwiftSettings)
	assert.Nil(t, target.LinkerSettings)
}

func TestNewTargetPreservesFileSelection(t *testing.T) {
	target, err := NewTarget(TargetSpec{
		Name:              "Core",
		Path:              "Sources/Core",
		Exclude:           []string{"fixtures"},
		Sources:           []string{"a.c", "b.c"},
		PublicHeadersPath: "headers",
	})
	require.NoError(t, err)

	require.NotNil(t, target.Path)
	assert.Equal(t, "Sources/Core", *target.Path)
	assert.Equal(t, []string{"a.c", "b.c"}, target.Sources)
	assert.Equal(t, []string{"fixtures"}, target.Exclude)
	require.NotNil(t, target.PublicHeadersPath)
	assert.Equal(t, "headers", *target.PublicHeadersPath)
}

func TestNewTestTarget(t *testing.T) {
	target, err := NewTestTarget(TestTargetSpec{
		Name:         "CoreTests",
		Dependencies: []Dependency{TargetDependency("Core")},
	})
	require.NoError(t, err)

	assert.Equal(t, TypeTest, target.Type())
	assert.Nil(t, target.PublicHeadersPath, "test targets have no public headers")
	assert.Equal(t, []Dependency{TargetDependency("Core")}, target.Dependencies)
}

func TestNewSystemLibrary(t *testing.T) {
	target, err := NewSystemLibrary(SystemLibrarySpec{
		Name:      "CZlib",
		PkgConfig: "zlib",
		Providers: []SystemPackageProvider{Brew("zlib"), Apt("zlib1g-dev")},
	})
	require.NoError(t, err)

	assert.Equal(t, TypeSystem, target.Type())
	require.NotNil(t, target.PkgConfig())
	assert.Equal(t, "zlib", *target.PkgConfig())
	assert.Len(t, target.Providers(), 2)
	assert.Nil(t, target.Sources)
	assert.Equal(t, []string{}, target.Exclude)
	assert.Equal(t, []Dependency{}, target.Dependencies)
	assert.Nil(t, target.PublicHeadersPath)
}

func TestSystemFieldsRejectedForSourceTargets(t *testing.T) {
	pkgConfig := "zlib"

	tests := []struct {
		name   string
		typ    TargetType
		fields targetFields
	}{
		{
			name:   "regular with pkgConfig",
			typ:    TypeRegular,
			fields: targetFields{name: "Core", pkgConfig: &pkgConfig},
		},
		{
			name:   "regular with providers",
			typ:    TypeRegular,
			fields: targetFields{name: "Core", providers: []SystemPackageProvider{Brew("zlib")}},
		},
		{
			name:   "test with pkgConfig",
			typ:    TypeTest,
			fields: targetFields{name: "CoreTests", pkgConfig: &pkgConfig},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := newTarget(tt.typ, tt.fields)
			assert.Nil(t, target)

			var invalid *InvalidTargetError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.fields.name, invalid.Target)
			assert.Contains(t, invalid.Error(), "system library")
		})
	}
}

func TestIsTestFollowsType(t *testing.T) {
	regular, err := NewTarget(TargetSpec{Name: "Core"})
	require.NoError(t, err)
	test, err := NewTestTarget(TestTargetSpec{Name: "CoreTests"})
	require.NoError(t, err)
	system, err := NewSystemLibrary(SystemLibrarySpec{Name: "CZlib"})
	require.NoError(t, err)

	assert.False(t, regular.IsTest())
	assert.True(t, test.IsTest())
	assert.False(t, system.IsTest())
}

func TestOldAndNewSurfacesAgree(t *testing.T) {
	spec := TargetSpec{
		Name:         "Core",
		Dependencies: []Dependency{ByName("Utils")},
		Path:         "Sources/Core",
		Exclude:      []string{"fixtures"},
	}

	old, err := NewTarget(spec)
	require.NoError(t, err)
	updated, err := NewTargetWithSettings(spec, TargetSettings{})
	require.NoError(t, err)

	assert.Equal(t, old, updated, "settings-less descriptors must be identical across surfaces")

	oldJSON, err := old.MarshalJSON()
	require.NoError(t, err)
	newJSON, err := updated.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, string(oldJSON), string(newJSON))
}

func TestSettingsGroupsIndependentlyPresent(t *testing.T) {
	target, err := NewTargetWithSettings(TargetSpec{Name: "Core"}, TargetSettings{
		Linker: []Setting{NewSetting("linkedLibrary", "z")},
	})
	require.NoError(t, err)

	assert.Nil(t, target.CSettings)
	assert.Nil(t, target.CXXSettings)
	assert.Nil(t, target.SwiftSettings)
	require.Len(t, target.LinkerSettings, 1)
	assert.Equal(t, "linkedLibrary", target.LinkerSettings[0].Name)
}

func TestEmptySuppliedGroupStaysPresent(t *testing.T) {
	target, err := NewTargetWithSettings(TargetSpec{Name: "Core"}, TargetSettings{
		Swift: []Setting{},
	})
	require.NoError(t, err)

	assert.NotNil(t, target.SwiftSettings, "supplied-empty group is present, not absent")
	assert.Empty(t, target.SwiftSettings)
}

func TestDependencyConstructors(t *testing.T) {
	tests := []struct {
		name string
		dep  Dependency
		want Dependency
	}{
		{
			name: "target",
			dep:  TargetDependency("Core"),
			want: Dependency{Kind: DependencyKindTarget, Name: "Core"},
		},
		{
			name: "qualified product",
			dep:  ProductDependency("Logging", "swift-log"),
			want: Dependency{Kind: DependencyKindProduct, Name: "Logging", Package: "swift-log"},
		},
		{
			name: "unqualified product",
			dep:  ProductDependency("Logging", ""),
			want: Dependency{Kind: DependencyKindProduct, Name: "Logging"},
		},
		{
			name: "by name",
			dep:  ByName("Utils"),
			want: Dependency{Kind: DependencyKindByName, Name: "Utils"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dep)
		})
	}
}

func TestParseToolsVersion(t *testing.T) {
	v, err := ParseToolsVersion("4")
	require.NoError(t, err)
	assert.Equal(t, ToolsVersion4, v)
	assert.False(t, v.SupportsBuildSettings())

	v, err = ParseToolsVersion("5")
	require.NoError(t, err)
	assert.True(t, v.SupportsBuildSettings())

	_, err = ParseToolsVersion("3")
	assert.Error(t, err)
}
