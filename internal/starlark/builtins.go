package starlark

import (
	"fmt"

	"github.com/irmakcan/swift-package-manager/pkg/manifest"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Predeclared returns the builtin globals available to a manifest
// declared for the given tools version. The version decides which
// constructor surface exists: version 4 manifests see target and
// test_target without settings keywords, version 5 adds the settings
// keywords and the system_library constructor.
func (e *Evaluator) predeclared() starlark.StringDict {
	globals := starlark.StringDict{
		"package":     starlark.NewBuiltin("package", e.declarePackage),
		"target":      starlark.NewBuiltin("target", e.makeTarget),
		"test_target": starlark.NewBuiltin("test_target", e.makeTestTarget),
		"setting":     starlark.NewBuiltin("setting", makeSetting),
		"dep":         DepModule(),
	}

	if e.version.SupportsBuildSettings() {
		globals["system_library"] = starlark.NewBuiltin("system_library", e.makeSystemLibrary)
		globals["provider"] = ProviderModule()
	}

	return globals
}

// DepModule returns the "dep" module: dependency reference builders.
func DepModule() *starlarkstruct.Module {
	return &starlarkstruct.Module{
		Name: "dep",
		Members: starlark.StringDict{
			"target":  starlark.NewBuiltin("dep.target", depTarget),
			"product": starlark.NewBuiltin("dep.product", depProduct),
			"by_name": starlark.NewBuiltin("dep.by_name", depByName),
		},
	}
}

// ProviderModule returns the "provider" module: system package
// provider builders.
func ProviderModule() *starlarkstruct.Module {
	return &starlarkstruct.Module{
		Name: "provider",
		Members: starlark.StringDict{
			"brew": starlark.NewBuiltin("provider.brew", providerBrew),
			"apt":  starlark.NewBuiltin("provider.apt", providerApt),
		},
	}
}

func (e *Evaluator) declarePackage(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var targets starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &name, "targets?", &targets); err != nil {
		return nil, err
	}

	if e.pkg != nil {
		return nil, fmt.Errorf("package() declared more than once")
	}

	ts, err := targetList(targets, "targets")
	if err != nil {
		return nil, err
	}
	e.pkg = &manifest.Package{Name: name, Targets: ts}
	return starlark.None, nil
}

// targetArgs is the shared argument set of the target and test_target
// builtins. public_headers_path is unpacked only for regular targets,
// the settings keywords only for versions that support them.
type targetArgs struct {
	name          string
	deps          starlark.Value
	path          starlark.Value
	exclude       starlark.Value
	sources       starlark.Value
	publicHeaders starlark.Value
	c, cxx, swift starlark.Value
	linker        starlark.Value
}

func (e *Evaluator) unpackTargetArgs(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, withHeaders bool) (*targetArgs, error) {
	a := &targetArgs{}
	pairs := []any{
		"name", &a.name,
		"dependencies?", &a.deps,
		"path?", &a.path,
		"exclude?", &a.exclude,
		"sources?", &a.sources,
	}
	if withHeaders {
		pairs = append(pairs, "public_headers_path?", &a.publicHeaders)
	}
	if e.version.SupportsBuildSettings() {
		pairs = append(pairs,
			"c_settings?", &a.c,
			"cxx_settings?", &a.cxx,
			"swift_settings?", &a.swift,
			"linker_settings?", &a.linker,
		)
	}
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, pairs...); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *targetArgs) settings() (manifest.TargetSettings, error) {
	var s manifest.TargetSettings
	var err error
	if s.C, err = settingsGroup(a.c, "c_settings"); err != nil {
		return s, err
	}
	if s.CXX, err = settingsGroup(a.cxx, "cxx_settings"); err != nil {
		return s, err
	}
	if s.Swift, err = settingsGroup(a.swift, "swift_settings"); err != nil {
		return s, err
	}
	if s.Linker, err = settingsGroup(a.linker, "linker_settings"); err != nil {
		return s, err
	}
	return s, nil
}

func (e *Evaluator) makeTarget(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	a, err := e.unpackTargetArgs(b, args, kwargs, true)
	if err != nil {
		return nil, err
	}

	spec := manifest.TargetSpec{Name: a.name}
	if spec.Dependencies, err = dependencyList(a.deps, "dependencies"); err != nil {
		return nil, err
	}
	if spec.Path, err = optString(a.path, "path"); err != nil {
		return nil, err
	}
	if spec.Exclude, err = stringList(a.exclude, "exclude"); err != nil {
		return nil, err
	}
	if spec.Sources, err = stringList(a.sources, "sources"); err != nil {
		return nil, err
	}
	if spec.PublicHeadersPath, err = optString(a.publicHeaders, "public_headers_path"); err != nil {
		return nil, err
	}

	if !e.version.SupportsBuildSettings() {
		t, err := manifest.NewTarget(spec)
		if err != nil {
			return nil, err
		}
		return Target{Target: t}, nil
	}

	settings, err := a.settings()
	if err != nil {
		return nil, err
	}
	t, err := manifest.NewTargetWithSettings(spec, settings)
	if err != nil {
		return nil, err
	}
	return Target{Target: t}, nil
}

func (e *Evaluator) makeTestTarget(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	a, err := e.unpackTargetArgs(b, args, kwargs, false)
	if err != nil {
		return nil, err
	}

	spec := manifest.TestTargetSpec{Name: a.name}
	if spec.Dependencies, err = dependencyList(a.deps, "dependencies"); err != nil {
		return nil, err
	}
	if spec.Path, err = optString(a.path, "path"); err != nil {
		return nil, err
	}
	if spec.Exclude, err = stringList(a.exclude, "exclude"); err != nil {
		return nil, err
	}
	if spec.Sources, err = stringList(a.sources, "sources"); err != nil {
		return nil, err
	}

	if !e.version.SupportsBuildSettings() {
		t, err := manifest.NewTestTarget(spec)
		if err != nil {
			return nil, err
		}
		return Target{Target: t}, nil
	}

	settings, err := a.settings()
	if err != nil {
		return nil, err
	}
	t, err := manifest.NewTestTargetWithSettings(spec, settings)
	if err != nil {
		return nil, err
	}
	return Target{Target: t}, nil
}

func (e *Evaluator) makeSystemLibrary(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var path, pkgConfig, providers starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &name,
		"path?", &path,
		"pkg_config?", &pkgConfig,
		"providers?", &providers); err != nil {
		return nil, err
	}

	spec := manifest.SystemLibrarySpec{Name: name}
	var err error
	if spec.Path, err = optString(path, "path"); err != nil {
		return nil, err
	}
	if spec.PkgConfig, err = optString(pkgConfig, "pkg_config"); err != nil {
		return nil, err
	}
	if spec.Providers, err = providerList(providers, "providers"); err != nil {
		return nil, err
	}

	t, err := manifest.NewSystemLibrary(spec)
	if err != nil {
		return nil, err
	}
	return Target{Target: t}, nil
}

// makeSetting implements setting(name, *values): an opaque build
// setting record.
func makeSetting(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	if len(args) < 1 {
		return nil, fmt.Errorf("%s: missing setting name", b.Name())
	}
	name, ok := args[0].(starlark.String)
	if !ok {
		return nil, fmt.Errorf("%s: name: got %s, want string", b.Name(), args[0].Type())
	}
	values := make([]string, 0, len(args)-1)
	for i, arg := range args[1:] {
		v, ok := arg.(starlark.String)
		if !ok {
			return nil, fmt.Errorf("%s: value %d: got %s, want string", b.Name(), i, arg.Type())
		}
		values = append(values, string(v))
	}
	return Setting{Setting: manifest.NewSetting(string(name), values...)}, nil
}

func depTarget(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}
	return Dependency{Dep: manifest.TargetDependency(name)}, nil
}

func depProduct(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var pkg starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "package?", &pkg); err != nil {
		return nil, err
	}
	pkgName, err := optString(pkg, "package")
	if err != nil {
		return nil, err
	}
	return Dependency{Dep: manifest.ProductDependency(name, pkgName)}, nil
}

func depByName(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}
	return Dependency{Dep: manifest.ByName(name)}, nil
}

func providerBrew(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	pkgs, err := unpackPackages(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return Provider{Provider: manifest.Brew(pkgs...)}, nil
}

func providerApt(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	pkgs, err := unpackPackages(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return Provider{Provider: manifest.Apt(pkgs...)}, nil
}

func unpackPackages(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) ([]string, error) {
	var packages starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "packages", &packages); err != nil {
		return nil, err
	}
	return stringList(packages, "packages")
}
