// Package starlark provides the Starlark evaluation surface for
// package manifests: the builtins author code calls in Package.star
// and the bridging between Starlark values and the manifest core.
package starlark

import (
	"fmt"

	"github.com/irmakcan/swift-package-manager/pkg/manifest"
	"go.starlark.net/starlark"
)

// Dependency wraps a manifest dependency as an immutable Starlark
// value produced by the dep module.
type Dependency struct {
	Dep manifest.Dependency
}

func (d Dependency) String() string {
	if d.Dep.Kind == manifest.DependencyKindProduct && d.Dep.Package != "" {
		return fmt.Sprintf("<dependency %s %q package=%q>", d.Dep.Kind, d.Dep.Name, d.Dep.Package)
	}
	return fmt.Sprintf("<dependency %s %q>", d.Dep.Kind, d.Dep.Name)
}

func (d Dependency) Type() string          { return "dependency" }
func (d Dependency) Freeze()               {}
func (d Dependency) Truth() starlark.Bool  { return starlark.True }
func (d Dependency) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: dependency") }

// Setting wraps an opaque build setting record produced by the setting
// builtin.
type Setting struct {
	Setting manifest.Setting
}

func (s Setting) String() string        { return fmt.Sprintf("<setting %q>", s.Setting.Name) }
func (s Setting) Type() string          { return "setting" }
func (s Setting) Freeze()               {}
func (s Setting) Truth() starlark.Bool  { return starlark.True }
func (s Setting) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: setting") }

// Provider wraps a system package provider produced by the provider
// module.
type Provider struct {
	Provider manifest.SystemPackageProvider
}

func (p Provider) String() string        { return fmt.Sprintf("<provider %s>", p.Provider.Kind) }
func (p Provider) Type() string          { return "provider" }
func (p Provider) Freeze()               {}
func (p Provider) Truth() starlark.Bool  { return starlark.True }
func (p Provider) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: provider") }

// Target wraps a constructed target descriptor so it can be collected
// into the package() declaration.
type Target struct {
	Target *manifest.Target
}

func (t Target) String() string {
	return fmt.Sprintf("<target %s %q>", t.Target.Type(), t.Target.Name)
}

func (t Target) Type() string          { return "target" }
func (t Target) Freeze()               {}
func (t Target) Truth() starlark.Bool  { return starlark.True }
func (t Target) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: target") }

// optString converts an optional string argument. None and an unset
// argument both mean "not supplied".
func optString(v starlark.Value, arg string) (string, error) {
	switch val := v.(type) {
	case nil, starlark.NoneType:
		return "", nil
	case starlark.String:
		return string(val), nil
	default:
		return "", fmt.Errorf("%s: got %s, want string or None", arg, v.Type())
	}
}

// stringList converts a list/tuple of strings. None and an unset
// argument yield nil.
func stringList(v starlark.Value, arg string) ([]string, error) {
	if v == nil || v == starlark.None {
		return nil, nil
	}
	seq, ok := v.(starlark.Sequence)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want sequence of strings", arg, v.Type())
	}
	out := make([]string, 0, seq.Len())
	iter := seq.Iterate()
	defer iter.Done()
	var item starlark.Value
	for iter.Next(&item) {
		s, ok := item.(starlark.String)
		if !ok {
			return nil, fmt.Errorf("%s: element %d: got %s, want string", arg, len(out), item.Type())
		}
		out = append(out, string(s))
	}
	return out, nil
}

// dependencyList converts a dependency list, normalizing the bare
// string shorthand to a by-name reference.
func dependencyList(v starlark.Value, arg string) ([]manifest.Dependency, error) {
	if v == nil || v == starlark.None {
		return nil, nil
	}
	seq, ok := v.(starlark.Sequence)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want sequence of dependencies", arg, v.Type())
	}
	out := make([]manifest.Dependency, 0, seq.Len())
	iter := seq.Iterate()
	defer iter.Done()
	var item starlark.Value
	for iter.Next(&item) {
		switch val := item.(type) {
		case starlark.String:
			out = append(out, manifest.ByName(string(val)))
		case Dependency:
			out = append(out, val.Dep)
		default:
			return nil, fmt.Errorf("%s: element %d: got %s, want string or dependency",
				arg, len(out), item.Type())
		}
	}
	return out, nil
}

// settingsGroup converts an optional settings list. None means the
// group was never supplied; an empty list is a supplied-empty group.
func settingsGroup(v starlark.Value, arg string) ([]manifest.Setting, error) {
	if v == nil || v == starlark.None {
		return nil, nil
	}
	seq, ok := v.(starlark.Sequence)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want sequence of settings", arg, v.Type())
	}
	out := make([]manifest.Setting, 0, seq.Len())
	iter := seq.Iterate()
	defer iter.Done()
	var item starlark.Value
	for iter.Next(&item) {
		s, ok := item.(Setting)
		if !ok {
			return nil, fmt.Errorf("%s: element %d: got %s, want setting", arg, len(out), item.Type())
		}
		out = append(out, s.Setting)
	}
	return out, nil
}

// providerList converts an optional provider list. None yields nil,
// which serializes as an absent provider set.
func providerList(v starlark.Value, arg string) ([]manifest.SystemPackageProvider, error) {
	if v == nil || v == starlark.None {
		return nil, nil
	}
	seq, ok := v.(starlark.Sequence)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want sequence of providers", arg, v.Type())
	}
	out := make([]manifest.SystemPackageProvider, 0, seq.Len())
	iter := seq.Iterate()
	defer iter.Done()
	var item starlark.Value
	for iter.Next(&item) {
		p, ok := item.(Provider)
		if !ok {
			return nil, fmt.Errorf("%s: element %d: got %s, want provider", arg, len(out), item.Type())
		}
		out = append(out, p.Provider)
	}
	return out, nil
}

// targetList converts the package() targets argument.
func targetList(v starlark.Value, arg string) ([]*manifest.Target, error) {
	if v == nil || v == starlark.None {
		return nil, nil
	}
	seq, ok := v.(starlark.Sequence)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want sequence of targets", arg, v.Type())
	}
	out := make([]*manifest.Target, 0, seq.Len())
	iter := seq.Iterate()
	defer iter.Done()
	var item starlark.Value
	for iter.Next(&item) {
		t, ok := item.(Target)
		if !ok {
			return nil, fmt.Errorf("%s: element %d: got %s, want target", arg, len(out), item.Type())
		}
		out = append(out, t.Target)
	}
	return out, nil
}
