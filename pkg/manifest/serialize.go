package manifest

import (
	"bytes"
	"encoding/json"
)

// The canonical wire shape has a fixed key order so the build-graph
// builder sees a stable object across manifests and format versions.
// encoding/json preserves struct field order but not map order, so the
// target object is assembled field by field.

// objectWriter builds a JSON object with keys in insertion order.
type objectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func newObjectWriter() *objectWriter {
	w := &objectWriter{}
	w.buf.WriteByte('{')
	return w
}

func (w *objectWriter) field(key string, value any) {
	if w.err != nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = err
		return
	}
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(data)
	w.n++
}

func (w *objectWriter) finish() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

// MarshalJSON emits the canonical serialized target. Key order is
// fixed: name, path, sources, exclude, dependencies, publicHeadersPath,
// type, pkgConfig, providers, then each settings group only if it was
// supplied. Absent settings groups are omitted entirely; every other
// optional field is emitted as an explicit null.
func (t *Target) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.field("name", t.Name)
	w.field("path", t.Path)
	w.field("sources", t.Sources)
	w.field("exclude", sliceOrEmpty(t.Exclude))
	w.field("dependencies", sliceOrEmpty(t.Dependencies))
	w.field("publicHeadersPath", t.PublicHeadersPath)
	w.field("type", t.typ)
	w.field("pkgConfig", t.pkgConfig)
	w.field("providers", t.providers)
	if t.CSettings != nil {
		w.field("cSettings", t.CSettings)
	}
	if t.CXXSettings != nil {
		w.field("cxxSettings", t.CXXSettings)
	}
	if t.SwiftSettings != nil {
		w.field("swiftSettings", t.SwiftSettings)
	}
	if t.LinkerSettings != nil {
		w.field("linkerSettings", t.LinkerSettings)
	}
	return w.finish()
}

// MarshalJSON emits the tagged dependency shape the resolver
// pattern-matches on. The package qualifier appears only on product
// references, as an explicit null when unqualified.
func (d Dependency) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.field("type", d.Kind)
	w.field("name", d.Name)
	if d.Kind == DependencyKindProduct {
		w.field("package", optional(d.Package))
	}
	return w.finish()
}

// MarshalJSON emits a setting record as {"name": ..., "values": [...]}.
func (s Setting) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.field("name", s.Name)
	w.field("values", sliceOrEmpty(s.Values))
	return w.finish()
}

// MarshalJSON emits a provider as {"kind": ..., "packages": [...]}.
func (p SystemPackageProvider) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.field("kind", p.Kind)
	w.field("packages", sliceOrEmpty(p.Packages))
	return w.finish()
}

// sliceOrEmpty keeps mutated-to-nil list fields serializing as [],
// never null.
func sliceOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
