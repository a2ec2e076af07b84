package manifest

// DependencyKind is the canonical tag of a dependency reference.
type DependencyKind string

// Dependency kind constants. These are the internal canonical tags and
// also the wire tags the resolver pattern-matches on.
const (
	// DependencyKindTarget references another target by name.
	DependencyKindTarget DependencyKind = "target"
	// DependencyKindProduct references a product vended by a package
	// dependency, optionally qualified with the owning package name.
	DependencyKindProduct DependencyKind = "product"
	// DependencyKindByName carries a bare name resolved to a target or
	// product once the whole package graph is known.
	DependencyKindByName DependencyKind = "byName"
)

// Dependency is a tagged reference from one target to another target,
// to a product, or to an unresolved name. Name syntax is not validated
// here; the graph resolver owns that.
type Dependency struct {
	// Kind selects which reference shape this is.
	Kind DependencyKind
	// Name is the referenced target, product, or unresolved name.
	Name string
	// Package qualifies a product reference with its owning package.
	// Empty means unqualified. Meaningless for other kinds.
	Package string
}

// TargetDependency references a target in the same package by name.
func TargetDependency(name string) Dependency {
	return Dependency{Kind: DependencyKindTarget, Name: name}
}

// ProductDependency references a product vended by a package
// dependency. An empty pkg leaves the reference unqualified; the
// package name disambiguates when multiple dependencies vend a product
// of the same name.
func ProductDependency(name, pkg string) Dependency {
	return Dependency{Kind: DependencyKindProduct, Name: name, Package: pkg}
}

// ByName references a target or product by bare name, resolved later
// by the graph. A plain string used where a dependency is expected
// normalizes to this shape.
func ByName(name string) Dependency {
	return Dependency{Kind: DependencyKindByName, Name: name}
}
