package manifest

// Package is the manifest aggregate: a named package and the targets
// it declares. Ordering among targets carries no meaning at this layer;
// the build graph orders them by dependency.
type Package struct {
	Name    string
	Targets []*Target
}

// Target returns the first declared target with the given name, or nil.
// Name uniqueness is enforced by the external graph, not here.
func (p *Package) Target(name string) *Target {
	for _, t := range p.Targets {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// MarshalJSON emits {"name": ..., "targets": [...]} with each target in
// declaration order in its canonical shape.
func (p *Package) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.field("name", p.Name)
	w.field("targets", sliceOrEmpty(p.Targets))
	return w.finish()
}
