// Package manifest defines the declarative data model of a package
// manifest: targets, their dependencies, build settings groups, and
// system library metadata.
//
// This package contains:
//   - Domain entities (Target, Dependency, Setting, SystemPackageProvider)
//   - The version-gated construction surface (NewTarget, NewTestTarget,
//     NewSystemLibrary and their settings-aware counterparts)
//   - The canonical wire serialization consumed by the build-graph builder
//
// The Golden Rule: pkg/manifest imports ONLY the standard library.
// All other packages depend on manifest, not the reverse.
package manifest
