package starlark

import (
	"errors"
	"fmt"
	"os"

	"github.com/irmakcan/swift-package-manager/pkg/manifest"
	"go.starlark.net/starlark"
)

// Evaluator runs one package manifest and collects the declared
// package. An Evaluator is single-use per manifest evaluation and not
// safe for concurrent use; evaluation itself is synchronous and
// side-effect-free beyond descriptor construction.
type Evaluator struct {
	version manifest.ToolsVersion
	pkg     *manifest.Package
}

// New creates an evaluator for the given manifest format version.
func New(version manifest.ToolsVersion) *Evaluator {
	return &Evaluator{version: version}
}

// ExecFile evaluates the manifest at path and returns the declared
// package.
func (e *Evaluator) ExecFile(path string) (*manifest.Package, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return e.ExecSource(path, src)
}

// ExecSource evaluates manifest source. filename is used for error
// positions only. A construction failure inside a builtin aborts
// evaluation; there is no partial result.
func (e *Evaluator) ExecSource(filename string, src any) (*manifest.Package, error) {
	e.pkg = nil

	thread := &starlark.Thread{
		Name: "manifest " + filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(os.Stderr, msg)
		},
	}

	_, err := starlark.ExecFile(thread, filename, src, e.predeclared()) //nolint:staticcheck // SA1019: will migrate to ExecFileOptions later
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return nil, fmt.Errorf("evaluate manifest: %w\n%s", evalErr, evalErr.Backtrace())
		}
		return nil, fmt.Errorf("evaluate manifest: %w", err)
	}

	if e.pkg == nil {
		return nil, fmt.Errorf("manifest %s declared no package()", filename)
	}
	return e.pkg, nil
}
