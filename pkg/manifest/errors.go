package manifest

import "fmt"

// InvalidTargetError reports a nonsensical target configuration, such
// as system-library-only fields on a source-compiled target. It is the
// single error kind raised by this package; callers treat it as a
// manifest authoring bug that aborts evaluation.
type InvalidTargetError struct {
	// Target is the name of the offending target.
	Target string
	// Reason describes the violated constraint.
	Reason string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target %q: %s", e.Target, e.Reason)
}
