package linalg

import "fmt"

// PreconditionError reports inputs for which a projection or view matrix is
// undefined. Nothing is computed in that case, so no NaNs leak into uniforms.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
