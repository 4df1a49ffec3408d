package engine

import "fmt"

// ImportError reports why an import payload was rejected. Rejection leaves
// the stored state untouched.
type ImportError struct {
	Reason string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("invalid import payload: %s", e.Reason)
}
