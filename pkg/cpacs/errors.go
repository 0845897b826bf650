package cpacs

import (
	"errors"
	"fmt"
)

// ErrKernelUnavailable is returned when a load requires geometry kernel
// support but no kernel provider is registered in this process. There is no
// degraded mode; document-only operations do not need the kernel.
var ErrKernelUnavailable = errors.New("geometry kernel support is not available")

// NotFoundError is returned when the CPACS source file does not exist
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %q not found", e.Path)
}

// MissingPathError is returned when an expected element or attribute is
// absent from the CPACS document.
type MissingPathError struct {
	Path string
	Attr string // empty for element lookups
}

func (e *MissingPathError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("attribute %q not found at %q", e.Attr, e.Path)
	}
	return fmt.Sprintf("element %q not found", e.Path)
}

// ValidationError is returned when the source violates a domain rule, such
// as declaring zero wings or an empty airfoil profile name.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// QueryError wraps a failed geometry kernel query
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("geometry query %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
