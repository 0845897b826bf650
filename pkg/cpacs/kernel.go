package cpacs

import (
	"github.com/mvenner/gocpacs/pkg/geometry"
	"github.com/mvenner/gocpacs/pkg/model"
)

// Kernel answers geometry queries on the lofted wing surfaces of an opened
// CPACS document. Wing, segment, section and element indices are 1-based,
// matching the source format.
//
// A Kernel handle carries mutable query state and is not safe for
// concurrent use. All queries for one load must run sequentially against
// one handle; concurrent loads need separate handles.
type Kernel interface {
	// LowerPoint returns the point on the lower wing surface at the
	// relative segment coordinates eta (span) and xsi (chord).
	LowerPoint(wing, segment int, eta, xsi float64) (geometry.Vector3, error)

	// UpperPoint returns the point on the upper wing surface
	UpperPoint(wing, segment int, eta, xsi float64) (geometry.Vector3, error)

	// WingSymmetry returns the symmetry plane of a wing
	WingSymmetry(wing int) (model.Symmetry, error)

	// InnerSectionElement returns the section and element index at the
	// inner border of a segment.
	InnerSectionElement(wing, segment int) (section, element int, err error)

	// OuterSectionElement returns the section and element index at the
	// outer border of a segment.
	OuterSectionElement(wing, segment int) (section, element int, err error)

	// ProfileName returns the airfoil profile name for a section element
	ProfileName(wing, section, element int) (string, error)

	// Close releases any native resources held by the handle
	Close() error
}

// KernelProvider opens a Kernel for a document
type KernelProvider interface {
	Open(doc *Document) (Kernel, error)
}

// KernelCapability is the resolved availability of geometry kernel support.
// The zero value is the unavailable variant: Open fails with
// ErrKernelUnavailable.
type KernelCapability struct {
	provider KernelProvider
}

// NewKernelCapability wraps a provider into an available capability
func NewKernelCapability(p KernelProvider) KernelCapability {
	return KernelCapability{provider: p}
}

// UnavailableKernel returns the capability of a process without kernel
// support.
func UnavailableKernel() KernelCapability {
	return KernelCapability{}
}

// Available reports whether kernel support is present
func (c KernelCapability) Available() bool {
	return c.provider != nil
}

// Open opens a kernel handle for the document
func (c KernelCapability) Open(doc *Document) (Kernel, error) {
	if c.provider == nil {
		return nil, ErrKernelUnavailable
	}
	return c.provider.Open(doc)
}

var defaultProvider KernelProvider

// RegisterKernelProvider installs the process-wide kernel provider. It is
// meant to be called from the init function of a kernel binding package.
func RegisterKernelProvider(p KernelProvider) {
	defaultProvider = p
}

// DefaultKernel returns the capability backed by the registered provider,
// or the unavailable variant if none is registered.
func DefaultKernel() KernelCapability {
	if defaultProvider == nil {
		return UnavailableKernel()
	}
	return NewKernelCapability(defaultProvider)
}
