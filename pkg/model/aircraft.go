// Package model holds the native aircraft representation consumed by the
// panel solver: wings, segments with canonical corner vertices, airfoil file
// references and whole-aircraft reference values.
package model

import (
	"fmt"

	"github.com/mvenner/gocpacs/pkg/geometry"
)

// Symmetry describes the symmetry plane of a wing. The numeric values match
// the geometry kernel's symmetry codes.
type Symmetry int

const (
	SymmetryNone Symmetry = iota
	SymmetryXY
	SymmetryXZ
	SymmetryYZ
)

// String returns a human-readable symmetry plane name
func (s Symmetry) String() string {
	switch s {
	case SymmetryNone:
		return "none"
	case SymmetryXY:
		return "xy-plane"
	case SymmetryXZ:
		return "xz-plane"
	case SymmetryYZ:
		return "yz-plane"
	}
	return fmt.Sprintf("symmetry(%d)", int(s))
}

// AirfoilRefs holds the coordinate-file paths for the airfoils at the inner
// and outer border of a segment. The files are referenced by path, not
// loaded into the model.
type AirfoilRefs struct {
	Inner string
	Outer string
}

// Segment is one quadrilateral patch of a wing. Vertices carries the
// canonical corner roles: A/D on the root edge, B/C on the tip edge (see
// geometry.Quad).
type Segment struct {
	UID      string
	Vertices geometry.Quad
	Airfoils AirfoilRefs
}

// Wing is a lifting surface made of segments. Segments are kept in source
// declaration order; downstream panel numbering depends on that order.
type Wing struct {
	UID      string
	Symmetry Symmetry

	segments []*Segment
	byUID    map[string]*Segment
}

// AddSegment appends a new, empty segment with the given identifier.
// Identifiers must be unique within the wing.
func (w *Wing) AddSegment(uid string) (*Segment, error) {
	if _, ok := w.byUID[uid]; ok {
		return nil, fmt.Errorf("segment %q already defined in wing %q", uid, w.UID)
	}
	s := &Segment{UID: uid}
	w.segments = append(w.segments, s)
	w.byUID[uid] = s
	return s, nil
}

// Segment returns the segment with the given identifier
func (w *Wing) Segment(uid string) (*Segment, bool) {
	s, ok := w.byUID[uid]
	return s, ok
}

// Segments returns all segments in source declaration order
func (w *Wing) Segments() []*Segment {
	return w.segments
}

// SegmentCount returns the number of segments
func (w *Wing) SegmentCount() int {
	return len(w.segments)
}

// ReferenceValues are the whole-aircraft reference quantities used to
// normalize aerodynamic coefficients.
//
// By current source convention RCenter is identical to GCenter, and Chord is
// read from the same reference length as Span. Both are deliberate
// simplifications of the source format, preserved literally.
type ReferenceValues struct {
	GCenter geometry.Vector3
	RCenter geometry.Vector3
	Area    float64
	Span    float64
	Chord   float64
}

// Aircraft is the complete extracted model. Wings are kept in source
// declaration order and addressed by identifier.
type Aircraft struct {
	UID  string
	Refs ReferenceValues

	wings []*Wing
	byUID map[string]*Wing
}

// NewAircraft creates an empty aircraft model
func NewAircraft() *Aircraft {
	return &Aircraft{byUID: make(map[string]*Wing)}
}

// AddWing appends a new, empty wing with the given identifier.
// Identifiers must be unique.
func (a *Aircraft) AddWing(uid string) (*Wing, error) {
	if _, ok := a.byUID[uid]; ok {
		return nil, fmt.Errorf("wing %q already defined", uid)
	}
	w := &Wing{UID: uid, byUID: make(map[string]*Segment)}
	a.wings = append(a.wings, w)
	a.byUID[uid] = w
	return w, nil
}

// Wing returns the wing with the given identifier
func (a *Aircraft) Wing(uid string) (*Wing, bool) {
	w, ok := a.byUID[uid]
	return w, ok
}

// Wings returns all wings in source declaration order
func (a *Aircraft) Wings() []*Wing {
	return a.wings
}

// WingCount returns the number of wings
func (a *Aircraft) WingCount() int {
	return len(a.wings)
}

// Reset restores the aircraft to its empty state
func (a *Aircraft) Reset() {
	a.UID = ""
	a.Refs = ReferenceValues{}
	a.wings = nil
	a.byUID = make(map[string]*Wing)
}
