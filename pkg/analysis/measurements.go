// Package analysis derives summary measurements from a loaded aircraft
// model: planform areas, spanwise extents and bounding boxes.
package analysis

import (
	"fmt"

	"github.com/mvenner/gocpacs/pkg/geometry"
	"github.com/mvenner/gocpacs/pkg/model"
)

// WingMeasurement contains measurements of a single wing
type WingMeasurement struct {
	UID          string
	Symmetry     model.Symmetry
	SegmentCount int
	PlanformArea float64
	Span         float64
	BoundingBox  geometry.BoundingBox
}

// Result contains measurements of the whole aircraft
type Result struct {
	Wings        []WingMeasurement
	SegmentCount int
	PlanformArea float64
	BoundingBox  geometry.BoundingBox
}

// MeasureAircraft computes summary measurements for every wing of the model.
// Areas and extents are those of the extracted geometry; symmetric halves
// are not mirrored.
func MeasureAircraft(ac *model.Aircraft) *Result {
	result := &Result{BoundingBox: geometry.NewBoundingBox()}

	for _, wing := range ac.Wings() {
		wm := WingMeasurement{
			UID:          wing.UID,
			Symmetry:     wing.Symmetry,
			SegmentCount: wing.SegmentCount(),
			BoundingBox:  geometry.NewBoundingBox(),
		}

		for _, segment := range wing.Segments() {
			wm.PlanformArea += segment.Vertices.Area()
			wm.BoundingBox.ExtendQuad(segment.Vertices)
		}
		wm.Span = wm.BoundingBox.Size().Y

		result.Wings = append(result.Wings, wm)
		result.SegmentCount += wm.SegmentCount
		result.PlanformArea += wm.PlanformArea
		result.BoundingBox.Extend(wm.BoundingBox.Min)
		result.BoundingBox.Extend(wm.BoundingBox.Max)
	}

	return result
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
