package analysis

import (
	"math"
	"testing"

	"github.com/mvenner/gocpacs/pkg/geometry"
	"github.com/mvenner/gocpacs/pkg/model"
)

func buildTestAircraft(t *testing.T) *model.Aircraft {
	t.Helper()
	ac := model.NewAircraft()
	ac.UID = "Demo"

	wing, err := ac.AddWing("MainWing")
	if err != nil {
		t.Fatalf("AddWing failed: %v", err)
	}
	wing.Symmetry = model.SymmetryXZ

	// Two unit panels side by side along the span
	for i, uid := range []string{"Seg1", "Seg2"} {
		segment, err := wing.AddSegment(uid)
		if err != nil {
			t.Fatalf("AddSegment failed: %v", err)
		}
		y := float64(i)
		segment.Vertices = geometry.Quad{
			A: geometry.NewVector3(0, y, 0),
			B: geometry.NewVector3(0, y+1, 0),
			C: geometry.NewVector3(1, y+1, 0),
			D: geometry.NewVector3(1, y, 0),
		}
	}
	return ac
}

func TestMeasureAircraft(t *testing.T) {
	result := MeasureAircraft(buildTestAircraft(t))

	if len(result.Wings) != 1 {
		t.Fatalf("expected 1 wing measurement, got %d", len(result.Wings))
	}

	wing := result.Wings[0]
	if wing.UID != "MainWing" {
		t.Errorf("expected wing 'MainWing', got %q", wing.UID)
	}
	if wing.SegmentCount != 2 {
		t.Errorf("expected 2 segments, got %d", wing.SegmentCount)
	}
	if math.Abs(wing.PlanformArea-2.0) > 1e-10 {
		t.Errorf("expected planform area 2.0, got %v", wing.PlanformArea)
	}
	if math.Abs(wing.Span-2.0) > 1e-10 {
		t.Errorf("expected span 2.0, got %v", wing.Span)
	}

	if math.Abs(result.PlanformArea-2.0) > 1e-10 {
		t.Errorf("expected total planform area 2.0, got %v", result.PlanformArea)
	}
	if result.SegmentCount != 2 {
		t.Errorf("expected 2 segments in total, got %d", result.SegmentCount)
	}

	min := geometry.NewVector3(0, 0, 0)
	max := geometry.NewVector3(1, 2, 0)
	if result.BoundingBox.Min != min || result.BoundingBox.Max != max {
		t.Errorf("unexpected bounding box: %v to %v", result.BoundingBox.Min, result.BoundingBox.Max)
	}
}

func TestMeasureEmptyAircraft(t *testing.T) {
	result := MeasureAircraft(model.NewAircraft())

	if len(result.Wings) != 0 || result.SegmentCount != 0 || result.PlanformArea != 0 {
		t.Errorf("expected empty measurements, got %+v", result)
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(1, 2.5, -3))
	expected := "(1.000000, 2.500000, -3.000000)"
	if got != expected {
		t.Errorf("FormatVector failed: expected %q, got %q", expected, got)
	}
}
