package cpacs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mvenner/gocpacs/pkg/geometry"
	"github.com/mvenner/gocpacs/pkg/model"
)

// Fixed element paths of the CPACS format
const (
	xpathModel    = "/cpacs/vehicles/aircraft/model"
	xpathRefs     = xpathModel + "/reference"
	xpathWings    = xpathModel + "/wings"
	xpathAirfoils = "/cpacs/vehicles/profiles/wingAirfoils"
)

// Loader extracts an aircraft model from a CPACS definition
type Loader struct {
	kernel     KernelCapability
	airfoilDir string
	log        *slog.Logger
}

// NewLoader creates a loader. Airfoil coordinate files are written to
// airfoilDir during a load.
func NewLoader(airfoilDir string, kernel KernelCapability) *Loader {
	return &Loader{
		kernel:     kernel,
		airfoilDir: airfoilDir,
		log:        slog.Default(),
	}
}

// SetLogger replaces the loader's logger
func (l *Loader) SetLogger(log *slog.Logger) {
	l.log = log
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Load populates the aircraft model from the CPACS file at path.
//
// The load is atomic: on success the aircraft carries the complete model, on
// any error it is left in its empty state and the caller must treat the
// result as "no model available". Errors are never retried; every failure
// is terminal for the current call.
func (l *Loader) Load(ac *model.Aircraft, path string) error {
	l.log.Info("loading aircraft from CPACS file", "file", path)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: path}
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	doc, err := OpenDocument(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	kern, err := l.kernel.Open(doc)
	if err != nil {
		return err
	}
	defer kern.Close()

	ac.Reset()

	// Extract into a scratch model and swap it in only once everything
	// succeeded, so a failed load never leaves a partial aircraft behind.
	scratch := model.NewAircraft()
	l.loadName(scratch, doc)
	if err := l.loadWings(scratch, doc, kern); err != nil {
		return err
	}
	if err := l.writeAirfoilFiles(doc); err != nil {
		return err
	}
	if err := l.loadReferenceValues(scratch, doc); err != nil {
		return err
	}

	*ac = *scratch
	return nil
}

// loadName resolves the aircraft identifier. A missing identifier is
// non-fatal: a placeholder is assigned and a warning logged.
func (l *Loader) loadName(ac *model.Aircraft, doc *Document) {
	uid, err := doc.TextAttribute(xpathModel, "uID")
	if err != nil {
		l.log.Warn("could not read aircraft name", "path", xpathModel, "error", err)
		uid = "NAME_NOT_FOUND"
	}
	l.log.Debug("aircraft name resolved", "name", uid)
	ac.UID = uid
}

func (l *Loader) loadWings(ac *model.Aircraft, doc *Document, kern Kernel) error {
	l.log.Info("loading aircraft wings")
	if !doc.CheckElement(xpathWings) {
		return &ValidationError{
			Reason: fmt.Sprintf("could not find %q: the aircraft must have at least one wing", xpathWings),
		}
	}

	numWings, err := doc.NamedChildrenCount(xpathWings, "wing")
	if err != nil {
		return err
	}
	if numWings == 0 {
		return &ValidationError{Reason: "the aircraft must have at least one wing"}
	}

	for idxWing := 1; idxWing <= numWings; idxWing++ {
		xpathWing := fmt.Sprintf("%s/wing[%d]", xpathWings, idxWing)

		uid, err := doc.TextAttribute(xpathWing, "uID")
		if err != nil {
			uid = fallbackUID("WING", idxWing)
		}
		l.log.Debug("loading wing", "name", uid)

		wing, err := ac.AddWing(uid)
		if err != nil {
			return &ValidationError{Reason: err.Error()}
		}

		symmetry, err := kern.WingSymmetry(idxWing)
		if err != nil {
			return &QueryError{Op: fmt.Sprintf("symmetry of wing %d", idxWing), Err: err}
		}
		wing.Symmetry = symmetry

		if err := l.loadSegments(wing, doc, kern, xpathWing, idxWing); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadSegments(wing *model.Wing, doc *Document, kern Kernel, xpathWing string, idxWing int) error {
	xpathSegments := xpathWing + "/segments"
	if !doc.CheckElement(xpathSegments) {
		return &MissingPathError{Path: xpathSegments}
	}
	l.log.Debug("loading segments", "wing", wing.UID)

	numSegments, err := doc.NamedChildrenCount(xpathSegments, "segment")
	if err != nil {
		return err
	}

	for idxSegment := 1; idxSegment <= numSegments; idxSegment++ {
		xpathSegment := fmt.Sprintf("%s/segment[%d]", xpathSegments, idxSegment)

		uid, err := doc.TextAttribute(xpathSegment, "uID")
		if err != nil {
			uid = fallbackUID(wing.UID+"_SEGMENT", idxSegment)
		}
		l.log.Debug("loading segment", "name", uid)

		segment, err := wing.AddSegment(uid)
		if err != nil {
			return &ValidationError{Reason: err.Error()}
		}

		// Corner points of the parametric patch, each the midpoint of
		// the lower and upper surface at the same (eta, xsi).
		a, err := segmentMidPoint(kern, idxWing, idxSegment, 0, 0)
		if err != nil {
			return err
		}
		b, err := segmentMidPoint(kern, idxWing, idxSegment, 1, 0)
		if err != nil {
			return err
		}
		c, err := segmentMidPoint(kern, idxWing, idxSegment, 1, 1)
		if err != nil {
			return err
		}
		d, err := segmentMidPoint(kern, idxWing, idxSegment, 0, 1)
		if err != nil {
			return err
		}

		segment.Vertices = geometry.Quad{A: a, B: b, C: c, D: d}.Canonical()

		if err := l.resolveAirfoils(segment, kern, idxWing, idxSegment); err != nil {
			return err
		}
	}
	return nil
}

// segmentMidPoint queries the camber-line point of a segment patch at
// (eta, xsi): the midpoint of the lower and upper surface points.
func segmentMidPoint(kern Kernel, idxWing, idxSegment int, eta, xsi float64) (geometry.Vector3, error) {
	lower, err := kern.LowerPoint(idxWing, idxSegment, eta, xsi)
	if err != nil {
		return geometry.Vector3{}, &QueryError{
			Op:  fmt.Sprintf("lower point of wing %d segment %d at (%g, %g)", idxWing, idxSegment, eta, xsi),
			Err: err,
		}
	}
	upper, err := kern.UpperPoint(idxWing, idxSegment, eta, xsi)
	if err != nil {
		return geometry.Vector3{}, &QueryError{
			Op:  fmt.Sprintf("upper point of wing %d segment %d at (%g, %g)", idxWing, idxSegment, eta, xsi),
			Err: err,
		}
	}
	return lower.Mid(upper), nil
}

// resolveAirfoils records the coordinate-file paths for the airfoils at the
// inner and outer border of a segment. No file is written here; writing
// happens once per distinct profile in writeAirfoilFiles.
func (l *Loader) resolveAirfoils(segment *model.Segment, kern Kernel, idxWing, idxSegment int) error {
	for _, position := range []string{"inner", "outer"} {
		var (
			section, element int
			err              error
		)
		if position == "inner" {
			section, element, err = kern.InnerSectionElement(idxWing, idxSegment)
		} else {
			section, element, err = kern.OuterSectionElement(idxWing, idxSegment)
		}
		if err != nil {
			return &QueryError{
				Op:  fmt.Sprintf("%s section of wing %d segment %d", position, idxWing, idxSegment),
				Err: err,
			}
		}

		name, err := kern.ProfileName(idxWing, section, element)
		if err != nil {
			return &QueryError{
				Op:  fmt.Sprintf("profile name of wing %d section %d element %d", idxWing, section, element),
				Err: err,
			}
		}
		if name == "" {
			return &ValidationError{
				Reason: fmt.Sprintf("could not extract %s airfoil name (wing %d, segment %d)", position, idxWing, idxSegment),
			}
		}

		path := filepath.Join(l.airfoilDir, "blade."+name)
		if position == "inner" {
			segment.Airfoils.Inner = path
		} else {
			segment.Airfoils.Outer = path
		}
	}
	return nil
}

// loadReferenceValues reads the aircraft reference quantities.
//
// The rotation center is read from the same location as the geometric
// center, and the chord from the same reference length as the span; the
// source format currently defines only the one point and the one length.
func (l *Loader) loadReferenceValues(ac *model.Aircraft, doc *Document) error {
	var err error
	read := func(path string) float64 {
		if err != nil {
			return 0
		}
		var value float64
		value, err = doc.DoubleElement(path)
		return value
	}

	gcenter := geometry.Vector3{
		X: read(xpathRefs + "/point/x"),
		Y: read(xpathRefs + "/point/y"),
		Z: read(xpathRefs + "/point/z"),
	}
	ac.Refs.GCenter = gcenter
	ac.Refs.RCenter = gcenter
	ac.Refs.Area = read(xpathRefs + "/area")
	ac.Refs.Span = read(xpathRefs + "/length")
	ac.Refs.Chord = read(xpathRefs + "/length")
	return err
}
