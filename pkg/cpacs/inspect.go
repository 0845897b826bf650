package cpacs

import (
	"fmt"

	"github.com/mvenner/gocpacs/pkg/geometry"
)

// WingInfo is document-level information about one wing
type WingInfo struct {
	UID          string
	SegmentCount int
}

// Info is document-level information about a CPACS definition. It is
// assembled from path queries only and never touches the geometry kernel.
type Info struct {
	Name     string
	Wings    []WingInfo
	Airfoils []string

	HasReference bool
	RefPoint     geometry.Vector3
	RefArea      float64
	RefLength    float64
}

// Inspect collects document-level information from an opened CPACS file
func Inspect(doc *Document) (*Info, error) {
	info := &Info{}

	name, err := doc.TextAttribute(xpathModel, "uID")
	if err != nil {
		name = "NAME_NOT_FOUND"
	}
	info.Name = name

	if doc.CheckElement(xpathWings) {
		numWings, err := doc.NamedChildrenCount(xpathWings, "wing")
		if err != nil {
			return nil, err
		}
		for i := 1; i <= numWings; i++ {
			xpathWing := fmt.Sprintf("%s/wing[%d]", xpathWings, i)
			uid, err := doc.TextAttribute(xpathWing, "uID")
			if err != nil {
				uid = fallbackUID("WING", i)
			}
			segments := 0
			if doc.CheckElement(xpathWing + "/segments") {
				segments, err = doc.NamedChildrenCount(xpathWing+"/segments", "segment")
				if err != nil {
					return nil, err
				}
			}
			info.Wings = append(info.Wings, WingInfo{UID: uid, SegmentCount: segments})
		}
	}

	if doc.CheckElement(xpathAirfoils) {
		numAirfoils, err := doc.NamedChildrenCount(xpathAirfoils, "wingAirfoil")
		if err != nil {
			return nil, err
		}
		for i := 1; i <= numAirfoils; i++ {
			name, err := doc.TextElement(fmt.Sprintf("%s/wingAirfoil[%d]/name", xpathAirfoils, i))
			if err != nil || name == "" {
				name = fallbackUID("AIRFOIL", i)
			}
			info.Airfoils = append(info.Airfoils, name)
		}
	}

	if doc.CheckElement(xpathRefs) {
		info.HasReference = true
		var err error
		if info.RefPoint.X, err = doc.DoubleElement(xpathRefs + "/point/x"); err != nil {
			return nil, err
		}
		if info.RefPoint.Y, err = doc.DoubleElement(xpathRefs + "/point/y"); err != nil {
			return nil, err
		}
		if info.RefPoint.Z, err = doc.DoubleElement(xpathRefs + "/point/z"); err != nil {
			return nil, err
		}
		if info.RefArea, err = doc.DoubleElement(xpathRefs + "/area"); err != nil {
			return nil, err
		}
		if info.RefLength, err = doc.DoubleElement(xpathRefs + "/length"); err != nil {
			return nil, err
		}
	}

	return info, nil
}
