package cpacs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// coordFormat is the fixed-point format of airfoil coordinate files:
// explicit leading sign, 7 digits after the decimal point.
const coordFormat = "%+.7f"

// WriteAirfoilFiles extracts every airfoil profile declared at the aircraft
// level and writes one coordinate file per profile into dir. Existing files
// are overwritten; the output is fully determined by the input.
func WriteAirfoilFiles(doc *Document, dir string) error {
	return (&Loader{airfoilDir: dir, log: discardLogger()}).writeAirfoilFiles(doc)
}

func (l *Loader) writeAirfoilFiles(doc *Document) error {
	l.log.Debug("extracting airfoil data")
	numAirfoils, err := doc.NamedChildrenCount(xpathAirfoils, "wingAirfoil")
	if err != nil {
		return err
	}

	for i := 1; i <= numAirfoils; i++ {
		xpathAirfoil := fmt.Sprintf("%s/wingAirfoil[%d]", xpathAirfoils, i)
		xpathPoints := xpathAirfoil + "/pointList"

		name, err := doc.TextElement(xpathAirfoil + "/name")
		if err != nil || name == "" {
			name = fallbackUID("AIRFOIL", i)
		}

		coordsX, err := readCoordinateList(doc, xpathPoints+"/x")
		if err != nil {
			return err
		}
		coordsZ, err := readCoordinateList(doc, xpathPoints+"/z")
		if err != nil {
			return err
		}
		if len(coordsX) != len(coordsZ) {
			return &ValidationError{
				Reason: fmt.Sprintf("airfoil %q has %d x coordinates but %d z coordinates",
					name, len(coordsX), len(coordsZ)),
			}
		}

		file := filepath.Join(l.airfoilDir, "blade."+name)
		l.log.Info("copying airfoil to file", "airfoil", name, "file", file)
		if err := writeAirfoilFile(file, name, coordsX, coordsZ); err != nil {
			return err
		}
	}
	return nil
}

// readCoordinateList parses a semicolon-separated list of numbers at path
func readCoordinateList(doc *Document, path string) ([]float64, error) {
	text, err := doc.TextElement(path)
	if err != nil {
		return nil, err
	}

	var values []float64
	for _, field := range strings.Split(text, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse coordinate %q at %s: %w", field, path, err)
		}
		values = append(values, value)
	}
	return values, nil
}

// writeAirfoilFile writes one coordinate table: a header line with the
// profile name, then one line per (x, z) pair.
func writeAirfoilFile(path, name string, coordsX, coordsZ []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create airfoil file: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, name)
	for i := range coordsX {
		fmt.Fprintf(w, coordFormat+" "+coordFormat+"\n", coordsX[i], coordsZ[i])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write airfoil file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close airfoil file %s: %w", path, err)
	}
	return nil
}
