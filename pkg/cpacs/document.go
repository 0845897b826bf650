// Package cpacs converts a CPACS aircraft definition into the native model.
//
// The package separates the two capabilities of the source format: Document
// answers attribute/text/count queries by path expression, and Kernel
// answers 3D point queries on the lofted wing surfaces. The Loader drives
// both to produce a model.Aircraft.
package cpacs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/klauspost/compress/zstd"
)

// Document is an opened CPACS definition. Paths use the element-path syntax
// of the source format, e.g.
//
//	/cpacs/vehicles/aircraft/model/wings/wing[2]
//
// with 1-based ordinal indices.
type Document struct {
	Path string

	tree *etree.Document
}

// OpenDocument reads a CPACS file. Files with a .zst suffix are
// transparently decompressed.
func OpenDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	tree := etree.NewDocument()
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd reader for %s: %w", path, err)
		}
		defer zr.Close()
		if _, err := tree.ReadFrom(zr); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if _, err := tree.ReadFrom(f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return &Document{Path: path, tree: tree}, nil
}

// Close releases the document. The Document must not be used afterwards.
func (d *Document) Close() {
	d.tree = nil
}

// CheckElement reports whether an element exists at the given path
func (d *Document) CheckElement(path string) bool {
	return d.tree.FindElement(path) != nil
}

// TextAttribute returns the value of an attribute at the given path
func (d *Document) TextAttribute(path, name string) (string, error) {
	el := d.tree.FindElement(path)
	if el == nil {
		return "", &MissingPathError{Path: path}
	}
	attr := el.SelectAttr(name)
	if attr == nil {
		return "", &MissingPathError{Path: path, Attr: name}
	}
	return strings.TrimSpace(attr.Value), nil
}

// TextElement returns the trimmed text content of the element at the path
func (d *Document) TextElement(path string) (string, error) {
	el := d.tree.FindElement(path)
	if el == nil {
		return "", &MissingPathError{Path: path}
	}
	return strings.TrimSpace(el.Text()), nil
}

// DoubleElement returns the text content of the element parsed as a float
func (d *Document) DoubleElement(path string) (float64, error) {
	text, err := d.TextElement(path)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q at %s as number: %w", text, path, err)
	}
	return value, nil
}

// NamedChildrenCount returns the number of child elements with the given
// name below the element at the path.
func (d *Document) NamedChildrenCount(path, child string) (int, error) {
	el := d.tree.FindElement(path)
	if el == nil {
		return 0, &MissingPathError{Path: path}
	}
	return len(el.SelectElements(child)), nil
}
