package cpacs

import "fmt"

// fallbackUID returns the generated identifier used when an element carries
// no readable uID attribute, e.g. ("WING", 3) -> "WING03".
func fallbackUID(prefix string, index int) string {
	return fmt.Sprintf("%s%02d", prefix, index)
}
