// Package diag holds the canonical diagnostic record built from the
// backend's raw shapes, plus the legacy line renderers the harness must
// reproduce byte for byte.
package diag

// Location is a 1-based source range. The zero value is the sentinel
// meaning "no position information available".
type Location struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsNone reports whether loc is the sentinel location.
func (loc Location) IsNone() bool { return loc == Location{} }

// Severity classifies an issue. Only two levels exist.
type Severity uint8

const (
	SevWarning Severity = iota
	SevError
)

func (s Severity) String() string {
	if s == SevError {
		return "error"
	}
	return "warning"
}

// Issue is one normalized diagnostic. Issues are immutable once built
// and have no identity beyond their fields; duplicates are preserved in
// emission order.
type Issue struct {
	Loc         Location
	Subcategory string
	Code        string // "FS%04d" for numbered diagnostics, empty otherwise
	File        string
	Text        string
	Sev         Severity
}
