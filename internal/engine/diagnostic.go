package engine

// Diagnostic is one raw backend diagnostic, either Short or Long.
type Diagnostic interface {
	IsError() bool
}

// Short carries only a classification flag and message text.
type Short struct {
	Err  bool
	Text string
}

func (d *Short) IsError() bool { return d.Err }

// Range is the backend's position type: 1-based lines and columns plus
// the file they belong to.
type Range struct {
	File        string
	StartLine   int32
	StartColumn int32
	EndLine     int32
	EndColumn   int32
}

// Long additionally carries the canonical numeric code, a subcategory
// and an optional location. Range is nil when the backend has no
// position for the diagnostic.
type Long struct {
	Err         bool
	Number      int32
	Subcategory string
	Text        string
	Range       *Range
}

func (d *Long) IsError() bool { return d.Err }
