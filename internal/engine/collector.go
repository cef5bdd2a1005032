package engine

// Collector accumulates diagnostics as the backend emits them, split by
// classification with emission order preserved within each class. The
// zero value is ready to use.
type Collector struct {
	errs  []Diagnostic
	warns []Diagnostic
}

// Collect files one diagnostic under its classification. Nil entries are
// ignored.
func (c *Collector) Collect(d Diagnostic) {
	if d == nil {
		return
	}
	if d.IsError() {
		c.errs = append(c.errs, d)
	} else {
		c.warns = append(c.warns, d)
	}
}

func (c *Collector) Errors() []Diagnostic   { return c.errs }
func (c *Collector) Warnings() []Diagnostic { return c.warns }

// Output is one invocation's worth of collected diagnostics.
type Output struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

func (c *Collector) Output() Output {
	return Output{Errors: c.errs, Warnings: c.warns}
}
