package diag

import (
	"fmt"

	"fortio.org/safecast"

	"fsdriver/internal/engine"
)

// Normalize converts one raw backend diagnostic into an Issue. It is
// total: missing or malformed parts degrade to the sentinel location and
// empty strings, never to a failure.
func Normalize(raw engine.Diagnostic) Issue {
	switch d := raw.(type) {
	case *engine.Short:
		return Issue{Text: d.Text, Sev: severityOf(d.Err)}
	case *engine.Long:
		issue := Issue{
			Subcategory: d.Subcategory,
			// Warnings share the error numbering namespace; the code is
			// formatted identically for both.
			Code: fmt.Sprintf("FS%04d", d.Number),
			Text: d.Text,
			Sev:  severityOf(d.Err),
		}
		if d.Range != nil {
			issue.Loc = locationOf(d.Range)
			issue.File = d.Range.File
		}
		return issue
	default:
		// Unknown shape: keep the classification, default everything else.
		var issue Issue
		if raw != nil {
			issue.Sev = severityOf(raw.IsError())
		}
		return issue
	}
}

// NormalizeOutput flattens one invocation's diagnostics, errors ahead of
// warnings, each class in its emission order.
func NormalizeOutput(out engine.Output) []Issue {
	issues := make([]Issue, 0, len(out.Errors)+len(out.Warnings))
	for _, d := range out.Errors {
		issues = append(issues, Normalize(d))
	}
	for _, d := range out.Warnings {
		issues = append(issues, Normalize(d))
	}
	return issues
}

func severityOf(isError bool) Severity {
	if isError {
		return SevError
	}
	return SevWarning
}

func locationOf(r *engine.Range) Location {
	return Location{
		StartLine:   intOf(r.StartLine),
		StartColumn: intOf(r.StartColumn),
		EndLine:     intOf(r.EndLine),
		EndColumn:   intOf(r.EndColumn),
	}
}

func intOf(v int32) int {
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0
	}
	return n
}
