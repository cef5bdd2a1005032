package diag

import (
	"fmt"
	"strings"

	"fsdriver/internal/argv"
)

// Render produces one legacy-format line per issue. Three mutually
// exclusive location renderings exist; vserrors wins over error ranges.
func Render(issues []Issue, flags argv.Flags) []string {
	lines := make([]string, 0, len(issues))
	for _, issue := range issues {
		lines = append(lines, FormatIssue(issue, flags))
	}
	return lines
}

// FormatIssue renders one line: "<location>: <kind> <code>: <text>".
// Under vserrors the kind is "<subcategory> <kind>" even when the
// subcategory is empty; the resulting double space is load-bearing
// legacy output and must not be trimmed.
func FormatIssue(issue Issue, flags argv.Flags) string {
	loc := issue.Loc
	var pos, kind string
	switch {
	case flags.VSErrors:
		pos = fmt.Sprintf("(%d,%d,%d,%d)", loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn)
		kind = issue.Subcategory + " " + issue.Sev.String()
	case flags.ErrorRanges:
		pos = fmt.Sprintf("(%d,%d-%d,%d)", loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn)
		kind = issue.Sev.String()
	default:
		pos = fmt.Sprintf("(%d,%d)", loc.StartLine, loc.StartColumn)
		kind = issue.Sev.String()
	}
	return fmt.Sprintf("%s: %s %s: %s", pos, kind, issue.Code, issue.Text)
}

// FlattenText collapses embedded line breaks into single spaces and
// trims the result. Used for fault descriptions that must fit one line.
func FlattenText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(text)
}
