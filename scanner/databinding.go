package scanner

import (
	"regexp"
	"strings"

	"github.com/corviz/domanalyze/feature"
)

// DatabindingOccurrence is one {{expr}} or [[expr]] occurrence found by
// ExtractDatabindings, with byte offsets into the scanned string.
type DatabindingOccurrence struct {
	Direction       byte // '{' for two-way, '[' for one-way
	ExpressionText  string
	EventName       string
	DatabindingInto string // "attribute" or "string-interpolation"
	Start           int
	End             int
}

var eventSuffix = regexp.MustCompile(`::([A-Za-z_$][\w$-]*)$`)

// ExtractDatabindings implements the databinding expression scanner's
// linear-scan algorithm (§4.4.2): find the next opener, locate its matching
// closer, carve the expression and optional ::eventName suffix, and
// classify whether the binding spans the whole string or is interpolated
// within it. Scanning the same string twice yields identical results
// (§8, stability-under-duplication).
func ExtractDatabindings(s string) []DatabindingOccurrence {
	var out []DatabindingOccurrence
	pos := 0
	for pos < len(s) {
		openIdx, opener := nextOpener(s, pos)
		if openIdx < 0 {
			break
		}
		closer := "}}"
		if opener == '[' {
			closer = "]]"
		}
		closeIdx := strings.Index(s[openIdx+2:], closer)
		if closeIdx < 0 {
			// Opener without a matching closer: not a binding, and nothing
			// after it can be disambiguated safely either.
			break
		}
		closeIdx += openIdx + 2

		expr := s[openIdx+2 : closeIdx]
		event := ""
		if opener == '{' {
			if m := eventSuffix.FindStringSubmatch(expr); m != nil {
				event = m[1]
				expr = strings.TrimSuffix(expr, "::"+event)
			}
		}

		into := "string-interpolation"
		if openIdx == 0 && closeIdx+2 == len(s) {
			into = "attribute"
		}

		out = append(out, DatabindingOccurrence{
			Direction:       byte(opener),
			ExpressionText:  strings.TrimSpace(expr),
			EventName:       event,
			DatabindingInto: into,
			Start:           openIdx,
			End:             closeIdx + 2,
		})
		pos = closeIdx + 2
	}
	return out
}

func nextOpener(s string, from int) (int, rune) {
	bi := strings.Index(s[from:], "{{")
	ci := strings.Index(s[from:], "[[")
	switch {
	case bi < 0 && ci < 0:
		return -1, 0
	case bi < 0:
		return from + ci, '['
	case ci < 0:
		return from + bi, '{'
	case bi < ci:
		return from + bi, '{'
	default:
		return from + ci, '['
	}
}

// BuildDatabindingFeatures converts raw occurrences found within a text
// node or attribute value into ScannedDatabindingExpressions, translating
// each occurrence's position into the parent document's coordinate space
// via hostStart (the position at which the scanned string begins).
func BuildDatabindingFeatures(s string, hostStart feature.Position) []feature.ScannedDatabindingExpression {
	occurrences := ExtractDatabindings(s)
	if len(occurrences) == 0 {
		return nil
	}
	li := NewLineIndex(s)
	out := make([]feature.ScannedDatabindingExpression, 0, len(occurrences))
	for _, occ := range occurrences {
		startRel := li.Position(occ.Start)
		endRel := li.Position(occ.End)
		f := feature.ScannedDatabindingExpression{
			Direction:       occ.Direction,
			ExpressionText:  occ.ExpressionText,
			EventName:       occ.EventName,
			DatabindingInto: occ.DatabindingInto,
		}
		f.Range = feature.SourceRange{
			Start: Translate(hostStart, startRel),
			End:   Translate(hostStart, endRel),
		}
		out = append(out, f)
	}
	return out
}

// WrapExpressionForParsing implements the "0||(EXPR)" trick from §9: an
// expression-level script is re-parsed by wrapping it so a full-program
// parser yields a single expression statement whose inner node is the
// binding expression.
func WrapExpressionForParsing(expr string) string {
	return "0||(" + expr + ")"
}
