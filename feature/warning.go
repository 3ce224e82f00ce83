package feature

import (
	"fmt"

	"github.com/corviz/domanalyze/urlmodel"
)

// Severity orders a Warning's urgency. Lower values are more severe, mirroring
// the ascending-severity convention used across the diagnostics-shaped
// example in the corpus.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// IsAtLeastAsSevereAs reports whether s is as urgent as, or more urgent
// than, other.
func (s Severity) IsAtLeastAsSevereAs(other Severity) bool {
	return s <= other
}

// Stable warning codes (§6). New codes may be added elsewhere; these
// retain their documented meaning.
const (
	CodeParseError                 = "parse-error"
	CodeCouldNotLoad                = "could-not-load"
	CodeCouldNotResolveReference    = "could-not-resolve-reference"
	CodeMultipleGlobalDeclarations  = "multiple-global-declarations"
	CodeClassExtendsAnnotationNoId  = "class-extends-annotation-no-id"
	CodeInvalidPolymerCall          = "invalid-polymer-call"
	CodeDynamicNamespaceNoName      = "dynamic-namespace-no-name"
	CodeInvalidDatabinding          = "invalid-databinding"
	CodeInvalidAttribute            = "invalid-attribute"
	CodeDualAnnotation              = "dual-annotation"
)

// Warning is a structured diagnostic carrying a source range and severity.
// Warnings are always constructed through NewWarning; never throw, never
// escape as a Go error.
type Warning struct {
	Code     string
	Message  string
	Severity Severity
	Range    SourceRange
	Document urlmodel.Resolved
	Hint     string
}

// WarningBuilder constructs a Warning. Use NewWarning to start one.
type WarningBuilder struct {
	w Warning
}

// NewWarning starts a WarningBuilder. Panics if code or message is empty —
// these are programmer errors, not analysis-time conditions.
func NewWarning(code string, severity Severity, message string) *WarningBuilder {
	if code == "" {
		panic("feature: NewWarning called with empty code")
	}
	if message == "" {
		panic("feature: NewWarning called with empty message")
	}
	return &WarningBuilder{w: Warning{Code: code, Severity: severity, Message: message}}
}

func (b *WarningBuilder) WithRange(r SourceRange) *WarningBuilder {
	b.w.Range = r
	return b
}

func (b *WarningBuilder) WithDocument(u urlmodel.Resolved) *WarningBuilder {
	b.w.Document = u
	return b
}

func (b *WarningBuilder) WithHint(hint string) *WarningBuilder {
	b.w.Hint = hint
	return b
}

func (b *WarningBuilder) Build() Warning {
	return b.w
}

func (w Warning) String() string {
	if w.Hint != "" {
		return fmt.Sprintf("%s: %s (%s)", w.Code, w.Message, w.Hint)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
