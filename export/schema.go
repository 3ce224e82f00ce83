// Package export implements C9: serializing a resolved analysis into the
// stable JSON schema described in spec.md §6 (schema_version matching
// "1.x.x").
package export

import (
	"github.com/corviz/domanalyze/feature"
)

// SchemaVersion is the schema_version stamped on every exported document.
// Exporter logic may add optional fields across 1.x releases; any schema
// consumer written against "1.x.x" must keep parsing.
const SchemaVersion = "1.0.0"

// Document is the top-level exported shape: {schema_version, namespaces?,
// elements?, mixins?, functions?, metadata?} per spec.md §6.
type Document struct {
	SchemaVersion string            `json:"schema_version"`
	Namespaces    []Namespace       `json:"namespaces,omitempty"`
	Elements      []Element         `json:"elements,omitempty"`
	Mixins        []Mixin           `json:"mixins,omitempty"`
	Functions     []Function        `json:"functions,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// SourceRange is the exported, JSON-friendly form of feature.SourceRange.
type SourceRange struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

func exportRange(r feature.SourceRange) SourceRange {
	return SourceRange{
		StartLine:   r.Start.Line,
		StartColumn: r.Start.Column,
		EndLine:     r.End.Line,
		EndColumn:   r.End.Column,
	}
}

// Attribute is an exported observedAttributes entry.
type Attribute struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Element is the exported form of a feature.ResolvedElement.
type Element struct {
	TagName     string      `json:"tagname"`
	ClassName   string      `json:"classname,omitempty"`
	Superclass  string      `json:"superclass,omitempty"`
	Mixins      []string    `json:"mixins,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	Properties  []string    `json:"properties,omitempty"`
	Methods     []string    `json:"methods,omitempty"`
	Events      []string    `json:"events,omitempty"`
	Demos       []string    `json:"demos,omitempty"`
	Slots       []string    `json:"slots,omitempty"`
	Styling     []string    `json:"styling,omitempty"`
	SourceRange SourceRange `json:"sourceRange"`
	Privacy     string      `json:"privacy,omitempty"`
	Description string      `json:"description,omitempty"`
	Summary     string      `json:"summary,omitempty"`
}

// Mixin is the exported form of a feature.ResolvedElementMixin.
type Mixin struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	SourceRange SourceRange `json:"sourceRange"`
}

// Namespace is the exported form of a feature.ResolvedNamespace.
type Namespace struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	SourceRange SourceRange `json:"sourceRange"`
}

// Function is the exported form of a feature.ResolvedFunction.
type Function struct {
	Name        string      `json:"name"`
	Params      []string    `json:"params,omitempty"`
	Returns     string      `json:"returns,omitempty"`
	Description string      `json:"description,omitempty"`
	SourceRange SourceRange `json:"sourceRange"`
}
