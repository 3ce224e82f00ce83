package feature

// ResolvedFeature mirrors a ScannedFeature variant after cross-references
// have been materialized (§3). Every resolved feature answers to a set of
// kinds and a set of lookup identifiers.
type ResolvedFeature interface {
	Kinds() KindSet
	Identifiers() []string
	SourceRange() SourceRange
	Warnings() []Warning
}

// resolvedBase is embedded by every ResolvedFeature variant.
type resolvedBase struct {
	kinds    KindSet
	ids      []string
	Range    SourceRange
	warnings []Warning
}

func (b *resolvedBase) Kinds() KindSet          { return b.kinds }
func (b *resolvedBase) Identifiers() []string   { return b.ids }
func (b *resolvedBase) SourceRange() SourceRange { return b.Range }
func (b *resolvedBase) Warnings() []Warning      { return b.warnings }
func (b *resolvedBase) AddWarning(w Warning)     { b.warnings = append(b.warnings, w) }

// Reference is the resolved form of a ScannedReference: the target feature
// if lookup succeeded, plus any warnings accumulated while resolving it.
// Target's concrete type depends on Kind (e.g. Kind==KindElementMixin means
// Target, if non-nil, is a *ResolvedElementMixin).
type Reference struct {
	Kind       Kind
	Identifier string
	Target     ResolvedFeature
	Resolved   bool
	Warnings   []Warning
}

// ResolvedImport is the resolved form of a ScannedImport: Target is the
// imported Document (itself a ResolvedFeature of kind "document").
type ResolvedImport struct {
	resolvedBase
	Type   string
	Target ResolvedFeature
}

// ResolvedElement is the resolved form of a ScannedElement.
type ResolvedElement struct {
	resolvedBase
	TagName     string
	ClassName   string
	Superclass  *Reference
	Mixins      []Reference
	Attributes  []ScannedAttribute
	Pseudo      bool
	Description string
}

// ResolvedElementMixin is the resolved form of a ScannedElementMixin.
type ResolvedElementMixin struct {
	resolvedBase
	Name        string
	Description string
}

// ResolvedNamespace is the resolved form of a ScannedNamespace.
type ResolvedNamespace struct {
	resolvedBase
	Name        string
	Description string
}

// ResolvedFunction is the resolved form of a ScannedFunction.
type ResolvedFunction struct {
	resolvedBase
	Name        string
	Params      []Parameter
	Returns     string
	Description string
}

// ResolvedBehavior is the resolved form of a ScannedBehavior.
type ResolvedBehavior struct {
	resolvedBase
	Name        string
	Description string
}

// ResolvedDatabindingExpression is the resolved form of a
// ScannedDatabindingExpression.
type ResolvedDatabindingExpression struct {
	resolvedBase
	Direction       byte
	ExpressionText  string
	EventName       string
	DatabindingInto string
}

// ResolvedPolymerCoreFeature is the resolved form of a
// ScannedPolymerCoreFeature.
type ResolvedPolymerCoreFeature struct {
	resolvedBase
	Name        string
	Description string
}

// ResolvedElementReference is the resolved form of a
// ScannedElementReference.
type ResolvedElementReference struct {
	resolvedBase
	TagName string
	Element Reference
}
